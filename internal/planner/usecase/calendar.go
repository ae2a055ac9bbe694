package usecase

import (
	"context"
	"time"

	"github.com/jdev86/daily-task-app/pkg/gcalendar"
)

// calendarEventDuration is the slot length for exported schedule entries.
const calendarEventDuration = 30 * time.Minute

// tryCreateCalendarEvent exports one schedule entry as a same-day calendar
// event. Returns the event HTML link, or empty string on failure (calendar
// export is best-effort and never fails the plan).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, e validatedEntry) string {
	loc, err := time.LoadLocation(uc.cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	now := time.Now().In(loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), e.minutes/60, e.minutes%60, 0, 0, loc)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     e.Task,
		Description: e.Reason,
		StartTime:   start,
		EndTime:     start.Add(calendarEventDuration),
		Timezone:    uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "PlanDay: calendar event creation failed for %q (non-fatal): %v", e.Task, err)
		return ""
	}

	return event.HtmlLink
}
