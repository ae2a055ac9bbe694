package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jdev86/daily-task-app/internal/planner"
)

// timePattern accepts 24-hour HH:MM, with or without a leading zero on the hour.
var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// scheduleEntry mirrors one element of the model's "schedule" array.
type scheduleEntry struct {
	Task   string `json:"task"`
	Time   string `json:"time"`
	Reason string `json:"reason"`
}

// validatedEntry is a schedule entry after validation: Time is the 12-hour
// display form, minutes is the 24-hour sort key (kept internal).
type validatedEntry struct {
	Task    string
	Time    string
	Reason  string
	minutes int
}

// validateScheduleResponse parses raw model output into a sorted, 12-hour
// formatted schedule. Validation is all-or-nothing: the first malformed entry
// rejects the whole response.
func validateScheduleResponse(raw string) ([]validatedEntry, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, planner.NewNoResponseError()
	}

	cleaned := sanitizeJSONResponse(raw)

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		if json.Valid([]byte(cleaned)) {
			// Valid JSON, just not an object holding a schedule.
			return nil, planner.NewInvalidFormatError("response is not a JSON object with a schedule array")
		}
		return nil, planner.NewParseError(err)
	}

	// A JSON null unmarshals into a slice as a no-op, so it has to be
	// rejected here rather than falling through as an empty schedule.
	rawSchedule, ok := envelope["schedule"]
	if !ok || string(rawSchedule) == "null" {
		return nil, planner.NewInvalidFormatError("response has no schedule field")
	}

	var entries []scheduleEntry
	if err := json.Unmarshal(rawSchedule, &entries); err != nil {
		return nil, planner.NewInvalidFormatError("schedule is not an array of task/time/reason entries")
	}

	validated := make([]validatedEntry, 0, len(entries))
	for _, e := range entries {
		if e.Task == "" || e.Time == "" || e.Reason == "" {
			return nil, planner.NewInvalidFormatError(
				fmt.Sprintf("schedule entry is missing fields: task=%q time=%q reason=%q", e.Task, e.Time, e.Reason))
		}
		if !timePattern.MatchString(e.Time) {
			return nil, planner.NewInvalidFormatError(fmt.Sprintf("invalid time format %q", e.Time))
		}

		hours, minutes := splitTime(e.Time)
		validated = append(validated, validatedEntry{
			Task:    e.Task,
			Time:    formatTime12(hours, minutes),
			Reason:  e.Reason,
			minutes: hours*60 + minutes,
		})
	}

	// Stable: entries at the same time keep their response order.
	sort.SliceStable(validated, func(i, j int) bool {
		return validated[i].minutes < validated[j].minutes
	})

	return validated, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

// splitTime parses a pre-validated "HH:MM" string.
func splitTime(t string) (hours, minutes int) {
	parts := strings.SplitN(t, ":", 2)
	hours, _ = strconv.Atoi(parts[0])
	minutes, _ = strconv.Atoi(parts[1])
	return hours, minutes
}

// formatTime12 renders a 24-hour time on a 12-hour clock: 0 and 12 both
// render as 12, suffix AM for hours 0-11 and PM for 12-23.
func formatTime12(hours, minutes int) string {
	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes, suffix)
}
