package usecase

import (
	"context"
	"time"

	"github.com/jdev86/daily-task-app/internal/planner"
	"github.com/jdev86/daily-task-app/pkg/gemini"
)

// PlanDay runs the full planning pipeline (guard, rate-limit slot, prompt,
// model call, validation) wrapped in bounded retries with exponential backoff.
func (uc *implUseCase) PlanDay(ctx context.Context, input planner.PlanDayInput) (planner.PlanDayOutput, error) {
	// Fail before any rate-limit slot or model call is consumed.
	if len(input.Tasks) == 0 {
		return planner.PlanDayOutput{}, planner.NewNoTasksError()
	}

	descriptions := make([]string, len(input.Tasks))
	for i, t := range input.Tasks {
		descriptions[i] = t.Description
	}
	prompt := gemini.BuildSchedulePrompt(descriptions)

	uc.l.Infof(ctx, "PlanDay: planning %d tasks", len(input.Tasks))

	totalAttempts := uc.cfg.MaxRetries + 1
	var lastErr *planner.Error

	for attempt := 0; attempt < totalAttempts; attempt++ {
		entries, err := uc.attemptPlan(ctx, prompt)
		if err == nil {
			uc.l.Infof(ctx, "PlanDay: succeeded on attempt %d with %d entries", attempt+1, len(entries))
			return uc.buildOutput(ctx, input, entries), nil
		}

		classified := planner.Classify(err)
		lastErr = classified
		uc.l.Warnf(ctx, "PlanDay: attempt %d/%d failed (%s): %v",
			attempt+1, totalAttempts, classified.Kind, classified)

		// Non-retryable errors terminate immediately, no backoff.
		if !classified.Retryable {
			return planner.PlanDayOutput{}, classified
		}
		if attempt == totalAttempts-1 {
			break
		}

		delay := uc.cfg.BaseDelay * (1 << attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return planner.PlanDayOutput{}, ctx.Err()
		}
	}

	return planner.PlanDayOutput{}, lastErr
}

// attemptPlan performs one rate-limited model call plus validation.
func (uc *implUseCase) attemptPlan(ctx context.Context, prompt string) ([]validatedEntry, error) {
	if err := uc.limiter.WaitForSlot(ctx); err != nil {
		return nil, err
	}

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2, // low temperature for deterministic JSON output
			MaxOutputTokens: 2048,
		},
	})
	if err != nil {
		return nil, err
	}

	return validateScheduleResponse(resp.Text())
}

// buildOutput converts validated entries into the public output, optionally
// exporting them to Google Calendar.
func (uc *implUseCase) buildOutput(ctx context.Context, input planner.PlanDayInput, entries []validatedEntry) planner.PlanDayOutput {
	schedule := make([]planner.ScheduledTask, len(entries))
	for i, e := range entries {
		schedule[i] = planner.ScheduledTask{
			Task:   e.Task,
			Time:   e.Time,
			Reason: e.Reason,
		}
	}

	if input.AddToCalendar && uc.calendar != nil {
		for i, e := range entries {
			schedule[i].CalendarLink = uc.tryCreateCalendarEvent(ctx, e)
		}
	}

	return planner.PlanDayOutput{
		Schedule:  schedule,
		TaskCount: len(schedule),
	}
}
