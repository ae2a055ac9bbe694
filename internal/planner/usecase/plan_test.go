package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jdev86/daily-task-app/internal/planner"
	"github.com/jdev86/daily-task-app/pkg/ratelimit"
)

const testBaseDelay = 5 * time.Millisecond

func newTestUseCase(llm *mockGemini) *implUseCase {
	// Generous limiter so rate limiting never interferes unless a test wants it.
	limiter := ratelimit.NewWindowLimiter(100, time.Minute)
	return New(&mockLogger{}, llm, nil, limiter, Config{
		MaxRetries: 3,
		BaseDelay:  testBaseDelay,
	})
}

func tasks(descriptions ...string) []planner.Task {
	out := make([]planner.Task, len(descriptions))
	for i, d := range descriptions {
		out[i] = planner.Task{Description: d}
	}
	return out
}

func TestPlanDay_EmptyTasks(t *testing.T) {
	llm := &mockGemini{replies: []mockReply{{text: `{"schedule":[]}`}}}
	uc := newTestUseCase(llm)

	_, err := uc.PlanDay(context.Background(), planner.PlanDayInput{})

	planErr := planner.Classify(err)
	if planErr.Kind != planner.KindNoTasks {
		t.Fatalf("expected NO_TASKS, got %s", planErr.Kind)
	}
	if planErr.Retryable {
		t.Errorf("NO_TASKS must not be retryable")
	}
	if llm.callCount() != 0 {
		t.Errorf("model must never be called for empty input, got %d calls", llm.callCount())
	}
}

func TestPlanDay_SuccessRoundTrip(t *testing.T) {
	llm := &mockGemini{replies: []mockReply{
		{text: `{"schedule":[{"task":"A","time":"09:00","reason":"r"}]}`},
	}}
	uc := newTestUseCase(llm)

	out, err := uc.PlanDay(context.Background(), planner.PlanDayInput{Tasks: tasks("A")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.TaskCount != 1 || len(out.Schedule) != 1 {
		t.Fatalf("expected 1 scheduled task, got %+v", out)
	}
	got := out.Schedule[0]
	if got.Task != "A" || got.Time != "9:00 AM" || got.Reason != "r" {
		t.Errorf("unexpected entry: %+v", got)
	}
	if llm.callCount() != 1 {
		t.Errorf("expected exactly 1 model call, got %d", llm.callCount())
	}
}

func TestPlanDay_SortsChronologically(t *testing.T) {
	llm := &mockGemini{replies: []mockReply{
		{text: `{"schedule":[
			{"task":"C","time":"14:30","reason":"afternoon"},
			{"task":"A","time":"06:00","reason":"early"},
			{"task":"B","time":"09:15","reason":"mid-morning"}
		]}`},
	}}
	uc := newTestUseCase(llm)

	out, err := uc.PlanDay(context.Background(), planner.PlanDayInput{Tasks: tasks("A", "B", "C")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTimes := []string{"6:00 AM", "9:15 AM", "2:30 PM"}
	wantTasks := []string{"A", "B", "C"}
	for i := range wantTimes {
		if out.Schedule[i].Time != wantTimes[i] || out.Schedule[i].Task != wantTasks[i] {
			t.Errorf("position %d: got %s/%s, want %s/%s",
				i, out.Schedule[i].Task, out.Schedule[i].Time, wantTasks[i], wantTimes[i])
		}
	}
}

func TestPlanDay_RetriesThenSucceeds(t *testing.T) {
	llm := &mockGemini{replies: []mockReply{
		{err: errors.New("upstream 503")},
		{err: errors.New("upstream 503")},
		{err: errors.New("upstream 503")},
		{text: `{"schedule":[{"task":"A","time":"10:00","reason":"r"}]}`},
	}}
	uc := newTestUseCase(llm)

	start := time.Now()
	out, err := uc.PlanDay(context.Background(), planner.PlanDayInput{Tasks: tasks("A")})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("expected success on 4th attempt, got %v", err)
	}
	if llm.callCount() != 4 {
		t.Errorf("expected 4 attempts, got %d", llm.callCount())
	}
	if out.Schedule[0].Time != "10:00 AM" {
		t.Errorf("unexpected schedule: %+v", out.Schedule)
	}

	// Geometric backoff: base + 2*base + 4*base between the 4 attempts.
	if minWait := 7 * testBaseDelay; elapsed < minWait {
		t.Errorf("expected at least %v of backoff, finished in %v", minWait, elapsed)
	}
}

func TestPlanDay_ExhaustsRetries(t *testing.T) {
	llm := &mockGemini{replies: []mockReply{{err: errors.New("upstream down")}}}
	uc := newTestUseCase(llm)

	_, err := uc.PlanDay(context.Background(), planner.PlanDayInput{Tasks: tasks("A")})

	planErr := planner.Classify(err)
	if planErr.Kind != planner.KindUnknown {
		t.Errorf("expected UNKNOWN_ERROR, got %s", planErr.Kind)
	}
	if llm.callCount() != 4 {
		t.Errorf("expected 4 attempts before giving up, got %d", llm.callCount())
	}
}

func TestPlanDay_NonRetryableShortCircuits(t *testing.T) {
	fatal := &planner.Error{Kind: planner.KindUnknown, Message: "hard failure", Retryable: false}
	llm := &mockGemini{replies: []mockReply{{err: fatal}}}
	uc := newTestUseCase(llm)

	start := time.Now()
	_, err := uc.PlanDay(context.Background(), planner.PlanDayInput{Tasks: tasks("A")})
	elapsed := time.Since(start)

	if planner.Classify(err) != fatal {
		t.Fatalf("expected the classified error to surface unchanged, got %v", err)
	}
	if llm.callCount() != 1 {
		t.Errorf("expected no further attempts, got %d", llm.callCount())
	}
	if elapsed >= testBaseDelay {
		t.Errorf("expected zero backoff delay, took %v", elapsed)
	}
}

func TestPlanDay_InvalidFormatRetriedThenSurfaced(t *testing.T) {
	llm := &mockGemini{replies: []mockReply{
		{text: `{"schedule":[{"task":"A","time":"24:15","reason":"r"}]}`},
	}}
	uc := newTestUseCase(llm)

	out, err := uc.PlanDay(context.Background(), planner.PlanDayInput{Tasks: tasks("A")})

	planErr := planner.Classify(err)
	if planErr.Kind != planner.KindInvalidFormat {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}
	// All-or-nothing: no partial schedule alongside the error.
	if len(out.Schedule) != 0 {
		t.Errorf("expected no partial schedule, got %+v", out.Schedule)
	}
	// INVALID_FORMAT is retryable, so the full attempt budget is consumed.
	if llm.callCount() != 4 {
		t.Errorf("expected 4 attempts, got %d", llm.callCount())
	}
}

func TestPlanDay_EmptyModelOutput(t *testing.T) {
	llm := &mockGemini{replies: []mockReply{{text: "   "}}}
	uc := newTestUseCase(llm)

	_, err := uc.PlanDay(context.Background(), planner.PlanDayInput{Tasks: tasks("A")})

	if planner.Classify(err).Kind != planner.KindNoResponse {
		t.Errorf("expected NO_RESPONSE, got %v", err)
	}
}

func TestPlanDay_ContextCancelledDuringBackoff(t *testing.T) {
	llm := &mockGemini{replies: []mockReply{{err: errors.New("flaky")}}}
	limiter := ratelimit.NewWindowLimiter(100, time.Minute)
	uc := New(&mockLogger{}, llm, nil, limiter, Config{
		MaxRetries: 3,
		BaseDelay:  time.Minute, // long enough that cancellation wins
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := uc.PlanDay(ctx, planner.PlanDayInput{Tasks: tasks("A")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
