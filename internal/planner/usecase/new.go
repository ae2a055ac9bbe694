package usecase

import (
	"time"

	"github.com/jdev86/daily-task-app/pkg/gcalendar"
	"github.com/jdev86/daily-task-app/pkg/gemini"
	pkgLog "github.com/jdev86/daily-task-app/pkg/log"
	"github.com/jdev86/daily-task-app/pkg/ratelimit"
)

// Config tunes the retry orchestration and calendar export.
type Config struct {
	// MaxRetries is the number of automatic retries after the first attempt
	// (total attempts = MaxRetries + 1).
	MaxRetries int

	// BaseDelay is the backoff base: the wait after failed attempt n is
	// BaseDelay * 2^n.
	BaseDelay time.Duration

	// Timezone anchors calendar events ("America/New_York" style). Falls
	// back to UTC when empty or invalid.
	Timezone string

	// CalendarID is the target calendar for exports; "primary" when empty.
	CalendarID string
}

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = time.Second
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      gemini.IGemini
	calendar *gcalendar.Client
	limiter  *ratelimit.WindowLimiter
	cfg      Config
}

// New creates a new planner UseCase instance. calendar may be nil; export is
// then skipped.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	calendar *gcalendar.Client,
	limiter *ratelimit.WindowLimiter,
	cfg Config,
) *implUseCase {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}
	return &implUseCase{
		l:        l,
		llm:      llm,
		calendar: calendar,
		limiter:  limiter,
		cfg:      cfg,
	}
}
