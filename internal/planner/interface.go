package planner

import "context"

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// PlanDay asks the LLM for a daily schedule covering the given tasks,
	// validates and normalizes the reply, and returns it sorted
	// chronologically. Failures carry a *planner.Error classification.
	PlanDay(ctx context.Context, input PlanDayInput) (PlanDayOutput, error)
}
