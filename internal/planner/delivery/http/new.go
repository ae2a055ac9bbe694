package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jdev86/daily-task-app/internal/planner"
	pkgLog "github.com/jdev86/daily-task-app/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	PlanDay(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l pkgLog.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
