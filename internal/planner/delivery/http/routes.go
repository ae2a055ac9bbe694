package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jdev86/daily-task-app/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Planning calls are rate limited per client on top of the use case's own
// outbound LLM quota.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	plannerGroup := rg.Group("/planner")
	{
		plannerGroup.POST("/plan", mw.RateLimit(), h.PlanDay)
	}
}
