package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jdev86/daily-task-app/internal/planner"
	"github.com/jdev86/daily-task-app/pkg/response"
)

// PlanDay godoc
// @Summary     Plan the day
// @Description Sends the task list to the LLM and returns a validated, chronologically sorted daily schedule.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Tasks to schedule"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request / empty task list"
// @Failure     502 {object} response.Resp "Model returned an unusable response"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/plan [POST]
func (h *handler) PlanDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PlanDay(ctx, req.toInput())
	if err != nil {
		planErr := planner.Classify(err)
		h.l.Errorf(ctx, "uc.PlanDay: %v", err)

		// kind and retryable let the client bound its own manual-retry
		// counter independently of the server-side attempt loop.
		response.Error(c, h.mapError(planErr), map[string]interface{}{
			"kind":      string(planErr.Kind),
			"retryable": planErr.Retryable,
		})
		return
	}

	response.OK(c, h.newPlanResp(output))
}
