package http

import (
	"net/http"

	"github.com/jdev86/daily-task-app/internal/planner"
	pkgErrors "github.com/jdev86/daily-task-app/pkg/errors"
)

// mapError translates classified planner errors into HTTP errors.
// Model misbehavior surfaces as 502: the service itself is healthy, the
// upstream reply was unusable.
func (h *handler) mapError(planErr *planner.Error) error {
	switch planErr.Kind {
	case planner.KindNoTasks:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, planErr.Message)
	case planner.KindNoResponse, planner.KindInvalidFormat, planner.KindParseError:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, planErr.Message)
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, planErr.Message)
	}
}
