package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-routine/internal/task"
	"smart-routine/pkg/gcalendar"
	"smart-routine/pkg/response"
)

// mapError writes the HTTP response for a use-case error.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyTitle), errors.Is(err, task.ErrInvalidRange):
		response.Error(c, err, nil)
	case errors.Is(err, task.ErrCalendarDisabled):
		response.ServiceUnavailable(c, err)
	case errors.Is(err, gcalendar.ErrService):
		response.ErrorWithStatus(c, http.StatusBadGateway, gcalendar.ErrService, nil)
	default:
		response.InternalError(c, err)
	}
}
