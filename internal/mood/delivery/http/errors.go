package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-routine/internal/mood"
	"smart-routine/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mood.ErrEmptyText):
		response.Error(c, err, nil)
	case errors.Is(err, mood.ErrAnalyzerUnavailable):
		response.ServiceUnavailable(c, mood.ErrAnalyzerUnavailable)
	default:
		response.InternalError(c, err)
	}
}
