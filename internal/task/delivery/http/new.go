package http

import (
	"github.com/gin-gonic/gin"

	"smart-routine/internal/task"
	"smart-routine/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	MarkDone(c *gin.Context)
	Delete(c *gin.Context)
	UpcomingEvents(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
