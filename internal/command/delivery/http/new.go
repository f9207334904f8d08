package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-routine/internal/command"
	"smart-routine/pkg/log"
)

// Handler is the public interface for the command HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  command.UseCase
	loc *time.Location
}

// New creates a new HTTP handler for commands. Times in responses are shown in loc.
func New(l log.Logger, uc command.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{l: l, uc: uc, loc: loc}
}
