package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-routine/internal/mood"
	"smart-routine/pkg/log"
)

// Handler is the public interface for the mood HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	List(c *gin.Context)
	Suggest(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  mood.UseCase
	loc *time.Location
	now func() time.Time
}

// New creates a new HTTP handler for the mood domain. Suggestions are computed
// for the current time in loc.
func New(l log.Logger, uc mood.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{l: l, uc: uc, loc: loc, now: time.Now}
}
