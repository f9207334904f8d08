package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.PATCH("/:id/done", h.MarkDone)
		tasks.DELETE("/:id", h.Delete)
	}

	rg.GET("/calendar/events", h.UpcomingEvents)
}
