package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	moods := rg.Group("/moods")
	{
		moods.GET("", h.List)
		moods.POST("", h.Analyze)
		moods.GET("/suggestion", h.Suggest)
	}
}
