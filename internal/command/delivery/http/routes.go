package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods. mw runs before
// every command route.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	commands := rg.Group("/commands", mw...)
	{
		commands.POST("", h.Process)
		commands.GET("/history", h.History)
	}
}
