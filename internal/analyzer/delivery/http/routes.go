package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-analyzer/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The analyze POST is rate limited; the GET probe is not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw *middleware.Middleware) {
	rg.POST("/analyze", mw.RateLimit(), h.Analyze)
	rg.GET("/analyze", h.Describe)
}
