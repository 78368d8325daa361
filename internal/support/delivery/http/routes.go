package http

import (
	"github.com/gin-gonic/gin"

	"support-agent-orchestrator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/query", mw.RateLimit(), h.Process)
}
