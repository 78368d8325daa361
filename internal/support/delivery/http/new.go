package http

import (
	"github.com/gin-gonic/gin"

	"support-agent-orchestrator/internal/support"
	"support-agent-orchestrator/pkg/log"
)

// Handler is the public interface for the support HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc support.UseCase
}

// New creates a new HTTP handler for the support domain.
func New(l log.Logger, uc support.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
