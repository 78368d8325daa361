package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"support-agent-orchestrator/internal/middleware"
	supportHTTP "support-agent-orchestrator/internal/support/delivery/http"
	"support-agent-orchestrator/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Support domain
	supportHandler supportHTTP.Handler
	mw             middleware.Middleware

	// Mock backend, mounted in-process when enabled
	mockBackend interface {
		RegisterRoutes(rg *gin.RouterGroup)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	SupportHandler supportHTTP.Handler
	Middleware     middleware.Middleware

	MockBackend interface {
		RegisterRoutes(rg *gin.RouterGroup)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		supportHandler: cfg.SupportHandler,
		mw:             cfg.Middleware,
		mockBackend:    cfg.MockBackend,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.supportHandler == nil {
		return errors.New("support handler is required")
	}
	return nil
}
