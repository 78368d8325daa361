// Package backendmock serves canned order, account, and diagnostic data on
// the backend REST surface, for local development and demos without the
// real backend systems.
package backendmock

import (
	"support-agent-orchestrator/pkg/log"
)

type Server struct {
	l log.Logger
}

// New creates a mock backend server.
func New(l log.Logger) *Server {
	return &Server{l: l}
}
