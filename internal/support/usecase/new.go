package usecase

import (
	"support-agent-orchestrator/internal/classifier"
	"support-agent-orchestrator/internal/conversation"
	"support-agent-orchestrator/internal/specialist"
	pkgLog "support-agent-orchestrator/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	classifier classifier.Classifier
	registry   *specialist.Registry
	store      conversation.Store
}

// New creates a new support UseCase instance.
func New(
	l pkgLog.Logger,
	clf classifier.Classifier,
	registry *specialist.Registry,
	store conversation.Store,
) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: clf,
		registry:   registry,
		store:      store,
	}
}
