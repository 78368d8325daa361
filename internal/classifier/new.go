package classifier

import (
	"context"

	"support-agent-orchestrator/internal/generator"
	"support-agent-orchestrator/internal/model"
	"support-agent-orchestrator/pkg/log"
)

// Classifier is the interface for routing classification.
// Classify is total: it always returns a dispatchable Decision.
type Classifier interface {
	Classify(ctx context.Context, query string, history []model.Turn) Decision
}

// LLMClassifier classifies support queries using the response generator.
type LLMClassifier struct {
	gen generator.Generator
	l   log.Logger
}

// Ensure LLMClassifier implements Classifier interface
var _ Classifier = (*LLMClassifier)(nil)

// New creates a new LLMClassifier
func New(gen generator.Generator, l log.Logger) *LLMClassifier {
	return &LLMClassifier{
		gen: gen,
		l:   l,
	}
}
