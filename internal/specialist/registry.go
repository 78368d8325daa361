package specialist

import (
	"context"

	"support-agent-orchestrator/internal/model"
	"support-agent-orchestrator/pkg/log"
)

// Registry binds each category to exactly one handler. Categories with no
// registered handler dispatch to the declared fallback category, which keeps
// staged rollout of new categories possible without code changes at the
// dispatch site.
type Registry struct {
	handlers map[model.Category]Handler
	fallback model.Category
	l        log.Logger
}

// NewRegistry creates an empty registry with the given fallback category.
func NewRegistry(l log.Logger, fallback model.Category) *Registry {
	return &Registry{
		handlers: make(map[model.Category]Handler),
		fallback: fallback,
		l:        l,
	}
}

// Register binds a handler to its category, replacing any previous binding.
func (r *Registry) Register(h Handler) {
	r.handlers[h.Category()] = h
}

// Handler resolves the handler for a category, applying the fallback policy.
// The second return is false only when neither the category nor the
// fallback has a handler.
func (r *Registry) Handler(category model.Category) (Handler, bool) {
	if h, ok := r.handlers[category]; ok {
		return h, true
	}
	h, ok := r.handlers[r.fallback]
	return h, ok
}

// Dispatch routes a query to the handler for its category.
func (r *Registry) Dispatch(ctx context.Context, category model.Category, query string, history []model.Turn) string {
	h, ok := r.Handler(category)
	if !ok {
		// No handler and no fallback: should not happen with a fully
		// registered taxonomy, answer with the general path's tone.
		r.l.Errorf(ctx, "%s: no handler for category %s and no fallback", LogPrefixDispatch, category)
		return "I'm sorry, I can't help with that right now. Please try again later."
	}

	if h.Category() != category {
		r.l.Warnf(ctx, "%s: no handler for category %s, falling back to %s", LogPrefixDispatch, category, h.Category())
	}

	return h.Handle(ctx, query, history)
}
