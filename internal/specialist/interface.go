package specialist

import (
	"context"

	"support-agent-orchestrator/internal/model"
)

// Handler produces the final answer for one support category.
// Handle is total: generation failures surface as inline error text in the
// returned response, never as an error value.
type Handler interface {
	Category() model.Category
	Handle(ctx context.Context, query string, history []model.Turn) string
}

// Catalog exposes the product catalog for prompt embedding.
type Catalog interface {
	// PricingJSON renders the product list as indented JSON, empty string
	// when no catalog is loaded.
	PricingJSON() string
}
