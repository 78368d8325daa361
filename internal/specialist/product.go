package specialist

import (
	"context"
	"fmt"
	"strings"

	"support-agent-orchestrator/internal/generator"
	"support-agent-orchestrator/internal/model"
	"support-agent-orchestrator/internal/retrieval"
)

// ProductHandler answers product, feature, and plan questions grounded in
// the product/FAQ index. It makes no backend calls.
type ProductHandler struct {
	retriever retrieval.Retriever
	gen       generator.Generator
	topK      int
}

var _ Handler = (*ProductHandler)(nil)

// NewProduct creates the product specialist.
func NewProduct(retriever retrieval.Retriever, gen generator.Generator, topK int) *ProductHandler {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &ProductHandler{
		retriever: retriever,
		gen:       gen,
		topK:      topK,
	}
}

func (h *ProductHandler) Category() model.Category {
	return model.CategoryProduct
}

func (h *ProductHandler) Handle(ctx context.Context, query string, history []model.Turn) string {
	passages := h.retriever.Retrieve(ctx, retrieval.IndexProducts, query, h.topK)
	relevantInfo := strings.Join(passages, "\n\n")

	prompt := fmt.Sprintf(`Customer query: %s

Relevant information:
%s

Please provide a helpful response based on this information.`, query, relevantInfo)

	return h.gen.Generate(ctx, prompt, PromptProductSystem)
}
