package specialist

import (
	"context"
	"fmt"

	"support-agent-orchestrator/internal/generator"
	"support-agent-orchestrator/internal/model"
)

// GeneralHandler answers queries that match no specialist category. It is
// also the registry fallback, so it must stay dependency-light.
type GeneralHandler struct {
	gen generator.Generator
}

var _ Handler = (*GeneralHandler)(nil)

// NewGeneral creates the general inquiry specialist.
func NewGeneral(gen generator.Generator) *GeneralHandler {
	return &GeneralHandler{gen: gen}
}

func (h *GeneralHandler) Category() model.Category {
	return model.CategoryGeneral
}

func (h *GeneralHandler) Handle(ctx context.Context, query string, history []model.Turn) string {
	prompt := fmt.Sprintf(`Customer query: %s

Please provide a helpful and friendly general response to this query.`, query)

	return h.gen.Generate(ctx, prompt, PromptGeneralSystem)
}
