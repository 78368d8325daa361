package specialist

import (
	"context"
	"fmt"
	"strings"

	"support-agent-orchestrator/internal/backend"
	"support-agent-orchestrator/internal/generator"
	"support-agent-orchestrator/internal/model"
	"support-agent-orchestrator/internal/retrieval"
)

// TechnicalHandler troubleshoots issues using the technical-docs index plus
// the automated diagnostic lookup. A failed or empty diagnosis silently
// omits that prompt section; it never blocks the response.
type TechnicalHandler struct {
	retriever retrieval.Retriever
	lookup    backend.Lookup
	gen       generator.Generator
	topK      int
}

var _ Handler = (*TechnicalHandler)(nil)

// NewTechnical creates the technical support specialist.
func NewTechnical(retriever retrieval.Retriever, lookup backend.Lookup, gen generator.Generator, topK int) *TechnicalHandler {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &TechnicalHandler{
		retriever: retriever,
		lookup:    lookup,
		gen:       gen,
		topK:      topK,
	}
}

func (h *TechnicalHandler) Category() model.Category {
	return model.CategoryTechnical
}

func (h *TechnicalHandler) Handle(ctx context.Context, query string, history []model.Turn) string {
	passages := h.retriever.Retrieve(ctx, retrieval.IndexTechnical, query, h.topK)
	relevantInfo := strings.Join(passages, "\n\n")

	diagnosticText := ""
	if diag, ok := h.lookup.Diagnose(ctx, query); ok && !diag.Empty() {
		diagnosticText = formatDiagnosis(diag)
	}

	prompt := fmt.Sprintf(`Customer query: %s

Relevant troubleshooting information:
%s

%s

Please provide a helpful response to resolve this technical issue.`, query, relevantInfo, diagnosticText)

	return h.gen.Generate(ctx, prompt, PromptTechnicalSystem)
}

func formatDiagnosis(diag backend.Diagnosis) string {
	var b strings.Builder
	b.WriteString("Diagnostic results:\n")

	name := diag.Name
	if name == "" {
		name = "Unknown issue"
	}
	fmt.Fprintf(&b, "Issue: %s\n", name)

	b.WriteString("Suggested solutions:\n")
	for _, solution := range diag.Solutions {
		fmt.Fprintf(&b, "- %s\n", solution)
	}

	fmt.Fprintf(&b, "Documentation: %s", diag.DocumentationLink)
	return b.String()
}
