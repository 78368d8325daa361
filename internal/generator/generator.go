package generator

import (
	"context"
	"fmt"

	"support-agent-orchestrator/pkg/llmprovider"
	"support-agent-orchestrator/pkg/log"
)

// Log prefixes
const (
	LogPrefixGenerate = "internal.generator.Generate"
)

// ErrMsgTemplate is the inline error text returned in place of an answer
// when generation fails. Callers treat it as ordinary text.
const ErrMsgTemplate = "I encountered an error while processing your request. Error: %s"

// Generator produces plain text for a prompt and optional system instruction.
// It is total: failures come back as an inline error string, never an error.
type Generator interface {
	Generate(ctx context.Context, prompt, system string) string
}

// LLMGenerator generates responses through the provider manager.
type LLMGenerator struct {
	llm *llmprovider.Manager
	l   log.Logger
}

var _ Generator = (*LLMGenerator)(nil)

// New creates a new LLMGenerator.
func New(llm *llmprovider.Manager, l log.Logger) *LLMGenerator {
	return &LLMGenerator{
		llm: llm,
		l:   l,
	}
}

// Generate sends the prompt to the LLM and returns the response text.
// On any provider failure it degrades to the inline error string.
func (g *LLMGenerator) Generate(ctx context.Context, prompt, system string) string {
	resp, err := g.llm.GenerateContent(ctx, &llmprovider.Request{
		System: system,
		Prompt: prompt,
	})
	if err != nil {
		g.l.Errorf(ctx, "%s: generation failed: %v", LogPrefixGenerate, err)
		return fmt.Sprintf(ErrMsgTemplate, err)
	}

	return resp.Text
}
