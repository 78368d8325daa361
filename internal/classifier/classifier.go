package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"support-agent-orchestrator/internal/model"
)

// Classify determines the routing decision for a query.
// Model output is untrusted: extra prose, code fences, and missing fields
// are all expected. Every failure path terminates in the fallback decision.
func (c *LLMClassifier) Classify(ctx context.Context, query string, history []model.Turn) Decision {
	historyContext := ""
	if len(history) > 0 {
		historyContext = PromptHistoryPrefix
		start := 0
		if len(history) > MaxHistoryTurns {
			start = len(history) - MaxHistoryTurns
		}
		for i, turn := range history[start:] {
			historyContext += fmt.Sprintf("%d. Customer: %s\n", i+1, turn.Query)
		}
		historyContext += "\n"
	}

	prompt := historyContext + fmt.Sprintf(PromptClassifyTemplate, query)

	raw := c.gen.Generate(ctx, prompt, PromptClassifySystem)

	decision, err := parseDecision(raw)
	if err != nil {
		c.l.Warnf(ctx, "%s: %s: %v (raw: %q)", LogPrefixClassify, ErrMsgJSONParseFailed, err, raw)
		return fallbackDecision(err)
	}

	if decision.MultiPart() {
		c.l.Infof(ctx, "%s: classified as multi-part with %d parts", LogPrefixClassify, len(decision.Parts))
	} else {
		c.l.Infof(ctx, "%s: classified as %s (confidence: %.2f)", LogPrefixClassify, decision.Category, decision.Confidence)
	}
	return decision
}

// parseDecision cleans and parses a raw model reply into a Decision.
func parseDecision(raw string) (Decision, error) {
	clean := cleanJSONResponse(raw)
	if clean == "" {
		return Decision{}, errors.New(ErrMsgGenerateFailed)
	}
	if !gjson.Valid(clean) {
		return Decision{}, errors.New(ErrMsgJSONParseFailed)
	}

	doc := gjson.Parse(clean)

	if doc.Get("multi_part").Exists() {
		return parseMultiDecision(clean, doc)
	}
	return parseSingleDecision(clean, doc)
}

func parseMultiDecision(clean string, doc gjson.Result) (Decision, error) {
	if !doc.Get("parts").Exists() {
		return Decision{}, fmt.Errorf("%s: missing parts", ErrMsgInvalidShape)
	}

	var wire multiWire
	if err := json.Unmarshal([]byte(clean), &wire); err != nil {
		return Decision{}, fmt.Errorf("%s: %w", ErrMsgJSONParseFailed, err)
	}
	if len(wire.Parts) == 0 {
		return Decision{}, fmt.Errorf("%s: empty parts", ErrMsgInvalidShape)
	}

	parts := make([]Part, 0, len(wire.Parts))
	for i, p := range wire.Parts {
		if p.QueryPart == "" || p.Classification == "" {
			return Decision{}, fmt.Errorf("%s: part %d missing query_part or classification", ErrMsgInvalidShape, i)
		}
		parts = append(parts, Part{
			Text:     p.QueryPart,
			Category: model.ParseCategory(p.Classification),
		})
	}

	return Decision{Parts: parts}, nil
}

func parseSingleDecision(clean string, doc gjson.Result) (Decision, error) {
	for _, field := range []string{"classification", "confidence", "requires_clarification"} {
		if !doc.Get(field).Exists() {
			return Decision{}, fmt.Errorf("%s: missing %s", ErrMsgInvalidShape, field)
		}
	}

	var wire singleWire
	if err := json.Unmarshal([]byte(clean), &wire); err != nil {
		return Decision{}, fmt.Errorf("%s: %w", ErrMsgJSONParseFailed, err)
	}
	if wire.Confidence < 0 || wire.Confidence > 1 {
		return Decision{}, fmt.Errorf("%s: confidence %v out of range", ErrMsgInvalidShape, wire.Confidence)
	}

	clarification := wire.ClarificationQuestion
	if wire.RequiresClarification && clarification == "" {
		clarification = DefaultClarification
	}

	return Decision{
		Category:           model.ParseCategory(wire.Classification),
		Confidence:         wire.Confidence,
		NeedsClarification: wire.RequiresClarification,
		Clarification:      clarification,
	}, nil
}

// cleanJSONResponse strips markdown fences and isolates the substring
// between the first '{' and the last '}'.
func cleanJSONResponse(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}

// fallbackDecision is the deterministic total fallback: always dispatchable,
// always asks for clarification, never raises.
func fallbackDecision(parseErr error) Decision {
	return Decision{
		Category:           model.CategoryGeneral,
		Confidence:         FallbackConfidence,
		NeedsClarification: true,
		Clarification:      DefaultClarification,
		ParseErr:           parseErr,
	}
}
