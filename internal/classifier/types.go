package classifier

import "support-agent-orchestrator/internal/model"

// Part is one fragment of a multi-part query with its category.
type Part struct {
	Text     string
	Category model.Category
}

// Decision is the structured routing decision. Exactly one of the two
// shapes holds: Parts non-empty (multi-part), or the single-category
// fields. NeedsClarification=true implies Clarification is non-empty.
type Decision struct {
	// Single-category shape
	Category           model.Category
	Confidence         float64
	NeedsClarification bool
	Clarification      string

	// Multi-part shape
	Parts []Part

	// ParseErr records the diagnostic behind a fallback decision. It is
	// informational only; a Decision is always dispatchable.
	ParseErr error
}

// MultiPart reports whether the decision is the multi-part shape.
func (d Decision) MultiPart() bool {
	return len(d.Parts) > 0
}

// Wire shapes emitted by the model.

type singleWire struct {
	Classification        string  `json:"classification"`
	Confidence            float64 `json:"confidence"`
	RequiresClarification bool    `json:"requires_clarification"`
	ClarificationQuestion string  `json:"clarification_question"`
}

type multiWire struct {
	MultiPart bool       `json:"multi_part"`
	Parts     []partWire `json:"parts"`
}

type partWire struct {
	QueryPart      string `json:"query_part"`
	Classification string `json:"classification"`
}
