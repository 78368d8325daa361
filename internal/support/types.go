package support

// ProcessInput is the input for one customer query.
type ProcessInput struct {
	Query          string // Natural language customer query
	ConversationID string // Empty starts a new conversation
}

// ProcessOutput is the routed response for one customer query.
type ProcessOutput struct {
	Response       string // Final answer text
	Agent          string // Specialist that produced the answer, "router" or "multiple" for orchestrated paths
	ConversationID string // Echoed or newly minted conversation id
}
