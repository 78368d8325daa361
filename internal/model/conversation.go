package model

// Agent labels for turns not handled by a single specialist.
const (
	AgentMultiple = "multiple"
	AgentRouter   = "router"
)

// Turn is one completed query/response exchange in a conversation.
type Turn struct {
	Query     string `json:"query"`
	Response  string `json:"response"`
	HandledBy string `json:"handled_by"` // category agent name, "multiple", or "router"
}
