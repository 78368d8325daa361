package http

import (
	"support-agent-orchestrator/internal/support"
)

// --- Request DTOs ---

type processReq struct {
	Query          string `json:"query"           binding:"required,min=1"`
	ConversationID string `json:"conversation_id" binding:"omitempty,max=64"`
}

func (r processReq) validate() error { return nil }

func (r processReq) toInput() support.ProcessInput {
	return support.ProcessInput{
		Query:          r.Query,
		ConversationID: r.ConversationID,
	}
}

// --- Response DTOs ---

type processResp struct {
	Response       string `json:"response"`
	Agent          string `json:"agent"`
	ConversationID string `json:"conversation_id"`
}

func (h *handler) newProcessResp(out support.ProcessOutput) processResp {
	return processResp{
		Response:       out.Response,
		Agent:          out.Agent,
		ConversationID: out.ConversationID,
	}
}
