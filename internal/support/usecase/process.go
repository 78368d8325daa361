package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"support-agent-orchestrator/internal/classifier"
	"support-agent-orchestrator/internal/model"
	"support-agent-orchestrator/internal/support"
)

const LogPrefixProcess = "internal.support.Process"

// Process classifies the query and routes it to the right specialist. Every
// query gets exactly one turn appended to its conversation, whichever path
// produced the response.
func (uc *implUseCase) Process(ctx context.Context, input support.ProcessInput) (support.ProcessOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return support.ProcessOutput{}, support.ErrEmptyQuery
	}

	conversationID := input.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
		uc.l.Infof(ctx, "%s: started conversation %s", LogPrefixProcess, conversationID)
	}

	history := uc.store.History(conversationID)

	decision := uc.classifier.Classify(ctx, input.Query, history)
	if decision.ParseErr != nil {
		uc.l.Warnf(ctx, "%s: classification fell back to %s: %v", LogPrefixProcess, decision.Category, decision.ParseErr)
	}

	var response, agent string
	switch {
	case decision.MultiPart():
		response = uc.processParts(ctx, decision.Parts, history)
		agent = model.AgentMultiple
	case decision.NeedsClarification:
		response = decision.Clarification
		agent = model.AgentRouter
	default:
		uc.l.Infof(ctx, "%s: routing to %s (confidence %.2f)", LogPrefixProcess, decision.Category, decision.Confidence)
		response = uc.registry.Dispatch(ctx, decision.Category, input.Query, history)
		agent = decision.Category.Agent()
	}

	uc.store.Append(conversationID, model.Turn{
		Query:     input.Query,
		Response:  response,
		HandledBy: agent,
	})

	return support.ProcessOutput{
		Response:       response,
		Agent:          agent,
		ConversationID: conversationID,
	}, nil
}

// processParts answers a multi-part query by dispatching each part in
// order against the same pre-query history, then joining the answers.
func (uc *implUseCase) processParts(ctx context.Context, parts []classifier.Part, history []model.Turn) string {
	uc.l.Infof(ctx, "%s: multi-part query with %d parts", LogPrefixProcess, len(parts))

	answers := make([]string, 0, len(parts))
	for _, part := range parts {
		answers = append(answers, uc.registry.Dispatch(ctx, part.Category, part.Text, history))
	}
	return strings.Join(answers, "\n\n")
}
