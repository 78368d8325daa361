package support

import "context"

// UseCase defines the business logic interface for the support domain.
type UseCase interface {
	// Process routes a customer query through classification to the
	// right specialist and records the turn in the conversation.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}
