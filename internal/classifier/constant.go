package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Classifier prompts
const (
	PromptClassifySystem = `You are a Router Agent for TechSolutions customer support. Your job is to:
1. Understand the customer's query
2. Classify the query into one of these categories:
   - Product: Questions about products, features, pricing, plans
   - Technical: Questions about errors, issues, troubleshooting
   - Billing: Questions about orders, invoices, payments, subscriptions
   - Account: Questions about user management, access, settings
   - General: General inquiries that don't fit other categories
3. For multi-part queries, identify each part and its category

Respond with JSON in this format:
{
    "classification": "Product" or "Technical" or "Billing" or "Account" or "General",
    "confidence": 0.9,
    "requires_clarification": false,
    "clarification_question": "optional question if requires_clarification is true"
}

For multi-part queries, respond with:
{
    "multi_part": true,
    "parts": [
        {
            "query_part": "extracted part of the query",
            "classification": "Product" or "Technical" or "Billing" or "Account" or "General"
        }
    ]
}`

	PromptClassifyTemplate = "CLASSIFY QUERY: %s\n\nOUTPUT JSON:"

	PromptHistoryPrefix = "Recent conversation history:\n"
)

// Classifier configuration
const (
	FallbackConfidence = 0.5
	MaxHistoryTurns    = 5
)

// DefaultClarification is used on the fallback path and whenever the model
// asks for clarification without supplying a question.
const DefaultClarification = "Could you please rephrase or provide more details about your question?"

// Error messages
const (
	ErrMsgGenerateFailed  = "generation returned no parseable JSON"
	ErrMsgJSONParseFailed = "failed to parse classification JSON"
	ErrMsgInvalidShape    = "classification JSON has invalid shape"
)
