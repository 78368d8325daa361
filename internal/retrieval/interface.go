package retrieval

import "context"

// Index names a topic-specific document collection.
type Index string

const (
	IndexProducts      Index = "products"      // product catalog + FAQs
	IndexTechnical     Index = "technical"     // technical documentation
	IndexConversations Index = "conversations" // historical support conversations
)

// PayloadTextKey is the qdrant payload field holding the passage text.
const PayloadTextKey = "text"

// Retriever fetches relevant passages from a topic index.
// Retrieve never fails: any error yields an empty result.
type Retriever interface {
	Retrieve(ctx context.Context, index Index, query string, topK int) []string
}

// Noop satisfies Retriever with no vector store. Specialists then prompt
// without retrieved context.
type Noop struct{}

var _ Retriever = Noop{}

func (Noop) Retrieve(ctx context.Context, index Index, query string, topK int) []string {
	return nil
}
