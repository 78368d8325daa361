package retrieval

import (
	"context"

	"support-agent-orchestrator/pkg/log"
	"support-agent-orchestrator/pkg/qdrant"
	"support-agent-orchestrator/pkg/voyage"
)

// Log prefixes
const (
	LogPrefixRetrieve = "internal.retrieval.Retrieve"
)

// VectorRetriever embeds the query and searches the named qdrant collection.
type VectorRetriever struct {
	embedder voyage.Embedder
	store    *qdrant.Client
	l        log.Logger
}

var _ Retriever = (*VectorRetriever)(nil)

// New creates a new VectorRetriever.
func New(embedder voyage.Embedder, store *qdrant.Client, l log.Logger) *VectorRetriever {
	return &VectorRetriever{
		embedder: embedder,
		store:    store,
		l:        l,
	}
}

// Retrieve returns up to topK passages from the index, best match first.
// Failures are logged and degrade to an empty result; they never propagate.
func (r *VectorRetriever) Retrieve(ctx context.Context, index Index, query string, topK int) []string {
	if topK <= 0 || query == "" {
		return nil
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		r.l.Warnf(ctx, "%s: embedding failed for index %s: %v", LogPrefixRetrieve, index, err)
		return nil
	}
	if len(vectors) == 0 {
		r.l.Warnf(ctx, "%s: embedder returned no vectors for index %s", LogPrefixRetrieve, index)
		return nil
	}

	resp, err := r.store.SearchPoints(ctx, string(index), qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       topK,
		WithPayload: true,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: search failed for index %s: %v", LogPrefixRetrieve, index, err)
		return nil
	}

	passages := make([]string, 0, len(resp.Result))
	for _, point := range resp.Result {
		text, ok := point.Payload[PayloadTextKey].(string)
		if !ok || text == "" {
			continue
		}
		passages = append(passages, text)
	}

	return passages
}
