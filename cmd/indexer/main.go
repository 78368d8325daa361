package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"support-agent-orchestrator/config"
	"support-agent-orchestrator/internal/knowledge"
	"support-agent-orchestrator/internal/retrieval"
	"support-agent-orchestrator/pkg/log"
	pkgQdrant "support-agent-orchestrator/pkg/qdrant"
	"support-agent-orchestrator/pkg/voyage"
)

// Embedding batch size, kept under the Voyage API input limit.
const embedBatchSize = 64

func main() {
	if len(os.Args) > 1 {
		os.Setenv("CONFIG_PATH", os.Args[1])
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	base, err := knowledge.Load(cfg.Knowledge.DataDir)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load knowledge base from %s: %v", cfg.Knowledge.DataDir, err)
	}

	qdrantClient := pkgQdrant.NewClient(cfg.VectorStore.URL)
	embedder, err := voyage.New(cfg.Embedding.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize embedding client: %v", err)
	}
	if cfg.Embedding.Model != "" {
		embedder = embedder.WithModel(cfg.Embedding.Model)
	}

	splitter := knowledge.NewSplitter()
	indices := []struct {
		index retrieval.Index
		docs  []knowledge.Document
	}{
		{retrieval.IndexProducts, base.ProductDocuments(splitter)},
		{retrieval.IndexTechnical, base.TechnicalDocuments(splitter)},
		{retrieval.IndexConversations, base.ConversationDocuments(splitter)},
	}

	logger.Info(ctx, "Starting knowledge indexing...")

	for _, target := range indices {
		if err := indexDocuments(ctx, logger, qdrantClient, embedder, cfg.VectorStore.VectorSize, target.index, target.docs); err != nil {
			logger.Fatalf(ctx, "Failed to index %s: %v", target.index, err)
		}
	}

	logger.Info(ctx, "Knowledge indexing complete")
}

func indexDocuments(
	ctx context.Context,
	logger log.Logger,
	store *pkgQdrant.Client,
	embedder *voyage.Client,
	vectorSize int,
	index retrieval.Index,
	docs []knowledge.Document,
) error {
	collection := string(index)

	if err := store.EnsureCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: collection,
		Vectors: pkgQdrant.VectorConfig{
			Size:     vectorSize,
			Distance: pkgQdrant.DistanceCosine,
		},
	}); err != nil {
		return fmt.Errorf("failed to ensure collection: %w", err)
	}

	count, err := store.CountPoints(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to count points: %w", err)
	}
	if count > 0 {
		logger.Infof(ctx, "Collection %s already has %d points, skipping", collection, count)
		return nil
	}

	logger.Infof(ctx, "Indexing %d documents into %s", len(docs), collection)

	for start := 0; start < len(docs); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := docs[start:end]

		texts := make([]string, len(batch))
		for i, doc := range batch {
			texts[i] = doc.Text
		}

		vectors, err := embedder.Embed(ctx, texts)
		if err != nil {
			return fmt.Errorf("failed to embed batch: %w", err)
		}
		if len(vectors) != len(batch) {
			return fmt.Errorf("embedding count mismatch: got %d for %d documents", len(vectors), len(batch))
		}

		points := make([]pkgQdrant.Point, len(batch))
		for i, doc := range batch {
			payload := map[string]interface{}{
				retrieval.PayloadTextKey: doc.Text,
				"doc_id":                 doc.ID,
			}
			for k, v := range doc.Metadata {
				payload[k] = v
			}
			points[i] = pkgQdrant.Point{
				// Qdrant point ids must be UUIDs; derive one from the
				// document id so re-runs upsert in place.
				ID:      uuid.NewSHA1(uuid.NameSpaceOID, []byte(doc.ID)).String(),
				Vector:  vectors[i],
				Payload: payload,
			}
		}

		if err := store.UpsertPoints(ctx, collection, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
			return fmt.Errorf("failed to upsert batch: %w", err)
		}

		logger.Infof(ctx, "Indexed %d/%d documents into %s", end, len(docs), collection)
	}

	return nil
}
