package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"support-agent-orchestrator/config"
	_ "support-agent-orchestrator/docs" // Swagger docs
	"support-agent-orchestrator/internal/backend"
	"support-agent-orchestrator/internal/backendmock"
	"support-agent-orchestrator/internal/classifier"
	"support-agent-orchestrator/internal/conversation"
	"support-agent-orchestrator/internal/generator"
	"support-agent-orchestrator/internal/httpserver"
	"support-agent-orchestrator/internal/knowledge"
	"support-agent-orchestrator/internal/middleware"
	"support-agent-orchestrator/internal/model"
	"support-agent-orchestrator/internal/retrieval"
	"support-agent-orchestrator/internal/specialist"
	supportHTTP "support-agent-orchestrator/internal/support/delivery/http"
	supportUC "support-agent-orchestrator/internal/support/usecase"
	"support-agent-orchestrator/pkg/llmprovider"
	"support-agent-orchestrator/pkg/log"
	pkgQdrant "support-agent-orchestrator/pkg/qdrant"
	"support-agent-orchestrator/pkg/voyage"
)

// @title       Support Agent Orchestrator API
// @description LLM-routed customer support: query classification, specialist agents, RAG retrieval, and backend lookups.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Support Agent Orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.BaseURL)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, 2*time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	// 4. Generation and classification
	gen := generator.New(llmManager, logger)
	clf := classifier.New(gen, logger)

	// 5. Retrieval (optional: degrades to empty context without an API key)
	var retriever retrieval.Retriever
	if cfg.Embedding.APIKey != "" {
		embedder, vErr := voyage.New(cfg.Embedding.APIKey)
		if vErr != nil {
			logger.Errorf(ctx, "Failed to initialize embedding client: %v", vErr)
			return
		}
		if cfg.Embedding.Model != "" {
			embedder = embedder.WithModel(cfg.Embedding.Model)
		}
		retriever = retrieval.New(embedder, pkgQdrant.NewClient(cfg.VectorStore.URL), logger)
	} else {
		logger.Warn(ctx, "Embedding API key missing, retrieval context disabled")
		retriever = retrieval.Noop{}
	}

	// 6. Backend lookup
	lookup := backend.NewClient(cfg.Backend.BaseURL, logger)

	// 7. Knowledge base (billing pricing context)
	base, err := knowledge.Load(cfg.Knowledge.DataDir)
	if err != nil {
		logger.Warnf(ctx, "Knowledge base not loaded, pricing context disabled: %v", err)
		base = &knowledge.Base{}
	}

	// 8. Conversation store
	store := conversation.NewLRUStore(cfg.Conversation.MaxEntries, parseDurationOr(cfg.Conversation.TTL, time.Hour))

	// 9. Specialist registry
	registry := specialist.NewRegistry(logger, model.CategoryBilling)
	registry.Register(specialist.NewProduct(retriever, gen, cfg.Retrieval.TopK))
	registry.Register(specialist.NewTechnical(retriever, lookup, gen, cfg.Retrieval.TopK))
	registry.Register(specialist.NewBilling(lookup, base, gen, logger))
	registry.Register(specialist.NewAccount(lookup, cfg.Backend.DefaultAccountID, logger))
	registry.Register(specialist.NewGeneral(gen))

	// 10. Support domain
	uc := supportUC.New(logger, clf, registry, store)
	handler := supportHTTP.New(logger, uc)

	// 11. HTTP server
	serverCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		SupportHandler: handler,
		Middleware:     middleware.New(logger, cfg.RateLimit),
	}
	if cfg.Backend.MockEnabled {
		serverCfg.MockBackend = backendmock.New(logger)
		logger.Info(ctx, "Mock backend enabled")
	}

	httpServer, err := httpserver.New(logger, serverCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 12. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
