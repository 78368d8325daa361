package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"support-agent-orchestrator/internal/classifier"
	"support-agent-orchestrator/internal/conversation"
	"support-agent-orchestrator/internal/model"
	"support-agent-orchestrator/internal/specialist"
	"support-agent-orchestrator/internal/support"
	"support-agent-orchestrator/pkg/log"
)

type mockLogger struct{}

var _ log.Logger = (*mockLogger)(nil)

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...interface{})  {}

type mockClassifier struct {
	classifyFunc func(ctx context.Context, query string, history []model.Turn) classifier.Decision
}

func (m *mockClassifier) Classify(ctx context.Context, query string, history []model.Turn) classifier.Decision {
	return m.classifyFunc(ctx, query, history)
}

type memStore struct {
	mu    sync.Mutex
	turns map[string][]model.Turn
}

func newMemStore() *memStore {
	return &memStore{turns: make(map[string][]model.Turn)}
}

func (s *memStore) History(id string) []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turns[id]
}

func (s *memStore) Append(id string, turn model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[id] = append(s.turns[id], turn)
}

func (s *memStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

type echoHandler struct {
	category model.Category
	prefix   string
}

func (h *echoHandler) Category() model.Category { return h.category }

func (h *echoHandler) Handle(ctx context.Context, query string, history []model.Turn) string {
	return h.prefix + query
}

func newTestRegistry() *specialist.Registry {
	r := specialist.NewRegistry(&mockLogger{}, model.CategoryGeneral)
	r.Register(&echoHandler{category: model.CategoryProduct, prefix: "product: "})
	r.Register(&echoHandler{category: model.CategoryTechnical, prefix: "technical: "})
	r.Register(&echoHandler{category: model.CategoryBilling, prefix: "billing: "})
	r.Register(&echoHandler{category: model.CategoryGeneral, prefix: "general: "})
	return r
}

func TestProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query is rejected", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockClassifier{}, newTestRegistry(), newMemStore())

		_, err := uc.Process(ctx, support.ProcessInput{Query: "   "})
		if !errors.Is(err, support.ErrEmptyQuery) {
			t.Errorf("Process error = %v, want ErrEmptyQuery", err)
		}
	})

	t.Run("single-part query routes to the specialist", func(t *testing.T) {
		clf := &mockClassifier{
			classifyFunc: func(ctx context.Context, query string, history []model.Turn) classifier.Decision {
				return classifier.Decision{Category: model.CategoryProduct, Confidence: 0.9}
			},
		}
		store := newMemStore()
		uc := New(&mockLogger{}, clf, newTestRegistry(), store)

		out, err := uc.Process(ctx, support.ProcessInput{Query: "What plans do you have?", ConversationID: "conv-1"})
		if err != nil {
			t.Fatalf("Process failed: %v", err)
		}
		if out.Response != "product: What plans do you have?" {
			t.Errorf("Response = %q", out.Response)
		}
		if out.Agent != "product" {
			t.Errorf("Agent = %q, want product", out.Agent)
		}
		if out.ConversationID != "conv-1" {
			t.Errorf("ConversationID = %q, want conv-1", out.ConversationID)
		}

		history := store.History("conv-1")
		if len(history) != 1 {
			t.Fatalf("history has %d turns, want 1", len(history))
		}
		if history[0].HandledBy != "product" {
			t.Errorf("turn HandledBy = %q, want product", history[0].HandledBy)
		}
	})

	t.Run("empty conversation id mints a new one", func(t *testing.T) {
		clf := &mockClassifier{
			classifyFunc: func(ctx context.Context, query string, history []model.Turn) classifier.Decision {
				return classifier.Decision{Category: model.CategoryGeneral, Confidence: 0.8}
			},
		}
		store := newMemStore()
		uc := New(&mockLogger{}, clf, newTestRegistry(), store)

		out, err := uc.Process(ctx, support.ProcessInput{Query: "hello"})
		if err != nil {
			t.Fatalf("Process failed: %v", err)
		}
		if out.ConversationID == "" {
			t.Fatal("ConversationID is empty")
		}
		if len(store.History(out.ConversationID)) != 1 {
			t.Error("turn was not recorded under the minted conversation id")
		}
	})

	t.Run("clarification answers from the router", func(t *testing.T) {
		clf := &mockClassifier{
			classifyFunc: func(ctx context.Context, query string, history []model.Turn) classifier.Decision {
				return classifier.Decision{
					Category:           model.CategoryGeneral,
					Confidence:         0.4,
					NeedsClarification: true,
					Clarification:      "Could you tell me more?",
				}
			},
		}
		store := newMemStore()
		uc := New(&mockLogger{}, clf, newTestRegistry(), store)

		out, err := uc.Process(ctx, support.ProcessInput{Query: "it broke", ConversationID: "conv-2"})
		if err != nil {
			t.Fatalf("Process failed: %v", err)
		}
		if out.Response != "Could you tell me more?" {
			t.Errorf("Response = %q", out.Response)
		}
		if out.Agent != model.AgentRouter {
			t.Errorf("Agent = %q, want %q", out.Agent, model.AgentRouter)
		}
		if history := store.History("conv-2"); len(history) != 1 {
			t.Errorf("clarification turn was not recorded, history len %d", len(history))
		}
	})

	t.Run("multi-part query joins answers in order", func(t *testing.T) {
		clf := &mockClassifier{
			classifyFunc: func(ctx context.Context, query string, history []model.Turn) classifier.Decision {
				return classifier.Decision{
					Parts: []classifier.Part{
						{Text: "order status for ORD-12345", Category: model.CategoryBilling},
						{Text: "how do I reset my password", Category: model.CategoryTechnical},
					},
				}
			},
		}
		store := newMemStore()
		uc := New(&mockLogger{}, clf, newTestRegistry(), store)

		out, err := uc.Process(ctx, support.ProcessInput{Query: "two things", ConversationID: "conv-3"})
		if err != nil {
			t.Fatalf("Process failed: %v", err)
		}
		want := "billing: order status for ORD-12345\n\ntechnical: how do I reset my password"
		if out.Response != want {
			t.Errorf("Response = %q, want %q", out.Response, want)
		}
		if out.Agent != model.AgentMultiple {
			t.Errorf("Agent = %q, want %q", out.Agent, model.AgentMultiple)
		}
	})

	t.Run("specialists see history from before the current query", func(t *testing.T) {
		var seenHistory []model.Turn
		clf := &mockClassifier{
			classifyFunc: func(ctx context.Context, query string, history []model.Turn) classifier.Decision {
				seenHistory = history
				return classifier.Decision{Category: model.CategoryGeneral, Confidence: 0.9}
			},
		}
		store := newMemStore()
		store.Append("conv-4", model.Turn{Query: "first", Response: "answer", HandledBy: "general"})
		uc := New(&mockLogger{}, clf, newTestRegistry(), store)

		if _, err := uc.Process(ctx, support.ProcessInput{Query: "second", ConversationID: "conv-4"}); err != nil {
			t.Fatalf("Process failed: %v", err)
		}
		if len(seenHistory) != 1 || seenHistory[0].Query != "first" {
			t.Errorf("classifier saw history %+v, want the single prior turn", seenHistory)
		}
		if got := len(store.History("conv-4")); got != 2 {
			t.Errorf("history has %d turns after second query, want 2", got)
		}
	})
}

var _ conversation.Store = (*memStore)(nil)
