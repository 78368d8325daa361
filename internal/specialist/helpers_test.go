package specialist

import (
	"context"

	"support-agent-orchestrator/internal/backend"
	"support-agent-orchestrator/internal/retrieval"
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

type mockGenerator struct {
	generateFunc func(ctx context.Context, prompt, system string) string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt, system string) string {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, prompt, system)
	}
	return "generated"
}

type mockRetriever struct {
	retrieveFunc func(ctx context.Context, index retrieval.Index, query string, topK int) []string
}

func (m *mockRetriever) Retrieve(ctx context.Context, index retrieval.Index, query string, topK int) []string {
	if m.retrieveFunc != nil {
		return m.retrieveFunc(ctx, index, query, topK)
	}
	return nil
}

type mockLookup struct {
	getOrderFunc   func(ctx context.Context, orderID string) (backend.Record, bool)
	getAccountFunc func(ctx context.Context, accountID string) (backend.Record, bool)
	diagnoseFunc   func(ctx context.Context, description string) (backend.Diagnosis, bool)
}

func (m *mockLookup) GetOrder(ctx context.Context, orderID string) (backend.Record, bool) {
	if m.getOrderFunc != nil {
		return m.getOrderFunc(ctx, orderID)
	}
	return nil, false
}

func (m *mockLookup) GetAccount(ctx context.Context, accountID string) (backend.Record, bool) {
	if m.getAccountFunc != nil {
		return m.getAccountFunc(ctx, accountID)
	}
	return nil, false
}

func (m *mockLookup) Diagnose(ctx context.Context, description string) (backend.Diagnosis, bool) {
	if m.diagnoseFunc != nil {
		return m.diagnoseFunc(ctx, description)
	}
	return backend.Diagnosis{}, false
}

type mockCatalog struct {
	pricingJSON string
}

func (m *mockCatalog) PricingJSON() string {
	return m.pricingJSON
}
