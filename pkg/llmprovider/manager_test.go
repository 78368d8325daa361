package llmprovider

import (
	"context"
	"errors"
	"testing"

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

type mockProvider struct {
	name         string
	generateFunc func(ctx context.Context, req *Request) (*Response, error)
	calls        int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.calls++
	return m.generateFunc(ctx, req)
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return "test-model" }

func okProvider(name, text string) *mockProvider {
	return &mockProvider{
		name: name,
		generateFunc: func(ctx context.Context, req *Request) (*Response, error) {
			return &Response{Text: text, ProviderName: name, ModelName: "test-model"}, nil
		},
	}
}

func failProvider(name string) *mockProvider {
	return &mockProvider{
		name: name,
		generateFunc: func(ctx context.Context, req *Request) (*Response, error) {
			return nil, &ProviderError{Provider: name, Err: errors.New("unavailable")}
		},
	}
}

func TestManager_GenerateContent(t *testing.T) {
	ctx := context.Background()
	req := &Request{Prompt: "hello"}

	t.Run("no providers", func(t *testing.T) {
		m := NewManager(nil, &Config{}, &mockLogger{})
		_, err := m.GenerateContent(ctx, req)
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("error = %v, want ErrNoProvidersConfigured", err)
		}
	})

	t.Run("first provider wins", func(t *testing.T) {
		first := okProvider("first", "from first")
		second := okProvider("second", "from second")
		m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: true}, &mockLogger{})

		resp, err := m.GenerateContent(ctx, req)
		if err != nil {
			t.Fatalf("GenerateContent failed: %v", err)
		}
		if resp.Text != "from first" {
			t.Errorf("Text = %q", resp.Text)
		}
		if second.calls != 0 {
			t.Errorf("second provider was called %d times", second.calls)
		}
	})

	t.Run("falls back after failure", func(t *testing.T) {
		first := failProvider("first")
		second := okProvider("second", "from second")
		m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: true}, &mockLogger{})

		resp, err := m.GenerateContent(ctx, req)
		if err != nil {
			t.Fatalf("GenerateContent failed: %v", err)
		}
		if resp.Text != "from second" {
			t.Errorf("Text = %q", resp.Text)
		}
	})

	t.Run("fallback disabled stops at first failure", func(t *testing.T) {
		first := failProvider("first")
		second := okProvider("second", "from second")
		m := NewManager([]Provider{first, second}, &Config{FallbackEnabled: false}, &mockLogger{})

		_, err := m.GenerateContent(ctx, req)
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("error = %v, want ErrAllProvidersFailed", err)
		}
		if second.calls != 0 {
			t.Errorf("second provider was called %d times with fallback disabled", second.calls)
		}
	})

	t.Run("all providers fail", func(t *testing.T) {
		m := NewManager([]Provider{failProvider("a"), failProvider("b")},
			&Config{FallbackEnabled: true}, &mockLogger{})

		_, err := m.GenerateContent(ctx, req)
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("error = %v, want ErrAllProvidersFailed", err)
		}
	})

	t.Run("retries before falling back", func(t *testing.T) {
		flaky := &mockProvider{name: "flaky"}
		flaky.generateFunc = func(ctx context.Context, req *Request) (*Response, error) {
			if flaky.calls < 2 {
				return nil, errors.New("transient")
			}
			return &Response{Text: "recovered"}, nil
		}

		m := NewManager([]Provider{flaky}, &Config{
			FallbackEnabled: true,
			RetryAttempts:   3,
		}, &mockLogger{})

		resp, err := m.GenerateContent(ctx, req)
		if err != nil {
			t.Fatalf("GenerateContent failed: %v", err)
		}
		if resp.Text != "recovered" {
			t.Errorf("Text = %q", resp.Text)
		}
		if flaky.calls != 2 {
			t.Errorf("provider called %d times, want 2", flaky.calls)
		}
	})
}

func TestProviderError(t *testing.T) {
	inner := errors.New("boom")
	err := &ProviderError{Provider: "ollama", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("ProviderError does not unwrap to the inner error")
	}
	if err.Error() == "" {
		t.Error("ProviderError has empty message")
	}
}
