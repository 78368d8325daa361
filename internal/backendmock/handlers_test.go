package backendmock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

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

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(&mockLogger{}).RegisterRoutes(r.Group("/api"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return w.Code, decoded
}

func TestGetOrder(t *testing.T) {
	r := newTestEngine()

	t.Run("known order", func(t *testing.T) {
		code, body := doJSON(t, r, http.MethodGet, "/api/orders/ORD-12345", "")
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if body["status"] != "shipped" {
			t.Errorf("status field = %v, want shipped", body["status"])
		}
		if body["order_id"] != "ORD-12345" {
			t.Errorf("order_id = %v", body["order_id"])
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		code, body := doJSON(t, r, http.MethodGet, "/api/orders/ORD-00000", "")
		if code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", code)
		}
		if body["detail"] != "Order not found" {
			t.Errorf("detail = %v", body["detail"])
		}
	})
}

func TestGetAccount(t *testing.T) {
	r := newTestEngine()

	t.Run("known account", func(t *testing.T) {
		code, body := doJSON(t, r, http.MethodGet, "/api/accounts/ACC-1111", "")
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		sub, ok := body["subscription"].(map[string]interface{})
		if !ok {
			t.Fatalf("subscription missing: %v", body)
		}
		if sub["plan"] != "cm-pro" {
			t.Errorf("plan = %v, want cm-pro", sub["plan"])
		}
		users, ok := body["users"].([]interface{})
		if !ok || len(users) != 3 {
			t.Errorf("users = %v, want 3 entries", body["users"])
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		code, _ := doJSON(t, r, http.MethodGet, "/api/accounts/ACC-9999", "")
		if code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", code)
		}
	})
}

func TestDiagnose(t *testing.T) {
	r := newTestEngine()

	t.Run("known error code", func(t *testing.T) {
		code, body := doJSON(t, r, http.MethodPost, "/api/diagnose",
			`{"description": "I keep hitting Error E1234 on sync"}`)
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if body["issue_id"] != "E1234" {
			t.Errorf("issue_id = %v, want E1234", body["issue_id"])
		}
		solutions, ok := body["solutions"].([]interface{})
		if !ok || len(solutions) != 3 {
			t.Errorf("solutions = %v, want 3 entries", body["solutions"])
		}
	})

	t.Run("unrecognized description", func(t *testing.T) {
		code, body := doJSON(t, r, http.MethodPost, "/api/diagnose",
			`{"description": "everything is slow"}`)
		if code != http.StatusOK {
			t.Fatalf("status = %d, want 200", code)
		}
		if body["issue_id"] != "unknown" {
			t.Errorf("issue_id = %v, want unknown", body["issue_id"])
		}
	})
}
