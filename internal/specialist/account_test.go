package specialist

import (
	"context"
	"strings"
	"testing"

	"support-agent-orchestrator/internal/backend"
)

func TestAvailableSlots(t *testing.T) {
	tests := []struct {
		name      string
		plan      string
		userCount int
		want      string
	}{
		{
			name:      "pro plan with three users",
			plan:      PlanPro,
			userCount: 3,
			want:      "17",
		},
		{
			name:      "enterprise plan is unlimited",
			plan:      PlanEnterprise,
			userCount: 4,
			want:      "unlimited",
		},
		{
			name:      "unknown plan gets basic limit",
			plan:      "cm-basic",
			userCount: 2,
			want:      "3",
		},
		{
			name:      "over limit clamps to zero",
			plan:      PlanPro,
			userCount: 25,
			want:      "0",
		},
		{
			name:      "empty plan with no users",
			plan:      "",
			userCount: 0,
			want:      "5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableSlots(tt.plan, tt.userCount)
			if got != tt.want {
				t.Errorf("AvailableSlots(%q, %d) = %q, want %q", tt.plan, tt.userCount, got, tt.want)
			}
		})
	}
}

func TestAccountHandler_Handle(t *testing.T) {
	t.Run("known account with explicit id", func(t *testing.T) {
		var requestedID string
		lookup := &mockLookup{
			getAccountFunc: func(ctx context.Context, accountID string) (backend.Record, bool) {
				requestedID = accountID
				return backend.Record{
					"account_id": "ACC-2222",
					"subscription": map[string]interface{}{
						"plan": PlanEnterprise,
					},
					"users": []interface{}{
						map[string]interface{}{"email": "a@example.com", "role": "Admin"},
						map[string]interface{}{"email": "b@example.com", "role": "Viewer"},
					},
				}, true
			},
		}

		h := NewAccount(lookup, "ACC-1111", &mockLogger{})
		got := h.Handle(context.Background(), "I want to add users to ACC-2222", nil)

		if requestedID != "ACC-2222" {
			t.Errorf("looked up account %q, want ACC-2222", requestedID)
		}
		if !strings.Contains(got, "Your current subscription plan is: cm-enterprise.") {
			t.Errorf("response missing plan line: %q", got)
		}
		if !strings.Contains(got, "Current number of user accounts: 2.") {
			t.Errorf("response missing user count line: %q", got)
		}
		if !strings.Contains(got, "Available user slots: unlimited.") {
			t.Errorf("response missing slots line: %q", got)
		}
	})

	t.Run("falls back to default account id", func(t *testing.T) {
		var requestedID string
		lookup := &mockLookup{
			getAccountFunc: func(ctx context.Context, accountID string) (backend.Record, bool) {
				requestedID = accountID
				return backend.Record{
					"subscription": map[string]interface{}{"plan": PlanPro},
					"users": []interface{}{
						map[string]interface{}{"email": "a@example.com"},
						map[string]interface{}{"email": "b@example.com"},
						map[string]interface{}{"email": "c@example.com"},
					},
				}, true
			},
		}

		h := NewAccount(lookup, "ACC-1111", &mockLogger{})
		got := h.Handle(context.Background(), "How do I add more users?", nil)

		if requestedID != "ACC-1111" {
			t.Errorf("looked up account %q, want default ACC-1111", requestedID)
		}
		if !strings.Contains(got, "Available user slots: 17.") {
			t.Errorf("response missing slots line: %q", got)
		}
	})

	t.Run("unknown account answers with defaults", func(t *testing.T) {
		lookup := &mockLookup{}

		h := NewAccount(lookup, "ACC-1111", &mockLogger{})
		got := h.Handle(context.Background(), "Add a user to ACC-9999 please", nil)

		if !strings.Contains(got, "Your current subscription plan is: unknown.") {
			t.Errorf("response missing unknown plan line: %q", got)
		}
		if !strings.Contains(got, "Current number of user accounts: 0.") {
			t.Errorf("response missing zero user count: %q", got)
		}
		if !strings.Contains(got, "Available user slots: 5.") {
			t.Errorf("response missing basic slots line: %q", got)
		}
	})
}
