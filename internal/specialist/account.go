package specialist

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"support-agent-orchestrator/internal/backend"
	"support-agent-orchestrator/internal/model"
	"support-agent-orchestrator/pkg/log"
)

// AccountHandler handles account and user-management requests. It answers
// from backend account state with a deterministic template and never calls
// the model, so its output is stable under test.
type AccountHandler struct {
	lookup           backend.Lookup
	defaultAccountID string
	l                log.Logger
}

var _ Handler = (*AccountHandler)(nil)

// NewAccount creates the account management specialist. defaultAccountID is
// used when the query carries no explicit ACC-* id, standing in for the
// authenticated customer's account.
func NewAccount(lookup backend.Lookup, defaultAccountID string, l log.Logger) *AccountHandler {
	return &AccountHandler{
		lookup:           lookup,
		defaultAccountID: defaultAccountID,
		l:                l,
	}
}

func (h *AccountHandler) Category() model.Category {
	return model.CategoryAccount
}

// accountState is the slice of the backend account record this handler
// reads. Unknown fields are ignored.
type accountState struct {
	Subscription struct {
		Plan string `json:"plan"`
	} `json:"subscription"`
	Users []struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"users"`
}

func (h *AccountHandler) Handle(ctx context.Context, query string, history []model.Turn) string {
	accountID := accountIDPattern.FindString(query)
	if accountID == "" {
		accountID = h.defaultAccountID
	}

	plan := "unknown"
	userCount := 0
	if record, ok := h.lookup.GetAccount(ctx, accountID); ok {
		state := decodeAccountState(record)
		if state.Subscription.Plan != "" {
			plan = state.Subscription.Plan
		}
		userCount = len(state.Users)
	} else {
		h.l.Warnf(ctx, "%s: account %s not found, answering with defaults", LogPrefixAccount, accountID)
	}

	return fmt.Sprintf(`I'd be happy to help you add users to your account.

Your current subscription plan is: %s.
Current number of user accounts: %d.
Available user slots: %s.

To add users, please follow these steps:
1. Log in to the customer portal at portal.techsolutions.example.com
2. Navigate to Admin > User Management > Add User
3. Enter the email addresses for the new users
4. Select the appropriate role for each new user (Admin, Operator, Auditor, or Viewer)
5. Customize permissions if needed
6. Click 'Send Invitation'

If you need to add users beyond your plan's limit, you may consider purchasing additional licenses.`, plan, userCount, AvailableSlots(plan, userCount))
}

func decodeAccountState(record backend.Record) accountState {
	var state accountState
	data, err := json.Marshal(record)
	if err != nil {
		return state
	}
	_ = json.Unmarshal(data, &state)
	return state
}

// AvailableSlots computes the remaining user slots for a plan, rendered as
// text because the enterprise plan is unlimited. The result never goes
// negative.
func AvailableSlots(plan string, userCount int) string {
	var limit int
	switch plan {
	case PlanPro:
		limit = UserLimitPro
	case PlanEnterprise:
		limit = UserLimitUnlimited
	default:
		limit = UserLimitBasic
	}

	if limit == UserLimitUnlimited {
		return "unlimited"
	}

	slots := limit - userCount
	if slots < 0 {
		slots = 0
	}
	return strconv.Itoa(slots)
}
