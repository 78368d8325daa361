package backend

import "context"

// Record is an opaque backend document. A nil Record means "not present",
// which is a valid business outcome, not an error.
type Record map[string]interface{}

// Diagnosis is the result of an automated issue lookup.
type Diagnosis struct {
	IssueID           string   `json:"issue_id"`
	Name              string   `json:"name"`
	Solutions         []string `json:"solutions"`
	DocumentationLink string   `json:"documentation_link"`
}

// Empty reports whether the diagnosis carries no usable content.
func (d Diagnosis) Empty() bool {
	return d.Name == "" && len(d.Solutions) == 0 && d.DocumentationLink == ""
}

// Lookup is the interface to the orders/accounts/diagnostics backend.
// All methods degrade: a 404 or any transport failure yields the zero value
// and found=false; they never return an error to the caller.
type Lookup interface {
	GetOrder(ctx context.Context, orderID string) (Record, bool)
	GetAccount(ctx context.Context, accountID string) (Record, bool)
	Diagnose(ctx context.Context, description string) (Diagnosis, bool)
}
