package specialist

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"support-agent-orchestrator/internal/backend"
	"support-agent-orchestrator/internal/generator"
	"support-agent-orchestrator/internal/model"
	"support-agent-orchestrator/pkg/log"
)

var (
	orderIDPattern   = regexp.MustCompile(`ORD-\d+`)
	accountIDPattern = regexp.MustCompile(`ACC-\d+`)
	pricingPattern   = regexp.MustCompile(`(?i)pricing|cost|price`)
)

// BillingHandler answers order and billing questions. It extracts order and
// account ids from the query text, fetches the matching records, and embeds
// the catalog pricing when the query asks about cost. Missing records are
// omitted from the prompt rather than reported as failures.
type BillingHandler struct {
	lookup  backend.Lookup
	catalog Catalog
	gen     generator.Generator
	l       log.Logger
}

var _ Handler = (*BillingHandler)(nil)

// NewBilling creates the order and billing specialist.
func NewBilling(lookup backend.Lookup, catalog Catalog, gen generator.Generator, l log.Logger) *BillingHandler {
	return &BillingHandler{
		lookup:  lookup,
		catalog: catalog,
		gen:     gen,
		l:       l,
	}
}

func (h *BillingHandler) Category() model.Category {
	return model.CategoryBilling
}

func (h *BillingHandler) Handle(ctx context.Context, query string, history []model.Turn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer query: %s\n\n", query)

	if orderID := orderIDPattern.FindString(query); orderID != "" {
		if order, ok := h.lookup.GetOrder(ctx, orderID); ok {
			fmt.Fprintf(&b, "Order information:\n%s\n\n", renderRecord(order))
		} else {
			h.l.Warnf(ctx, "%s: order %s not found, omitting from prompt", LogPrefixBilling, orderID)
		}
	}

	if accountID := accountIDPattern.FindString(query); accountID != "" {
		if account, ok := h.lookup.GetAccount(ctx, accountID); ok {
			fmt.Fprintf(&b, "Account information:\n%s\n\n", renderRecord(account))
		} else {
			h.l.Warnf(ctx, "%s: account %s not found, omitting from prompt", LogPrefixBilling, accountID)
		}
	}

	if pricingPattern.MatchString(query) {
		if pricing := h.catalog.PricingJSON(); pricing != "" {
			fmt.Fprintf(&b, "Product pricing information:\n%s\n\n", pricing)
		}
	}

	b.WriteString("Please provide a helpful response to this billing or order question.")

	return h.gen.Generate(ctx, b.String(), PromptBillingSystem)
}

func renderRecord(r backend.Record) string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
