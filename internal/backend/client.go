package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"support-agent-orchestrator/pkg/log"
)

// Log prefixes
const (
	LogPrefixGetOrder   = "internal.backend.GetOrder"
	LogPrefixGetAccount = "internal.backend.GetAccount"
	LogPrefixDiagnose   = "internal.backend.Diagnose"
)

// HTTPClient talks to the backend REST API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	l          log.Logger
}

var _ Lookup = (*HTTPClient)(nil)

// NewClient creates a new backend API client.
func NewClient(baseURL string, l log.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		l:          l,
	}
}

// GetOrder fetches an order by id. Not-found and failures yield (nil, false).
func (c *HTTPClient) GetOrder(ctx context.Context, orderID string) (Record, bool) {
	var rec Record
	ok := c.getJSON(ctx, LogPrefixGetOrder, fmt.Sprintf("%s/api/orders/%s", c.baseURL, orderID), &rec)
	if !ok {
		return nil, false
	}
	return rec, true
}

// GetAccount fetches an account by id. Not-found and failures yield (nil, false).
func (c *HTTPClient) GetAccount(ctx context.Context, accountID string) (Record, bool) {
	var rec Record
	ok := c.getJSON(ctx, LogPrefixGetAccount, fmt.Sprintf("%s/api/accounts/%s", c.baseURL, accountID), &rec)
	if !ok {
		return nil, false
	}
	return rec, true
}

// Diagnose runs the automated issue lookup for a problem description.
func (c *HTTPClient) Diagnose(ctx context.Context, description string) (Diagnosis, bool) {
	url := fmt.Sprintf("%s/api/diagnose", c.baseURL)

	body, err := json.Marshal(map[string]string{"description": description})
	if err != nil {
		c.l.Warnf(ctx, "%s: failed to marshal request: %v", LogPrefixDiagnose, err)
		return Diagnosis{}, false
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		c.l.Warnf(ctx, "%s: failed to create request: %v", LogPrefixDiagnose, err)
		return Diagnosis{}, false
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.l.Warnf(ctx, "%s: failed to call backend API: %v", LogPrefixDiagnose, err)
		return Diagnosis{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.l.Warnf(ctx, "%s: backend API error: %d", LogPrefixDiagnose, resp.StatusCode)
		return Diagnosis{}, false
	}

	var result Diagnosis
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.l.Warnf(ctx, "%s: failed to decode response: %v", LogPrefixDiagnose, err)
		return Diagnosis{}, false
	}

	return result, true
}

// getJSON fetches and decodes a JSON document. 404 is logged as a warning
// and treated as absent data, exactly like any other failure.
func (c *HTTPClient) getJSON(ctx context.Context, logPrefix, url string, out interface{}) bool {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.l.Warnf(ctx, "%s: failed to create request: %v", logPrefix, err)
		return false
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.l.Warnf(ctx, "%s: failed to call backend API: %v", logPrefix, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.l.Warnf(ctx, "%s: not found: %s", logPrefix, url)
		return false
	}
	if resp.StatusCode != http.StatusOK {
		c.l.Warnf(ctx, "%s: backend API error: %d", logPrefix, resp.StatusCode)
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.l.Warnf(ctx, "%s: failed to decode response: %v", logPrefix, err)
		return false
	}

	return true
}
