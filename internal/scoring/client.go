package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/securebank/frauddesk/internal/domain"
)

const maxResponseSize = 1 << 20 // 1MB

// DefaultTimeout bounds a single scoring request end to end.
const DefaultTimeout = 5 * time.Second

// FailureReason labels why a remote scoring attempt failed.
type FailureReason string

const (
	FailureConnect FailureReason = "connect"
	FailureStatus  FailureReason = "status"
	FailureDecode  FailureReason = "decode"
)

// ServiceError reports an unusable remote scoring attempt. The caller is
// expected to recover by switching to the local fallback; the failure is
// never surfaced to the end user.
type ServiceError struct {
	Reason FailureReason
	Err    error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("scoring service unavailable (%s): %v", e.Reason, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Options is the dropdown catalog served by the scoring service.
type Options struct {
	Merchants  []string `json:"merchants"`
	Categories []string `json:"categories"`
	Cities     []string `json:"cities"`
}

// Client calls the remote fraud-scoring service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a scoring client for the given base URL.
// Pass timeout=0 to use DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// RequestScore submits the transaction to POST {base_url}/predict. It makes
// exactly one attempt: retry policy is delegated entirely to the fallback
// scorer, not to re-querying the remote service.
func (c *Client) RequestScore(ctx context.Context, input domain.TransactionInput) (*domain.RiskAssessment, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, &ServiceError{Reason: FailureDecode, Err: fmt.Errorf("marshal input: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, &ServiceError{Reason: FailureConnect, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ServiceError{Reason: FailureConnect, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return nil, &ServiceError{Reason: FailureStatus, Err: fmt.Errorf("service returned HTTP %d", resp.StatusCode)}
	}

	var assessment domain.RiskAssessment
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&assessment); err != nil {
		return nil, &ServiceError{Reason: FailureDecode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !assessment.Valid() {
		return nil, &ServiceError{Reason: FailureDecode, Err: fmt.Errorf("response out of contract: score=%d level=%q decision=%q",
			assessment.RiskScore, assessment.RiskLevel, assessment.Decision)}
	}

	return &assessment, nil
}

// FetchOptions retrieves the dropdown catalog from GET {base_url}/options.
// Called once at startup; a failure is non-fatal and the built-in defaults
// are retained.
func (c *Client) FetchOptions(ctx context.Context) (*Options, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/options", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch options: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("options returned HTTP %d", resp.StatusCode)
	}

	var opts Options
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&opts); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return &opts, nil
}
