// Package verify provides access to the external verification capability
// and a deterministic local stand-in for when it is unreachable.
package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/the-axmc/conclave/internal/domain"
)

// Client calls a remote verification service over HTTP. Every call is
// bounded by the configured timeout; a timeout surfaces as an error and
// the caller falls back to the local mock.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type verifyRequest struct {
	SessionID   string `json:"session_id"`
	PlanID      string `json:"plan_id"`
	Mode        string `json:"mode"`
	FixturePath string `json:"fixture_path,omitempty"`
	Command     string `json:"command,omitempty"`
}

func (c *Client) Verify(ctx context.Context, req domain.VerifyRequest) (*domain.VerificationResult, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("verifier URL is not configured")
	}

	body, err := json.Marshal(verifyRequest{
		SessionID:   req.SessionID,
		PlanID:      req.PlanID,
		Mode:        req.Mode,
		FixturePath: req.FixturePath,
		Command:     req.Command,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal verify request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/verify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create verify request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("verify request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read verify response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verifier returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result domain.VerificationResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshal verify response: %w", err)
	}

	return &result, nil
}
