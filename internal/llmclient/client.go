// Package llmclient talks to the external LLM backend used for free-form
// questions the widget cannot answer from templates.
package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"crm-assistant/model"
)

// Failure categories of the LLM backend. The chat service maps each to its
// own user-facing apology, so they must stay distinguishable.
var (
	ErrUnauthorized = errors.New("llm: invalid or missing credentials")
	ErrRateLimited  = errors.New("llm: rate limit exceeded")
	ErrUnavailable  = errors.New("llm: service not found")
	ErrBadResponse  = errors.New("llm: malformed response")
)

type Client struct {
	baseURL string
	apiKey  string
	httpCli *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpCli: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Complete sends one message (with optional screen context and history) to
// the backend. The context cancels the in-flight request, which is how
// session-clear abandons a pending call.
func (c *Client) Complete(ctx context.Context, req model.CompletionRequest) (*model.CompletionResponse, error) {
	bs, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat", bytes.NewReader(bs))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpCli.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusNotFound:
		return nil, ErrUnavailable
	default:
		return nil, fmt.Errorf("llm: unexpected status %d", resp.StatusCode)
	}

	var cr model.CompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return &cr, nil
}
