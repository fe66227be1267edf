// Package api implements the repository ports against the storefront REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
)

const maxResponseBodySize = 10 << 20

// TokenSource supplies the bearer token for outgoing calls.
// An empty token means the call is sent unauthenticated.
type TokenSource interface {
	Token() string
}

// Client issues JSON calls against the storefront API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// NewClient creates a client that authenticates with tokens. tokens may be nil.
func NewClient(cfg *config.Config, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.API.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do sends one request. body and out may be nil. Non-2xx responses are
// returned as *domainerrors.APIError.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "encode %s %s body", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID := deliverycontext.RequestIDFromContext(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return errors.Wrapf(err, "read %s %s response", method, path)
	}

	logger.Debug("API call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
		slog.String("request_id", requestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody domainerrors.ErrorBody
		_ = json.Unmarshal(data, &errBody)

		return errors.WithStack(domainerrors.NewAPIError(resp.StatusCode, errBody.Error, method, path))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}

	return nil
}
