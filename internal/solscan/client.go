// Package solscan provides a minimal client for the Solscan Pro API.
package solscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the Solscan Pro API host.
const DefaultBaseURL = "https://pro-api.solscan.io"

// Client is a minimal HTTP client for the Solscan Pro API. Every request
// carries the API credential in the "token" header and is given one attempt.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
	log     *zap.Logger
}

// New returns a new client. If httpClient is nil, a default with 10s timeout
// is used. If logger is nil, logging is disabled.
func New(baseURL, token string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Token: token, HTTP: httpClient, log: logger}
}

// Get performs a single authenticated GET against the given URL and decodes
// the JSON body into a generic value. Network errors, non-2xx statuses, and
// malformed bodies are returned as errors; there are no retries.
func (c *Client) Get(ctx context.Context, url string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Error("request build failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	req.Header.Set("token", c.Token)

	c.log.Info("solscan request", zap.String("url", url), zap.Any("headers", req.Header))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.log.Error("request failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("solscan api status %d", resp.StatusCode)
		c.log.Error("request failed", zap.String("url", url), zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, err
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Error("response decode failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}

	c.log.Info("solscan response", zap.Int("status", resp.StatusCode), zap.Any("body", body))
	return body, nil
}
