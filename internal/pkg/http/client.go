package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgcontext "github.com/smartwaste360/gateway/internal/pkg/context"
	nrpkg "github.com/smartwaste360/gateway/internal/pkg/newrelic"
	"github.com/smartwaste360/gateway/internal/pkg/retry"
)

// TokenSource supplies the bearer token attached to backend requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Config holds HTTP client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a JSON HTTP client for the SmartWaste360 backend API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	retrier    *retry.Retrier
}

// NewClient creates a new backend API client
func NewClient(cfg Config, tokens TokenSource) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		retrier: retry.New(retry.Config{
			MaxRetries: 2,
			BaseDelay:  100 * time.Millisecond,
			MaxDelay:   2 * time.Second,
			Multiplier: 2.0,
			Jitter:     true,
			RetryableFunc: func(err error) bool {
				var httpErr *HTTPError
				if errors.As(err, &httpErr) {
					return httpErr.StatusCode >= 500
				}
				// network-level failures are worth another try
				return true
			},
		}),
	}
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON performs a GET request and decodes the JSON response into out.
// GETs are idempotent, so transient failures are retried with backoff.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.retrier.Execute(ctx, func(ctx context.Context) error {
		return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
	})
}

// PostJSON performs a POST request with a JSON body and decodes the response
// into out. POSTs are never retried: the backend may have applied the write.
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := pkgcontext.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response from %s: %w", path, err)
		}
	}
	return nil
}

// HTTPError is a non-2xx backend response carrying the server's own message
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// newHTTPError extracts the server's error message from a response body.
// The backend answers with one of {"error": ...}, {"msg": ...} or
// {"message": ...} depending on the route.
func newHTTPError(statusCode int, body []byte) *HTTPError {
	var payload struct {
		Error   string `json:"error"`
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}

	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			message = payload.Error
		case payload.Msg != "":
			message = payload.Msg
		case payload.Message != "":
			message = payload.Message
		}
	}
	if message == "" {
		message = fmt.Sprintf("backend returned status %d", statusCode)
	}

	return &HTTPError{StatusCode: statusCode, Message: message}
}
