package eazyfest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

func New(cfg Config, httpClient *http.Client) *Client {
	every := time.Duration(cfg.Every)
	if every <= 0 {
		every = 100 * time.Millisecond
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 10
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(every), burst),
	}
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

// do issues a request against the API. token may be empty for public
// endpoints. out may be nil when the response body is irrelevant.
func (c *Client) do(ctx context.Context, method string, path string, token string, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for rate limiter: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = buf
	}

	rq, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	rq.Header.Set("Accept", "application/json")
	if body != nil {
		rq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		rq.Header.Set("Authorization", "Bearer "+token)
	}

	rs, err := c.httpClient.Do(rq)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer rs.Body.Close()

	if rs.StatusCode >= http.StatusBadRequest {
		return newError(rs.StatusCode, readErrorMessage(rs.Body))
	}

	if out != nil {
		if err = json.NewDecoder(rs.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// readErrorMessage extracts the server-provided message from an error body.
// The API is not consistent about the field name.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err = json.Unmarshal(data, &body); err != nil {
		return ""
	}

	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
