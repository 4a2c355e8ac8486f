package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mcdev12/dynasty-trades/go/internal/models"
	"github.com/rs/zerolog/log"
)

// RetryConfig controls exponential backoff on 5xx responses and transport errors.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

var DefaultRetry = RetryConfig{
	MaxAttempts: 3,
	BaseDelay:   500 * time.Millisecond,
	MaxDelay:    5 * time.Second,
}

type BaseClient struct {
	baseURL string
	client  *http.Client
	headers map[string]string
	timeout time.Duration
	retry   RetryConfig
}

func NewBaseClient(baseURL string) *BaseClient {
	return &BaseClient{
		baseURL: baseURL,
		client:  &http.Client{},
		headers: make(map[string]string),
		timeout: 10 * time.Second,
		retry:   DefaultRetry,
	}
}

func (c *BaseClient) SetHeader(key, value string) {
	c.headers[key] = value
}

// SetTimeout bounds each individual upstream call, retries included.
func (c *BaseClient) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

func (c *BaseClient) SetRetry(retry RetryConfig) {
	c.retry = retry
}

func (c *BaseClient) SetHTTPClient(client *http.Client) {
	c.client = client
}

// MakeRequest performs a request and returns the body of a 2xx response.
// Every failure, including timeout expiry, is a *models.UpstreamError.
func (c *BaseClient) MakeRequest(ctx context.Context, method, endpoint string, body io.Reader) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	attempts := c.retry.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	delay := c.retry.BaseDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		responseBody, status, err := c.do(ctx, method, endpoint, body)
		if err == nil {
			return responseBody, nil
		}
		lastErr = &models.UpstreamError{Endpoint: endpoint, Status: status, Err: err}

		if !retryable(status, err) || attempt == attempts {
			break
		}

		log.Warn().
			Err(err).
			Str("endpoint", endpoint).
			Int("attempt", attempt).
			Int("max_attempts", attempts).
			Dur("backoff", delay).
			Msg("upstream request failed, retrying")

		select {
		case <-ctx.Done():
			return nil, &models.UpstreamError{Endpoint: endpoint, Err: ctx.Err()}
		case <-time.After(delay):
		}

		delay *= 2
		if c.retry.MaxDelay > 0 && delay > c.retry.MaxDelay {
			delay = c.retry.MaxDelay
		}
	}

	return nil, lastErr
}

func (c *BaseClient) do(ctx context.Context, method, endpoint string, body io.Reader) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, resp.StatusCode, fmt.Errorf("API returned status code: %d, response: %s", resp.StatusCode, string(responseBody))
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	return responseBody, resp.StatusCode, nil
}

func retryable(status int, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	return status == 0 || status >= 500 || status == http.StatusTooManyRequests
}

func (c *BaseClient) Get(ctx context.Context, endpoint string) ([]byte, error) {
	return c.MakeRequest(ctx, http.MethodGet, endpoint, nil)
}
