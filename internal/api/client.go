// Package api is the typed JSON/HTTP client for the SDMS backend. Every
// operation maps to exactly one endpoint, performs no caching and no retry,
// and normalises all failures (transport errors, non-2xx statuses, non-JSON
// error bodies) into pkg/errors values so the UI layer branches uniformly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sdms-portal/internal/metrics"
	appErrors "github.com/noah-isme/sdms-portal/pkg/errors"
)

const requestIDHeader = "X-Request-ID"

// Client issues requests against the backend API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics *metrics.Collector
}

// Options groups Client constructor dependencies.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
	Metrics    *metrics.Collector
}

// NewClient constructs a Client with sane defaults.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    httpClient,
		logger:  logger,
		metrics: opts.Metrics,
	}
}

// errorBody is the shape backends use for failure payloads.
type errorBody struct {
	Error string `json:"error"`
}

// do executes one request and decodes a 2xx JSON body into out (when out is
// non-nil). It returns a normalised *appErrors.Error on any failure.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(op, 0, time.Since(start))
		c.logger.Warn("api request failed",
			zap.String("operation", op),
			zap.String("path", path),
			zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrNetwork.Code, 0, appErrors.ErrNetwork.Message)
	}
	defer resp.Body.Close() //nolint:errcheck

	duration := time.Since(start)
	c.metrics.ObserveRequest(op, resp.StatusCode, duration)
	c.logger.Debug("api request",
		zap.String("operation", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", duration))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrNetwork.Code, 0, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failure(resp, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrDecode.Code, resp.StatusCode, appErrors.ErrDecode.Message)
	}
	return nil
}

// failure converts a non-2xx response into a typed error. Backend-provided
// messages surface verbatim; non-JSON bodies fall back to the status code.
func (c *Client) failure(resp *http.Response, raw []byte) error {
	message := ""
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var eb errorBody
		if err := json.Unmarshal(raw, &eb); err == nil && eb.Error != "" {
			message = eb.Error
		}
	}
	if message == "" {
		message = fmt.Sprintf("request failed: %d", resp.StatusCode)
	}
	return appErrors.FromStatus(resp.StatusCode, message)
}
