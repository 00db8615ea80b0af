// Package http provides the HTTP transport layer for the Postscript API
// client: authenticated request construction, execution, and classification
// of failures into the public error taxonomy.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/velobpa/postscript-go/internal/constants"
	"github.com/velobpa/postscript-go/pkg/postscript"
)

// Request describes one API request. Exactly one of Path or RawURL resolves
// the target: RawURL is used verbatim when set (partner API), otherwise Path
// is appended to the client's base URL.
type Request struct {
	Method  string
	Path    string
	RawURL  string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw outcome of a successful request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes authenticated requests against the Postscript API. It is
// stateless per invocation and safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *retryablehttp.Client
	userAgent  string
	logger     Logger
	debug      bool
}

// Logger is the transport-level logging interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries for 5xx and 429 responses.
// API errors surfaced to callers are never retried beyond this budget.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a transport bound to baseURL, authenticating every
// request with the given API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	// Single attempt by default; callers opt in to retries.
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	// Surface the final response instead of a "giving up" error so
	// non-2xx outcomes classify as API errors even with retries off.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: retryClient,
		userAgent:  "postscript-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes one request and classifies the outcome. A non-2xx response
// becomes a *postscript.APIError carrying the remote message, code, and
// status; a failure with no interpretable response becomes a
// *postscript.OperationError wrapping the original fault.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := req.RawURL
	if fullURL == "" {
		fullURL = c.baseURL + req.Path
	}

	if len(req.Query) > 0 {
		fullURL = fullURL + "?" + req.Query.Encode()
	}

	bodyReader, hasBody, err := encodeBody(req.Body)
	if err != nil {
		return nil, postscript.NewOperationError(fmt.Errorf("encoding request body: %w", err))
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, postscript.NewOperationError(fmt.Errorf("creating request: %w", err))
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if hasBody {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, postscript.NewOperationError(err)
	}

	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, postscript.NewOperationError(fmt.Errorf("reading response body: %w", err))
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"bytes":  len(respBody),
		})
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return response, parseAPIError(resp.StatusCode, respBody)
	}

	return response, nil
}

// Get executes a GET request against the primary API.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request against the primary API.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch executes a PATCH request against the primary API.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete executes a DELETE request against the primary API.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// encodeBody serializes a request body. Nil bodies and empty maps produce no
// body at all; some endpoints reject an empty JSON object where an absent
// body is fine.
func encodeBody(body interface{}) (io.Reader, bool, error) {
	if body == nil {
		return nil, false, nil
	}

	if m, ok := body.(map[string]interface{}); ok && len(m) == 0 {
		return nil, false, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, false, err
	}

	return bytes.NewReader(data), true, nil
}

// errorEnvelope mirrors the shapes Postscript uses for error bodies: either
// a nested {error: {code, message}} object or a flat {message}.
type errorEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

// parseAPIError builds an APIError from a non-2xx response. Message
// precedence: body.error.message, then body.message, then the status text.
// Code precedence: body.error.code, then the numeric status.
func parseAPIError(statusCode int, body []byte) *postscript.APIError {
	apiErr := &postscript.APIError{
		Code:       strconv.Itoa(statusCode),
		Message:    http.StatusText(statusCode),
		HTTPStatus: statusCode,
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}

	if envelope.Error != nil {
		if envelope.Error.Code != "" {
			apiErr.Code = envelope.Error.Code
		}

		if envelope.Error.Message != "" {
			apiErr.Message = envelope.Error.Message

			return apiErr
		}
	}

	if envelope.Message != "" {
		apiErr.Message = envelope.Message
	}

	return apiErr
}
