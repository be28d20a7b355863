package rest

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

	"github.com/google/uuid"

	pkgerrors "github.com/fithouse/console/pkg/errors"
	"github.com/fithouse/console/pkg/logger"
)

const errorBodyReadLimit int64 = 64 * 1024

var errBaseURLRequired = errors.New("backend base URL is required")

// TokenSource yields the bearer token attached to every request, or "" when no
// session exists.
type TokenSource interface {
	Token() string
}

// Client is the HTTP transport every per-entity API client goes through: it
// serializes JSON bodies, attaches the bearer token, stamps a request ID, and
// classifies non-2xx responses into domain errors carrying the upstream status
// and parsed body.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	logger     *logger.Logger
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTokenSource wires the session store the transport reads the bearer
// token from on every call.
func WithTokenSource(src TokenSource) Option {
	return func(c *Client) {
		c.tokens = src
	}
}

// WithLogger enables per-request structured logging.
func WithLogger(logg *logger.Logger) Option {
	return func(c *Client) {
		c.logger = logg
	}
}

// WithTimeout replaces the default HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// NewClient builds the transport for the given backend base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return client, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "rest client not configured")
	}

	endpoint := c.buildURL(path, query)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if c.logger != nil {
		logCtx := c.logger.WithEndpoint(ctx, method, path)
		logCtx = c.logger.WithRequestID(logCtx, requestID)
		c.logger.Debug(logCtx, "backend request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A canceled context stays recognizable via errors.Is so callers can
		// silently discard responses for views that no longer exist.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	if c.logger != nil {
		logCtx := c.logger.WithFields(ctx, map[string]any{
			"method":     method,
			"endpoint":   path,
			"request_id": requestID,
			"status":     resp.StatusCode,
		})
		c.logger.Debug(logCtx, "backend response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if isJSONContent(resp.Header.Get("Content-Type")) {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode response body")
		}
		return nil
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read response body")
	}
	if target, ok := out.(*string); ok {
		*target = string(text)
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("unexpected non-JSON response: %s", strings.TrimSpace(string(text))))
}

// errorFromResponse reproduces the error contract for non-2xx responses: the
// message is resolved message | error | msg | statusText in that order, and
// the parsed body plus the status travel with the error.
func (c *Client) errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))

	var parsed map[string]any
	if len(raw) > 0 && isJSONContent(resp.Header.Get("Content-Type")) {
		_ = json.Unmarshal(raw, &parsed)
	}
	if parsed == nil {
		text := strings.TrimSpace(string(raw))
		if text != "" {
			parsed = map[string]any{"message": text}
		}
	}

	message := messageFromBody(parsed)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	if message == "" {
		message = "Error en la solicitud"
	}

	return pkgerrors.New(codeForStatus(resp.StatusCode), message).
		WithStatus(resp.StatusCode).
		WithDetails(parsed)
}

func messageFromBody(body map[string]any) string {
	if body == nil {
		return ""
	}
	for _, key := range []string{"message", "error", "msg"} {
		if val, ok := body[key].(string); ok && strings.TrimSpace(val) != "" {
			return val
		}
	}
	return ""
}

func codeForStatus(status int) pkgerrors.Code {
	switch status {
	case http.StatusUnauthorized:
		return pkgerrors.CodeUnauthorized
	case http.StatusForbidden:
		return pkgerrors.CodeForbidden
	case http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case http.StatusConflict:
		return pkgerrors.CodeConflict
	case http.StatusTooManyRequests:
		return pkgerrors.CodeRateLimit
	default:
		if status >= 400 && status < 500 {
			return pkgerrors.CodeValidation
		}
		return pkgerrors.CodeDependency
	}
}

func (c *Client) buildURL(path string, query url.Values) string {
	full := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		full += "?" + query.Encode()
	}
	return full
}

func isJSONContent(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
