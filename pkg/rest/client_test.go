package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/fithouse/console/pkg/errors"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(t *testing.T, rt roundTripFunc, opts ...Option) *Client {
	t.Helper()
	opts = append(opts, WithHTTPClient(&http.Client{Transport: rt}))
	client, err := NewClient("http://backend.test", opts...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestGetAttachesBearerTokenAndRequestID(t *testing.T) {
	var captured http.Header
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		captured = req.Header.Clone()
		return jsonResponse(http.StatusOK, `{"success":true,"data":{}}`), nil
	}, WithTokenSource(staticTokens("tok-123")))

	var env Envelope
	if err := client.Get(context.Background(), "/customers", nil, &env); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := captured.Get("Authorization"); got != "Bearer tok-123" {
		t.Fatalf("unexpected Authorization header %q", got)
	}
	if captured.Get("X-Request-ID") == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestGetOmitsAuthorizationWithoutToken(t *testing.T) {
	var captured http.Header
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		captured = req.Header.Clone()
		return jsonResponse(http.StatusOK, `{"success":true,"data":{}}`), nil
	}, WithTokenSource(staticTokens("")))

	var env Envelope
	if err := client.Get(context.Background(), "/customers", nil, &env); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := captured.Get("Authorization"); got != "" {
		t.Fatalf("expected no Authorization header, got %q", got)
	}
}

func TestPostSerializesJSONBody(t *testing.T) {
	var contentType string
	var payload map[string]any
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		contentType = req.Header.Get("Content-Type")
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		return jsonResponse(http.StatusOK, `{"success":true,"data":{"id":"1"}}`), nil
	})

	var env Envelope
	err := client.Post(context.Background(), "/auth/login", map[string]string{
		"email":    "admin@fithouse.co",
		"password": "secret",
	}, &env)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if contentType != "application/json" {
		t.Fatalf("unexpected content type %q", contentType)
	}
	if payload["email"] != "admin@fithouse.co" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestErrorMessagePriority(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "message wins", body: `{"message":"m1","error":"e1","msg":"s1"}`, want: "m1"},
		{name: "error second", body: `{"error":"e1","msg":"s1"}`, want: "e1"},
		{name: "msg third", body: `{"msg":"s1"}`, want: "s1"},
		{name: "status text fallback", body: `{}`, want: "Bad Request"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadRequest, tc.body), nil
			})
			err := client.Get(context.Background(), "/customers", nil, &Envelope{})
			typed := pkgerrors.As(err)
			if typed == nil {
				t.Fatalf("expected typed error, got %v", err)
			}
			if typed.Message() != tc.want {
				t.Fatalf("expected message %q, got %q", tc.want, typed.Message())
			}
			if typed.Status() != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", typed.Status())
			}
		})
	}
}

func TestErrorCodeMapping(t *testing.T) {
	cases := []struct {
		status int
		code   pkgerrors.Code
	}{
		{status: http.StatusBadRequest, code: pkgerrors.CodeValidation},
		{status: http.StatusUnauthorized, code: pkgerrors.CodeUnauthorized},
		{status: http.StatusForbidden, code: pkgerrors.CodeForbidden},
		{status: http.StatusNotFound, code: pkgerrors.CodeNotFound},
		{status: http.StatusConflict, code: pkgerrors.CodeConflict},
		{status: http.StatusTooManyRequests, code: pkgerrors.CodeRateLimit},
		{status: http.StatusUnprocessableEntity, code: pkgerrors.CodeValidation},
		{status: http.StatusInternalServerError, code: pkgerrors.CodeDependency},
		{status: http.StatusBadGateway, code: pkgerrors.CodeDependency},
	}

	for _, tc := range cases {
		client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
			return jsonResponse(tc.status, `{"message":"x"}`), nil
		})
		err := client.Get(context.Background(), "/x", nil, &Envelope{})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != tc.code {
			t.Fatalf("status %d: expected code %s, got %v", tc.status, tc.code, err)
		}
	}
}

func TestErrorBodyTravelsWithError(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, `{"message":"Customer no encontrado","code":"not_found"}`), nil
	})
	err := client.Get(context.Background(), "/customers/c9", nil, &Envelope{})
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error")
	}
	body, ok := typed.Details().(map[string]any)
	if !ok || body["code"] != "not_found" {
		t.Fatalf("expected parsed body in details, got %#v", typed.Details())
	}
}

func TestPlainTextErrorBody(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(strings.NewReader("upstream down")),
			Header:     http.Header{"Content-Type": []string{"text/plain"}},
		}, nil
	})
	err := client.Get(context.Background(), "/dashboard", nil, &Envelope{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "upstream down" {
		t.Fatalf("expected text body as message, got %v", err)
	}
}

func TestCanceledContextStaysRecognizable(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := client.Get(ctx, "/customers/c1", nil, &Envelope{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled to surface, got %v", err)
	}
	if pkgerrors.As(err) != nil {
		t.Fatalf("cancellation must not be wrapped into a domain error")
	}
}

func TestQueryEncoding(t *testing.T) {
	var gotURL string
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		return jsonResponse(http.StatusOK, `{"success":true,"data":{}}`), nil
	})

	query := map[string][]string{"page": {"2"}, "limit": {"10"}}
	if err := client.Get(context.Background(), "/memberships", query, &Envelope{}); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotURL != "http://backend.test/memberships?limit=10&page=2" {
		t.Fatalf("unexpected URL %q", gotURL)
	}
}

func TestTextResponseIntoString(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("pong")),
			Header:     http.Header{"Content-Type": []string{"text/plain"}},
		}, nil
	})

	var text string
	if err := client.Get(context.Background(), "/ping", nil, &text); err != nil {
		t.Fatalf("get: %v", err)
	}
	if text != "pong" {
		t.Fatalf("unexpected text %q", text)
	}
}
