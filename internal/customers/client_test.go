package customers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	pkgerrors "github.com/fithouse/console/pkg/errors"
	"github.com/fithouse/console/pkg/rest"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestAPI(t *testing.T, fn roundTripFunc) *API {
	t.Helper()
	c, err := rest.NewClient("http://backend.test", rest.WithHTTPClient(&http.Client{Transport: fn}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return NewAPI(c)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestListDefaults(t *testing.T) {
	var gotQuery string
	api := newTestAPI(t, func(req *http.Request) (*http.Response, error) {
		gotQuery = req.URL.RawQuery
		return jsonResponse(http.StatusOK, `{"success":true,"data":{"data":[{"id":"c1","full_name":"Ana"}],"pagination":{"page":1,"limit":10,"total":1,"total_pages":1}}}`), nil
	})

	data, page, err := api.List(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotQuery != "limit=10&page=1" {
		t.Fatalf("query = %q, want limit=10&page=1", gotQuery)
	}
	if len(data) != 1 || data[0].ID != "c1" {
		t.Fatalf("data = %+v", data)
	}
	if page.Limit != 10 || page.Page != 1 {
		t.Fatalf("pagination = %+v", page)
	}
}

func TestGetRequiresID(t *testing.T) {
	called := false
	api := newTestAPI(t, func(req *http.Request) (*http.Response, error) {
		called = true
		return jsonResponse(http.StatusOK, `{"success":true,"data":{}}`), nil
	})

	_, err := api.Get(context.Background(), "  ")
	if err == nil {
		t.Fatal("expected error")
	}
	if called {
		t.Fatal("request must not be sent for an empty id")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Message() != "ID de customer requerido" {
		t.Fatalf("err = %v", err)
	}
}

func TestGetNotFoundFallback(t *testing.T) {
	api := newTestAPI(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"success":false}`), nil
	})

	_, err := api.Get(context.Background(), "c1")
	appErr := pkgerrors.As(err)
	if appErr == nil {
		t.Fatalf("err = %v", err)
	}
	if appErr.Message() != "Customer no encontrado" {
		t.Fatalf("message = %q", appErr.Message())
	}
}

func TestLeftToleratesMissingData(t *testing.T) {
	api := newTestAPI(t, func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/customers/left" {
			t.Fatalf("path = %q", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{"success":true,"message":"sin registros"}`), nil
	})

	message, data, err := api.Left(context.Background())
	if err != nil {
		t.Fatalf("Left: %v", err)
	}
	if message != "sin registros" {
		t.Fatalf("message = %q", message)
	}
	if data == nil || len(data) != 0 {
		t.Fatalf("data = %#v, want empty slice", data)
	}
}
