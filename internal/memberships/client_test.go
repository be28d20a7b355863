package memberships

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

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

func TestListQuery(t *testing.T) {
	tests := []struct {
		name   string
		params ListParams
		want   string
	}{
		{"defaults", ListParams{}, "limit=10&page=1"},
		{"explicit page", ListParams{Page: 3, Limit: 25}, "limit=25&page=3"},
		{"status filter", ListParams{Status: "active"}, "limit=10&page=1&status=active"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string
			api := newTestAPI(t, func(req *http.Request) (*http.Response, error) {
				gotQuery = req.URL.RawQuery
				return jsonResponse(http.StatusOK, `{"success":true,"data":{"data":[],"pagination":{"page":1,"limit":10,"total":0,"total_pages":0}}}`), nil
			})

			if _, _, err := api.List(context.Background(), tt.params); err != nil {
				t.Fatalf("List: %v", err)
			}
			if gotQuery != tt.want {
				t.Fatalf("query = %q, want %q", gotQuery, tt.want)
			}
		})
	}
}

func TestListEnvelopeFailure(t *testing.T) {
	api := newTestAPI(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"success":false}`), nil
	})

	_, _, err := api.List(context.Background(), ListParams{})
	if err == nil || err.Error() == "" {
		t.Fatalf("err = %v", err)
	}
}
