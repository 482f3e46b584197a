package video

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

type requestRecorder struct {
	requests []recordedRequest
}

type recordedRequest struct {
	Method string
	Path   string
	Query  string
}

func (rec *requestRecorder) handler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec.requests = append(rec.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
		})
		_, _ = w.Write([]byte(body))
	}
}

// newTestService returns a Service wired to a fake backend that answers
// every request with body and records what it saw.
func newTestService(t *testing.T, body string) (*Service, *requestRecorder, func()) {
	t.Helper()

	rec := &requestRecorder{}
	backend := httptest.NewServer(rec.handler(body))

	backendURL, err := url.Parse(backend.URL)
	if err != nil {
		backend.Close()
		t.Fatal(err)
	}

	tx := &transport.Client{Base: backendURL, TokenID: "id", TokenSecret: "secret"}
	return New(tx), rec, backend.Close
}

func (rec *requestRecorder) assertOne(t *testing.T, method, path string) {
	t.Helper()

	if len(rec.requests) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(rec.requests))
	}
	got := rec.requests[0]
	if got.Method != method {
		t.Errorf("wrong method: got %s, want %s", got.Method, method)
	}
	if got.Path != path {
		t.Errorf("wrong path: got %s, want %s", got.Path, path)
	}
}

func (rec *requestRecorder) assertNone(t *testing.T) {
	t.Helper()

	if len(rec.requests) != 0 {
		t.Fatalf("expected no requests, got %d", len(rec.requests))
	}
}

func TestListParamsQuery(t *testing.T) {
	tests := []struct {
		title  string
		params *ListParams
		want   string
	}{
		{title: "nil params", params: nil, want: ""},
		{title: "zero params", params: &ListParams{}, want: ""},
		{title: "limit only", params: &ListParams{Limit: 10}, want: "?limit=10"},
		{title: "limit and page", params: &ListParams{Limit: 10, Page: 3}, want: "?limit=10&page=3"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := query(tt.params.values())
			if got != tt.want {
				t.Errorf("wrong query: got %q, want %q", got, tt.want)
			}

			// same inputs must render the same path
			if again := query(tt.params.values()); again != got {
				t.Errorf("query not deterministic: %q then %q", got, again)
			}
		})
	}
}
