package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cbsinteractive/mux-sdk-go/exceptions"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/time/rate"
)

type testReqBody struct {
	SomeReqProp propType `json:"some_req_prop"`
}

type testResp struct {
	SomeProp propType `json:"some_prop"`
}

type propType struct {
	Name string `json:"name"`
}

type RespAssertion func(resp testResp) error

func TestDo(t *testing.T) {
	assert := func(fns ...RespAssertion) []RespAssertion { return fns }

	respContentsAreExactly := func(want testResp) RespAssertion {
		return func(got testResp) error {
			if diff := cmp.Diff(want, got); diff != "" {
				return fmt.Errorf("response mismatch (-want +got):\n%s", diff)
			}
			return nil
		}
	}

	respIsSuccess := func() RespAssertion {
		return func(got testResp) error {
			if got.SomeProp.Name != "success" {
				return fmt.Errorf("expected %v to be a successful response", got)
			}
			return nil
		}
	}

	tests := []struct {
		title      string
		backend    http.HandlerFunc
		method     string
		reqBody    interface{}
		path       string
		assertions []RespAssertion
	}{
		{
			title: "marshal",
			backend: func(w http.ResponseWriter, r *http.Request) {
				writeProp(w, "test_name")
			},
			method: http.MethodGet,
			assertions: assert(respContentsAreExactly(testResp{
				SomeProp: propType{
					Name: "test_name",
				},
			})),
		},
		{
			title: "path",
			backend: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/test_path" {
					writeSuccess(w)
				}
			},
			path:       "/test_path",
			method:     http.MethodGet,
			assertions: assert(respIsSuccess()),
		},
		{
			title: "body",
			backend: func(w http.ResponseWriter, r *http.Request) {
				reqBody := testReqBody{}
				err := json.NewDecoder(r.Body).Decode(&reqBody)
				if err == nil && reqBody.SomeReqProp.Name == "req_body" {
					writeSuccess(w)
				}
			},
			method: http.MethodPost,
			reqBody: testReqBody{
				SomeReqProp: propType{
					Name: "req_body",
				},
			},
			assertions: assert(respIsSuccess()),
		},
		{
			title: "method",
			backend: func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodPatch {
					writeSuccess(w)
				}
			},
			method:     http.MethodPatch,
			assertions: assert(respIsSuccess()),
		},
		{
			title: "auth",
			backend: func(w http.ResponseWriter, r *http.Request) {
				id, secret, ok := r.BasicAuth()
				if ok && id == "token_id" && secret == "token_secret" {
					writeSuccess(w)
				}
			},
			method:     http.MethodGet,
			assertions: assert(respIsSuccess()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			backend := httptest.NewServer(http.HandlerFunc(tt.backend))
			defer backend.Close()

			client := testClient(t, backend)

			respObj := testResp{}
			err := client.do(context.Background(), tt.method, tt.path, tt.reqBody, &respObj)
			if err != nil {
				t.Error(err)
			}

			for _, asrt := range tt.assertions {
				if err := asrt(respObj); err != nil {
					t.Error(err)
				}
			}
		})
	}
}

func TestDoAPIError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"type": "unauthorized", "messages": ["Authentication Required"]}}`))
	}))
	defer backend.Close()

	client := testClient(t, backend)

	err := client.do(context.Background(), http.MethodGet, "/video/v1/assets", nil, &testResp{})
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong status code: got %d, want %d", apiErr.StatusCode, http.StatusUnauthorized)
	}
	if apiErr.Type != "unauthorized" {
		t.Errorf("wrong error type: got %q, want %q", apiErr.Type, "unauthorized")
	}
	want := []string{"Authentication Required"}
	if diff := cmp.Diff(want, apiErr.Messages); diff != "" {
		t.Errorf("wrong messages (-want +got):\n%s", diff)
	}
}

func TestDoUnparsableError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer backend.Close()

	client := testClient(t, backend)

	err := client.do(context.Background(), http.MethodGet, "/", nil, &testResp{})
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.RawBody != "upstream exploded" {
		t.Errorf("wrong raw body: got %q", apiErr.RawBody)
	}
}

func TestDoRetries(t *testing.T) {
	tests := []struct {
		title        string
		failures     int32
		failStatus   int
		maxRetries   int
		wantRequests int32
		wantErr      bool
	}{
		{
			title:        "no retries by default",
			failures:     1,
			failStatus:   http.StatusInternalServerError,
			maxRetries:   0,
			wantRequests: 1,
			wantErr:      true,
		},
		{
			title:        "retries 5xx until success",
			failures:     2,
			failStatus:   http.StatusServiceUnavailable,
			maxRetries:   3,
			wantRequests: 3,
		},
		{
			title:        "retries throttled responses",
			failures:     1,
			failStatus:   http.StatusTooManyRequests,
			maxRetries:   1,
			wantRequests: 2,
		},
		{
			title:        "gives up after max retries",
			failures:     5,
			failStatus:   http.StatusInternalServerError,
			maxRetries:   2,
			wantRequests: 3,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			var requests int32
			backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if atomic.AddInt32(&requests, 1) <= tt.failures {
					w.Header().Set("Retry-After", "0")
					w.WriteHeader(tt.failStatus)
					return
				}
				writeSuccess(w)
			}))
			defer backend.Close()

			client := testClient(t, backend)
			client.MaxRetries = tt.maxRetries

			err := client.do(context.Background(), http.MethodGet, "/", nil, &testResp{})
			if tt.wantErr && err == nil {
				t.Error("expected an error, got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got := atomic.LoadInt32(&requests); got != tt.wantRequests {
				t.Errorf("wrong request count: got %d, want %d", got, tt.wantRequests)
			}
		})
	}
}

func TestDoReportsAPIErrors(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	var reported []error
	client := testClient(t, backend)
	client.Reporter = exceptions.ReporterFunc(func(err error) { reported = append(reported, err) })

	err := client.do(context.Background(), http.MethodGet, "/", nil, &testResp{})
	if err == nil {
		t.Fatal("expected an error, got none")
	}
	if len(reported) != 1 {
		t.Fatalf("expected one reported error, got %d", len(reported))
	}
	if reported[0] != err {
		t.Errorf("reported error %v does not match returned error %v", reported[0], err)
	}
}

func TestDoReportsTransportErrors(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	var reported []error
	client := testClient(t, backend)
	client.Reporter = exceptions.ReporterFunc(func(err error) { reported = append(reported, err) })

	// closed backend forces a connection error
	backend.Close()

	err := client.do(context.Background(), http.MethodGet, "/", nil, &testResp{})
	if err == nil {
		t.Fatal("expected an error, got none")
	}
	if len(reported) != 1 {
		t.Fatalf("expected one reported error, got %d", len(reported))
	}
}

func TestDoRateLimiter(t *testing.T) {
	var requests int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		writeSuccess(w)
	}))
	defer backend.Close()

	client := testClient(t, backend)
	client.Limiter = rate.NewLimiter(rate.Every(time.Hour), 1)

	if err := client.do(context.Background(), http.MethodGet, "/", nil, &testResp{}); err != nil {
		t.Fatal(err)
	}

	// the burst is spent, so the second call must wait an hour; the
	// context deadline has to win without a request going out
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := client.do(ctx, http.MethodGet, "/", nil, &testResp{})
	if err == nil {
		t.Fatal("expected an error, got none")
	}
	if got := atomic.LoadInt32(&requests); got != 1 {
		t.Errorf("wrong request count: got %d, want 1", got)
	}
}

func TestBackoff(t *testing.T) {
	for _, attempt := range []int{0, 1, 6, 35, 64, 1000} {
		wait := backoff(attempt, nil)
		if wait <= 0 || wait > maxBackoff {
			t.Errorf("attempt %d: wait %s outside (0, %s]", attempt, wait, maxBackoff)
		}
	}
}

func TestBackoffRetryAfter(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "2")

	if got, want := backoff(0, h), 2*time.Second; got != want {
		t.Errorf("wrong wait: got %s, want %s", got, want)
	}
}

func TestEnsureDefaults(t *testing.T) {
	client := Client{}
	client.ensure()

	if client.Base.String() != defaultBaseURL {
		t.Errorf("wrong default base URL: got %q, want %q", client.Base.String(), defaultBaseURL)
	}
	if client.Client.Timeout != defaultTimeout {
		t.Errorf("wrong default timeout: got %s, want %s", client.Client.Timeout, defaultTimeout)
	}
}

func testClient(t *testing.T, backend *httptest.Server) *Client {
	t.Helper()

	backendURL, err := url.Parse(backend.URL)
	if err != nil {
		t.Fatal(err)
	}

	client := &Client{Base: backendURL, TokenID: "token_id", TokenSecret: "token_secret"}
	client.ensure()
	return client
}

func writeSuccess(w http.ResponseWriter) {
	_, _ = w.Write([]byte(`{ "some_prop": { "name": "success"} }`))
}

func writeProp(w http.ResponseWriter, prop string) {
	_, _ = w.Write([]byte(`{ "some_prop": { "name": "` + prop + `"} }`))
}
