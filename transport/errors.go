package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error is a non-2xx response from the Mux API, decoded from the standard
// error envelope when the body carries one.
type Error struct {
	StatusCode int

	// Type and Messages come from the API error envelope and may be empty
	// when the response body was not a recognizable envelope.
	Type     string
	Messages []string

	// RawBody holds the response body when the envelope could not be
	// decoded.
	RawBody string
}

func (e *Error) Error() string {
	if e.Type != "" || len(e.Messages) > 0 {
		return fmt.Sprintf("mux: %s (%d): %s", e.Type, e.StatusCode, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("mux: received a non 2xx status code (%d) with body %q", e.StatusCode, e.RawBody)
}

// IsNotFound reports whether err is an API error with a 404 status.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

type errorEnvelope struct {
	Error struct {
		Type     string   `json:"type"`
		Messages []string `json:"messages"`
	} `json:"error"`
}

func newError(resp *http.Response) error {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{StatusCode: resp.StatusCode}
	}

	var envelope errorEnvelope
	if json.Unmarshal(b, &envelope) == nil && (envelope.Error.Type != "" || len(envelope.Error.Messages) > 0) {
		return &Error{
			StatusCode: resp.StatusCode,
			Type:       envelope.Error.Type,
			Messages:   envelope.Error.Messages,
		}
	}

	return &Error{StatusCode: resp.StatusCode, RawBody: string(b)}
}
