// Package webhooks verifies the signatures Mux attaches to webhook
// deliveries and decodes their payloads.
package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// SignatureHeader is the HTTP header carrying the delivery signature
const SignatureHeader = "Mux-Signature"

// DefaultTolerance is how far a delivery timestamp may drift from local
// time before verification fails
const DefaultTolerance = 5 * time.Minute

var (
	// ErrMissingSignature is returned when the signature header is absent
	ErrMissingSignature = errors.New("a signature header is required")

	// ErrInvalidHeader is returned when the signature header does not
	// carry a timestamp and at least one v1 signature
	ErrInvalidHeader = errors.New("signature header is malformed")

	// ErrTimestampTooOld is returned when the delivery timestamp falls
	// outside the tolerance window
	ErrTimestampTooOld = errors.New("signature timestamp outside of tolerance")

	// ErrNoValidSignature is returned when no v1 signature matches the
	// payload
	ErrNoValidSignature = errors.New("no valid signature found for payload")
)

// VerifySignature checks the payload of a webhook delivery against its
// Mux-Signature header using DefaultTolerance
func VerifySignature(payload []byte, header, secret string) error {
	return verify(payload, header, secret, DefaultTolerance, time.Now())
}

// VerifySignatureWithTolerance is VerifySignature with an explicit
// timestamp drift tolerance
func VerifySignatureWithTolerance(payload []byte, header, secret string, tolerance time.Duration) error {
	return verify(payload, header, secret, tolerance, time.Now())
}

func verify(payload []byte, header, secret string, tolerance time.Duration, now time.Time) error {
	if header == "" {
		return ErrMissingSignature
	}

	timestamp, signatures, err := parseHeader(header)
	if err != nil {
		return err
	}

	issued := time.Unix(timestamp, 0)
	drift := now.Sub(issued)
	if drift < 0 {
		drift = -drift
	}
	if drift > tolerance {
		return ErrTimestampTooOld
	}

	expected := sign(payload, timestamp, secret)
	for _, sig := range signatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return ErrNoValidSignature
}

// parseHeader splits "t=<unix>,v1=<hex>[,v1=<hex>...]" into its parts
func parseHeader(header string) (timestamp int64, signatures []string, err error) {
	for _, pair := range strings.Split(header, ",") {
		k, v, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			continue
		}
		switch k {
		case "t":
			timestamp, err = strconv.ParseInt(v, 10, 64)
			if err != nil {
				return 0, nil, ErrInvalidHeader
			}
		case "v1":
			signatures = append(signatures, v)
		}
	}

	if timestamp == 0 || len(signatures) == 0 {
		return 0, nil, ErrInvalidHeader
	}

	return timestamp, signatures, nil
}

func sign(payload []byte, timestamp int64, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return mac.Sum(nil)
}

// Event is the envelope of a webhook delivery. Data holds the raw
// resource payload; decode it based on Type.
type Event struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`

	Object struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	} `json:"object"`

	Environment struct {
		Name string `json:"name"`
		ID   string `json:"id"`
	} `json:"environment"`

	Data json.RawMessage `json:"data"`
}

// ParseEvent decodes a webhook delivery body
func ParseEvent(payload []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return Event{}, errors.Wrap(err, "decoding webhook event")
	}
	return event, nil
}
