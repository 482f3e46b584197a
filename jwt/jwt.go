// Package jwt signs playback tokens for assets and live streams whose
// playback IDs use the signed policy. Tokens are RS256 JWTs carrying the
// playback ID, an audience, and an expiry, signed with a URL signing key
// created through the Video API.
package jwt

import (
	"bytes"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// DefaultExpiration matches the API default for signed playback tokens
const DefaultExpiration = 7 * 24 * time.Hour

var (
	// ErrMissingPlaybackID is returned when Sign is called without a
	// playback ID
	ErrMissingPlaybackID = errors.New("a playback ID is required")

	// ErrMissingKeyID is returned when Sign is called without a signing
	// key ID
	ErrMissingKeyID = errors.New("a signing key ID is required")

	// ErrMissingPrivateKey is returned when Sign is called without key
	// material
	ErrMissingPrivateKey = errors.New("a private key is required")
)

// Audience selects what a playback token grants access to
type Audience string

const (
	AudienceVideo      Audience = "v"
	AudienceThumbnail  Audience = "t"
	AudienceGIF        Audience = "g"
	AudienceStoryboard Audience = "s"
)

// SignOptions configures a playback token
type SignOptions struct {
	// KeyID is the signing key ID, sent as the kid of the token.
	KeyID string

	// PrivateKey is the signing key's private half: a PEM-encoded RSA
	// key, either raw or base64 wrapped as returned by the API.
	PrivateKey []byte

	// Audience defaults to AudienceVideo.
	Audience Audience

	// Expiration defaults to DefaultExpiration.
	Expiration time.Duration

	// Params are merged into the claims, for playback modifiers such as
	// thumbnail time or width.
	Params map[string]string
}

// Sign returns a signed playback token for the given playback ID
func Sign(playbackID string, opts SignOptions) (string, error) {
	if playbackID == "" {
		return "", ErrMissingPlaybackID
	}
	if opts.KeyID == "" {
		return "", ErrMissingKeyID
	}
	if len(opts.PrivateKey) == 0 {
		return "", ErrMissingPrivateKey
	}

	key, err := parsePrivateKey(opts.PrivateKey)
	if err != nil {
		return "", err
	}

	audience := opts.Audience
	if audience == "" {
		audience = AudienceVideo
	}

	expiration := opts.Expiration
	if expiration <= 0 {
		expiration = DefaultExpiration
	}

	claims := jwt.MapClaims{
		"sub": playbackID,
		"aud": string(audience),
		"exp": time.Now().Add(expiration).Unix(),
		"kid": opts.KeyID,
	}
	for k, v := range opts.Params {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = opts.KeyID

	signed, err := token.SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "signing playback token")
	}

	return signed, nil
}

// parsePrivateKey accepts the base64 wrapping the API applies to freshly
// created signing keys as well as plain PEM.
func parsePrivateKey(data []byte) (interface{}, error) {
	pemBytes := data
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("-----BEGIN")) {
		decoded, err := base64.StdEncoding.DecodeString(string(data))
		if err != nil {
			return nil, errors.Wrap(err, "decoding base64 private key")
		}
		pemBytes = decoded
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, errors.Wrap(err, "parsing private key")
	}

	return key, nil
}
