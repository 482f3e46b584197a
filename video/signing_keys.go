package video

import (
	"context"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

const signingKeysPath = basePath + "/signing-keys"

// SigningKeyID uniquely identifies a URL signing key
type SigningKeyID string

// SigningKey is an RSA keypair used to sign playback tokens. The private
// key is only returned once, at creation time, base64 encoded.
type SigningKey struct {
	ID         SigningKeyID `json:"id"`
	CreatedAt  string       `json:"created_at,omitempty"`
	PrivateKey string       `json:"private_key,omitempty"`
}

type (
	signingKeyEnvelope struct {
		Data SigningKey `json:"data"`
	}

	signingKeysEnvelope struct {
		Data []SigningKey `json:"data"`
	}
)

// SigningKeysAPI exposes the URL signing key endpoints
type SigningKeysAPI interface {
	Create(ctx context.Context) (SigningKey, error)
	Get(ctx context.Context, id SigningKeyID) (SigningKey, error)
	List(ctx context.Context, params *ListParams) ([]SigningKey, error)
	Del(ctx context.Context, id SigningKeyID) error
}

// SigningKeysService manages URL signing keys through the shared transport
type SigningKeysService struct {
	tx *transport.Client
}

var _ SigningKeysAPI = (*SigningKeysService)(nil)

// Create generates a new signing keypair
func (s *SigningKeysService) Create(ctx context.Context) (SigningKey, error) {
	var resp signingKeyEnvelope
	err := s.tx.Post(ctx, signingKeysPath, nil, &resp)
	if err != nil {
		return SigningKey{}, err
	}

	return resp.Data, nil
}

// Get returns details about a single signing key, without its private half
func (s *SigningKeysService) Get(ctx context.Context, id SigningKeyID) (SigningKey, error) {
	if id == "" {
		return SigningKey{}, ErrMissingSigningKeyID
	}

	var resp signingKeyEnvelope
	err := s.tx.Get(ctx, signingKeysPath+"/"+string(id), &resp)
	if err != nil {
		return SigningKey{}, err
	}

	return resp.Data, nil
}

// List returns a page of signing keys
func (s *SigningKeysService) List(ctx context.Context, params *ListParams) ([]SigningKey, error) {
	var resp signingKeysEnvelope
	err := s.tx.Get(ctx, signingKeysPath+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Del revokes a signing key; outstanding tokens signed with it stop
// validating
func (s *SigningKeysService) Del(ctx context.Context, id SigningKeyID) error {
	if id == "" {
		return ErrMissingSigningKeyID
	}

	return s.tx.Delete(ctx, signingKeysPath+"/"+string(id))
}
