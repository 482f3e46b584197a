package video

import (
	"context"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

const uploadsPath = basePath + "/uploads"

// UploadID uniquely identifies a direct upload
type UploadID string

// Upload is a direct upload: a one-time URL a client PUTs a file to,
// which becomes an asset once received
type Upload struct {
	ID               UploadID            `json:"id"`
	Status           string              `json:"status,omitempty"`
	URL              string              `json:"url,omitempty"`
	Timeout          int64               `json:"timeout,omitempty"`
	AssetID          string              `json:"asset_id,omitempty"`
	CORSOrigin       string              `json:"cors_origin,omitempty"`
	NewAssetSettings *CreateAssetRequest `json:"new_asset_settings,omitempty"`
	Error            *AssetErrors        `json:"error,omitempty"`
	Test             bool                `json:"test,omitempty"`
}

// CreateUploadRequest describes the request of the upload creation endpoint
type CreateUploadRequest struct {
	NewAssetSettings *CreateAssetRequest `json:"new_asset_settings,omitempty"`
	Timeout          int64               `json:"timeout,omitempty"`
	CORSOrigin       string              `json:"cors_origin,omitempty"`
	Test             bool                `json:"test,omitempty"`
}

type (
	uploadEnvelope struct {
		Data Upload `json:"data"`
	}

	uploadsEnvelope struct {
		Data []Upload `json:"data"`
	}
)

// UploadsAPI exposes the direct upload endpoints
type UploadsAPI interface {
	Create(ctx context.Context, params *CreateUploadRequest) (Upload, error)
	Get(ctx context.Context, id UploadID) (Upload, error)
	List(ctx context.Context, params *ListParams) ([]Upload, error)
	Cancel(ctx context.Context, id UploadID) (Upload, error)
}

// UploadsService manages direct uploads through the shared transport
type UploadsService struct {
	tx *transport.Client
}

var _ UploadsAPI = (*UploadsService)(nil)

// Create returns a new direct upload URL
func (s *UploadsService) Create(ctx context.Context, params *CreateUploadRequest) (Upload, error) {
	if params == nil {
		return Upload{}, ErrMissingParams
	}

	var resp uploadEnvelope
	err := s.tx.Post(ctx, uploadsPath, params, &resp)
	if err != nil {
		return Upload{}, err
	}

	return resp.Data, nil
}

// Get returns details about a single direct upload
func (s *UploadsService) Get(ctx context.Context, id UploadID) (Upload, error) {
	if id == "" {
		return Upload{}, ErrMissingUploadID
	}

	var resp uploadEnvelope
	err := s.tx.Get(ctx, uploadsPath+"/"+string(id), &resp)
	if err != nil {
		return Upload{}, err
	}

	return resp.Data, nil
}

// List returns a page of direct uploads
func (s *UploadsService) List(ctx context.Context, params *ListParams) ([]Upload, error) {
	var resp uploadsEnvelope
	err := s.tx.Get(ctx, uploadsPath+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Cancel invalidates an upload URL that has not received a file yet
func (s *UploadsService) Cancel(ctx context.Context, id UploadID) (Upload, error) {
	if id == "" {
		return Upload{}, ErrMissingUploadID
	}

	var resp uploadEnvelope
	err := s.tx.Put(ctx, uploadsPath+"/"+string(id)+"/cancel", nil, &resp)
	if err != nil {
		return Upload{}, err
	}

	return resp.Data, nil
}
