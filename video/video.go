// Package video covers the Mux Video API: live streams, assets, direct
// uploads, delivery usage, and URL signing keys under /video/v1.
package video

import (
	"net/url"
	"strconv"

	"github.com/cbsinteractive/mux-sdk-go/transport"
	"github.com/pkg/errors"
)

const basePath = "/video/v1"

var (
	// ErrMissingParams is returned when a request that needs a parameter
	// object is called without one
	ErrMissingParams = errors.New("request params are required")

	// ErrMissingLiveStreamID is returned when a live stream operation is
	// called without a live stream ID
	ErrMissingLiveStreamID = errors.New("a live stream ID is required")

	// ErrMissingAssetID is returned when an asset operation is called
	// without an asset ID
	ErrMissingAssetID = errors.New("an asset ID is required")

	// ErrMissingPlaybackID is returned when a playback ID operation is
	// called without a playback ID
	ErrMissingPlaybackID = errors.New("a playback ID is required")

	// ErrMissingSimulcastTargetID is returned when a simulcast target
	// operation is called without a simulcast target ID
	ErrMissingSimulcastTargetID = errors.New("a simulcast target ID is required")

	// ErrMissingTrackID is returned when a track operation is called
	// without a track ID
	ErrMissingTrackID = errors.New("a track ID is required")

	// ErrMissingUploadID is returned when an upload operation is called
	// without an upload ID
	ErrMissingUploadID = errors.New("an upload ID is required")

	// ErrMissingSigningKeyID is returned when a signing key operation is
	// called without a signing key ID
	ErrMissingSigningKeyID = errors.New("a signing key ID is required")
)

// Service groups the Video API resources behind a shared transport
type Service struct {
	LiveStreams   *LiveStreamsService
	Assets        *AssetsService
	Uploads       *UploadsService
	DeliveryUsage *DeliveryUsageService
	SigningKeys   *SigningKeysService
}

// New wires every Video API resource to the given transport
func New(tx *transport.Client) *Service {
	return &Service{
		LiveStreams:   &LiveStreamsService{tx: tx},
		Assets:        &AssetsService{tx: tx},
		Uploads:       &UploadsService{tx: tx},
		DeliveryUsage: &DeliveryUsageService{tx: tx},
		SigningKeys:   &SigningKeysService{tx: tx},
	}
}

// ListParams holds pagination options shared by the list operations.
type ListParams struct {
	Limit int
	Page  int
}

func (p *ListParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	return v
}

// query renders values as a query string suffix. Encode sorts keys, so the
// same params always produce the same path.
func query(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
