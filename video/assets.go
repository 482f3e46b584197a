package video

import (
	"context"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

const assetsPath = basePath + "/assets"

// AssetsAPI exposes the asset management endpoints
type AssetsAPI interface {
	Create(ctx context.Context, params *CreateAssetRequest) (Asset, error)
	Get(ctx context.Context, id AssetID) (Asset, error)
	List(ctx context.Context, params *ListParams) ([]Asset, error)
	Update(ctx context.Context, id AssetID, params *UpdateAssetRequest) (Asset, error)
	Del(ctx context.Context, id AssetID) error
	InputInfo(ctx context.Context, id AssetID) ([]InputInfo, error)

	CreatePlaybackID(ctx context.Context, id AssetID, params *CreatePlaybackIDRequest) (PlaybackID, error)
	PlaybackID(ctx context.Context, id AssetID, playbackID string) (PlaybackID, error)
	DeletePlaybackID(ctx context.Context, id AssetID, playbackID string) error

	CreateTrack(ctx context.Context, id AssetID, params *CreateTrackRequest) (Track, error)
	DeleteTrack(ctx context.Context, id AssetID, trackID TrackID) error

	UpdateMP4Support(ctx context.Context, id AssetID, params *UpdateMP4SupportRequest) (Asset, error)
	UpdateMasterAccess(ctx context.Context, id AssetID, params *UpdateMasterAccessRequest) (Asset, error)
}

// AssetsService manages assets through the shared transport
type AssetsService struct {
	tx *transport.Client
}

var _ AssetsAPI = (*AssetsService)(nil)

// Create ingests a new asset from the given inputs
func (s *AssetsService) Create(ctx context.Context, params *CreateAssetRequest) (Asset, error) {
	if params == nil {
		return Asset{}, ErrMissingParams
	}

	var resp assetEnvelope
	err := s.tx.Post(ctx, assetsPath, params, &resp)
	if err != nil {
		return Asset{}, err
	}

	return resp.Data, nil
}

// Get returns details about a single asset
func (s *AssetsService) Get(ctx context.Context, id AssetID) (Asset, error) {
	if id == "" {
		return Asset{}, ErrMissingAssetID
	}

	var resp assetEnvelope
	err := s.tx.Get(ctx, assetsPath+"/"+string(id), &resp)
	if err != nil {
		return Asset{}, err
	}

	return resp.Data, nil
}

// List returns a page of assets
func (s *AssetsService) List(ctx context.Context, params *ListParams) ([]Asset, error) {
	var resp assetsEnvelope
	err := s.tx.Get(ctx, assetsPath+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Update changes the mutable settings of an asset
func (s *AssetsService) Update(ctx context.Context, id AssetID, params *UpdateAssetRequest) (Asset, error) {
	if id == "" {
		return Asset{}, ErrMissingAssetID
	}
	if params == nil {
		return Asset{}, ErrMissingParams
	}

	var resp assetEnvelope
	err := s.tx.Patch(ctx, assetsPath+"/"+string(id), params, &resp)
	if err != nil {
		return Asset{}, err
	}

	return resp.Data, nil
}

// Del removes an asset and all of its playback IDs
func (s *AssetsService) Del(ctx context.Context, id AssetID) error {
	if id == "" {
		return ErrMissingAssetID
	}

	return s.tx.Delete(ctx, assetsPath+"/"+string(id))
}

// InputInfo returns details about the source files of an asset
func (s *AssetsService) InputInfo(ctx context.Context, id AssetID) ([]InputInfo, error) {
	if id == "" {
		return nil, ErrMissingAssetID
	}

	var resp inputInfoEnvelope
	err := s.tx.Get(ctx, assetsPath+"/"+string(id)+"/input-info", &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// CreatePlaybackID adds a playback ID to an asset
func (s *AssetsService) CreatePlaybackID(ctx context.Context, id AssetID, params *CreatePlaybackIDRequest) (PlaybackID, error) {
	if id == "" {
		return PlaybackID{}, ErrMissingAssetID
	}
	if params == nil {
		return PlaybackID{}, ErrMissingParams
	}

	var resp playbackIDEnvelope
	err := s.tx.Post(ctx, assetsPath+"/"+string(id)+"/playback-ids", params, &resp)
	if err != nil {
		return PlaybackID{}, err
	}

	return resp.Data, nil
}

// PlaybackID returns a single playback ID attached to an asset
func (s *AssetsService) PlaybackID(ctx context.Context, id AssetID, playbackID string) (PlaybackID, error) {
	if id == "" {
		return PlaybackID{}, ErrMissingAssetID
	}
	if playbackID == "" {
		return PlaybackID{}, ErrMissingPlaybackID
	}

	var resp playbackIDEnvelope
	err := s.tx.Get(ctx, assetsPath+"/"+string(id)+"/playback-ids/"+playbackID, &resp)
	if err != nil {
		return PlaybackID{}, err
	}

	return resp.Data, nil
}

// DeletePlaybackID revokes a playback ID from an asset
func (s *AssetsService) DeletePlaybackID(ctx context.Context, id AssetID, playbackID string) error {
	if id == "" {
		return ErrMissingAssetID
	}
	if playbackID == "" {
		return ErrMissingPlaybackID
	}

	return s.tx.Delete(ctx, assetsPath+"/"+string(id)+"/playback-ids/"+playbackID)
}

// CreateTrack adds a subtitle or caption track to an asset
func (s *AssetsService) CreateTrack(ctx context.Context, id AssetID, params *CreateTrackRequest) (Track, error) {
	if id == "" {
		return Track{}, ErrMissingAssetID
	}
	if params == nil {
		return Track{}, ErrMissingParams
	}

	var resp trackEnvelope
	err := s.tx.Post(ctx, assetsPath+"/"+string(id)+"/tracks", params, &resp)
	if err != nil {
		return Track{}, err
	}

	return resp.Data, nil
}

// DeleteTrack removes a text track from an asset
func (s *AssetsService) DeleteTrack(ctx context.Context, id AssetID, trackID TrackID) error {
	if id == "" {
		return ErrMissingAssetID
	}
	if trackID == "" {
		return ErrMissingTrackID
	}

	return s.tx.Delete(ctx, assetsPath+"/"+string(id)+"/tracks/"+string(trackID))
}

// UpdateMP4Support changes whether downloadable MP4s are prepared for the
// asset
func (s *AssetsService) UpdateMP4Support(ctx context.Context, id AssetID, params *UpdateMP4SupportRequest) (Asset, error) {
	if id == "" {
		return Asset{}, ErrMissingAssetID
	}
	if params == nil {
		return Asset{}, ErrMissingParams
	}

	var resp assetEnvelope
	err := s.tx.Put(ctx, assetsPath+"/"+string(id)+"/mp4-support", params, &resp)
	if err != nil {
		return Asset{}, err
	}

	return resp.Data, nil
}

// UpdateMasterAccess grants or revokes temporary access to the master file
func (s *AssetsService) UpdateMasterAccess(ctx context.Context, id AssetID, params *UpdateMasterAccessRequest) (Asset, error) {
	if id == "" {
		return Asset{}, ErrMissingAssetID
	}
	if params == nil {
		return Asset{}, ErrMissingParams
	}

	var resp assetEnvelope
	err := s.tx.Put(ctx, assetsPath+"/"+string(id)+"/master-access", params, &resp)
	if err != nil {
		return Asset{}, err
	}

	return resp.Data, nil
}
