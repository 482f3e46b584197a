package video

import (
	"context"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

const liveStreamsPath = basePath + "/live-streams"

// LiveStreamsAPI exposes the live stream management endpoints
type LiveStreamsAPI interface {
	Create(ctx context.Context, params *CreateLiveStreamRequest) (LiveStream, error)
	Get(ctx context.Context, id LiveStreamID) (LiveStream, error)
	List(ctx context.Context, params *ListParams) ([]LiveStream, error)
	Update(ctx context.Context, id LiveStreamID, params *UpdateLiveStreamRequest) (LiveStream, error)
	Del(ctx context.Context, id LiveStreamID) error

	SignalComplete(ctx context.Context, id LiveStreamID) error
	ResetStreamKey(ctx context.Context, id LiveStreamID) (LiveStream, error)
	Enable(ctx context.Context, id LiveStreamID) error
	Disable(ctx context.Context, id LiveStreamID) error
	UpdateEmbeddedSubtitles(ctx context.Context, id LiveStreamID, params *UpdateEmbeddedSubtitlesRequest) (LiveStream, error)

	CreatePlaybackID(ctx context.Context, id LiveStreamID, params *CreatePlaybackIDRequest) (PlaybackID, error)
	PlaybackID(ctx context.Context, id LiveStreamID, playbackID string) (PlaybackID, error)
	DeletePlaybackID(ctx context.Context, id LiveStreamID, playbackID string) error

	CreateSimulcastTarget(ctx context.Context, id LiveStreamID, params *CreateSimulcastTargetRequest) (SimulcastTarget, error)
	SimulcastTarget(ctx context.Context, id LiveStreamID, targetID SimulcastTargetID) (SimulcastTarget, error)
	DeleteSimulcastTarget(ctx context.Context, id LiveStreamID, targetID SimulcastTargetID) error
}

// LiveStreamsService manages live streams through the shared transport
type LiveStreamsService struct {
	tx *transport.Client
}

var _ LiveStreamsAPI = (*LiveStreamsService)(nil)

// Create starts a new live stream based on the request definition
func (s *LiveStreamsService) Create(ctx context.Context, params *CreateLiveStreamRequest) (LiveStream, error) {
	if params == nil {
		return LiveStream{}, ErrMissingParams
	}

	var resp liveStreamEnvelope
	err := s.tx.Post(ctx, liveStreamsPath, params, &resp)
	if err != nil {
		return LiveStream{}, err
	}

	return resp.Data, nil
}

// Get returns details about a single live stream
func (s *LiveStreamsService) Get(ctx context.Context, id LiveStreamID) (LiveStream, error) {
	if id == "" {
		return LiveStream{}, ErrMissingLiveStreamID
	}

	var resp liveStreamEnvelope
	err := s.tx.Get(ctx, liveStreamsPath+"/"+string(id), &resp)
	if err != nil {
		return LiveStream{}, err
	}

	return resp.Data, nil
}

// List returns a page of live streams
func (s *LiveStreamsService) List(ctx context.Context, params *ListParams) ([]LiveStream, error) {
	var resp liveStreamsEnvelope
	err := s.tx.Get(ctx, liveStreamsPath+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Update changes the mutable settings of a live stream
func (s *LiveStreamsService) Update(ctx context.Context, id LiveStreamID, params *UpdateLiveStreamRequest) (LiveStream, error) {
	if id == "" {
		return LiveStream{}, ErrMissingLiveStreamID
	}
	if params == nil {
		return LiveStream{}, ErrMissingParams
	}

	var resp liveStreamEnvelope
	err := s.tx.Patch(ctx, liveStreamsPath+"/"+string(id), params, &resp)
	if err != nil {
		return LiveStream{}, err
	}

	return resp.Data, nil
}

// Del removes a live stream and its stream key
func (s *LiveStreamsService) Del(ctx context.Context, id LiveStreamID) error {
	if id == "" {
		return ErrMissingLiveStreamID
	}

	return s.tx.Delete(ctx, liveStreamsPath+"/"+string(id))
}

// SignalComplete tells Mux the broadcast is over, ending the stream
// immediately instead of waiting for the reconnect window
func (s *LiveStreamsService) SignalComplete(ctx context.Context, id LiveStreamID) error {
	if id == "" {
		return ErrMissingLiveStreamID
	}

	return s.tx.Put(ctx, liveStreamsPath+"/"+string(id)+"/complete", nil, nil)
}

// ResetStreamKey rotates the stream key, invalidating the previous one
func (s *LiveStreamsService) ResetStreamKey(ctx context.Context, id LiveStreamID) (LiveStream, error) {
	if id == "" {
		return LiveStream{}, ErrMissingLiveStreamID
	}

	var resp liveStreamEnvelope
	err := s.tx.Post(ctx, liveStreamsPath+"/"+string(id)+"/reset-stream-key", nil, &resp)
	if err != nil {
		return LiveStream{}, err
	}

	return resp.Data, nil
}

// Enable allows an idle, disabled live stream to accept broadcasts again
func (s *LiveStreamsService) Enable(ctx context.Context, id LiveStreamID) error {
	if id == "" {
		return ErrMissingLiveStreamID
	}

	return s.tx.Put(ctx, liveStreamsPath+"/"+string(id)+"/enable", nil, nil)
}

// Disable stops a live stream from accepting new broadcasts
func (s *LiveStreamsService) Disable(ctx context.Context, id LiveStreamID) error {
	if id == "" {
		return ErrMissingLiveStreamID
	}

	return s.tx.Put(ctx, liveStreamsPath+"/"+string(id)+"/disable", nil, nil)
}

// UpdateEmbeddedSubtitles replaces the embedded subtitle configuration
func (s *LiveStreamsService) UpdateEmbeddedSubtitles(ctx context.Context, id LiveStreamID, params *UpdateEmbeddedSubtitlesRequest) (LiveStream, error) {
	if id == "" {
		return LiveStream{}, ErrMissingLiveStreamID
	}
	if params == nil {
		return LiveStream{}, ErrMissingParams
	}

	var resp liveStreamEnvelope
	err := s.tx.Put(ctx, liveStreamsPath+"/"+string(id)+"/embedded-subtitles", params, &resp)
	if err != nil {
		return LiveStream{}, err
	}

	return resp.Data, nil
}

// CreatePlaybackID adds a playback ID to a live stream
func (s *LiveStreamsService) CreatePlaybackID(ctx context.Context, id LiveStreamID, params *CreatePlaybackIDRequest) (PlaybackID, error) {
	if id == "" {
		return PlaybackID{}, ErrMissingLiveStreamID
	}
	if params == nil {
		return PlaybackID{}, ErrMissingParams
	}

	var resp playbackIDEnvelope
	err := s.tx.Post(ctx, liveStreamsPath+"/"+string(id)+"/playback-ids", params, &resp)
	if err != nil {
		return PlaybackID{}, err
	}

	return resp.Data, nil
}

// PlaybackID returns a single playback ID attached to a live stream
func (s *LiveStreamsService) PlaybackID(ctx context.Context, id LiveStreamID, playbackID string) (PlaybackID, error) {
	if id == "" {
		return PlaybackID{}, ErrMissingLiveStreamID
	}
	if playbackID == "" {
		return PlaybackID{}, ErrMissingPlaybackID
	}

	var resp playbackIDEnvelope
	err := s.tx.Get(ctx, liveStreamsPath+"/"+string(id)+"/playback-ids/"+playbackID, &resp)
	if err != nil {
		return PlaybackID{}, err
	}

	return resp.Data, nil
}

// DeletePlaybackID revokes a playback ID from a live stream
func (s *LiveStreamsService) DeletePlaybackID(ctx context.Context, id LiveStreamID, playbackID string) error {
	if id == "" {
		return ErrMissingLiveStreamID
	}
	if playbackID == "" {
		return ErrMissingPlaybackID
	}

	return s.tx.Delete(ctx, liveStreamsPath+"/"+string(id)+"/playback-ids/"+playbackID)
}

// CreateSimulcastTarget adds a restream destination to a live stream. The
// stream must be idle when the target is created.
func (s *LiveStreamsService) CreateSimulcastTarget(ctx context.Context, id LiveStreamID, params *CreateSimulcastTargetRequest) (SimulcastTarget, error) {
	if id == "" {
		return SimulcastTarget{}, ErrMissingLiveStreamID
	}
	if params == nil {
		return SimulcastTarget{}, ErrMissingParams
	}

	var resp simulcastTargetEnvelope
	err := s.tx.Post(ctx, liveStreamsPath+"/"+string(id)+"/simulcast-targets", params, &resp)
	if err != nil {
		return SimulcastTarget{}, err
	}

	return resp.Data, nil
}

// SimulcastTarget returns a single simulcast target of a live stream
func (s *LiveStreamsService) SimulcastTarget(ctx context.Context, id LiveStreamID, targetID SimulcastTargetID) (SimulcastTarget, error) {
	if id == "" {
		return SimulcastTarget{}, ErrMissingLiveStreamID
	}
	if targetID == "" {
		return SimulcastTarget{}, ErrMissingSimulcastTargetID
	}

	var resp simulcastTargetEnvelope
	err := s.tx.Get(ctx, liveStreamsPath+"/"+string(id)+"/simulcast-targets/"+string(targetID), &resp)
	if err != nil {
		return SimulcastTarget{}, err
	}

	return resp.Data, nil
}

// DeleteSimulcastTarget removes a restream destination from a live stream
func (s *LiveStreamsService) DeleteSimulcastTarget(ctx context.Context, id LiveStreamID, targetID SimulcastTargetID) error {
	if id == "" {
		return ErrMissingLiveStreamID
	}
	if targetID == "" {
		return ErrMissingSimulcastTargetID
	}

	return s.tx.Delete(ctx, liveStreamsPath+"/"+string(id)+"/simulcast-targets/"+string(targetID))
}
