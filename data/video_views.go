package data

import (
	"context"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

const videoViewsPath = basePath + "/video-views"

// VideoViewID uniquely identifies a single playback session
type VideoViewID string

// VideoView is one viewer's playback session and its quality measurements
type VideoView struct {
	ID        VideoViewID `json:"id"`
	ViewerID  string      `json:"viewer_id,omitempty"`
	ViewStart string      `json:"view_start,omitempty"`
	ViewEnd   string      `json:"view_end,omitempty"`

	AssetID      string `json:"asset_id,omitempty"`
	LiveStreamID string `json:"live_stream_id,omitempty"`
	PlaybackID   string `json:"playback_id,omitempty"`

	VideoTitle       string  `json:"video_title,omitempty"`
	ErrorTypeID      int64   `json:"error_type_id,omitempty"`
	ErrorMessage     string  `json:"error_message,omitempty"`
	CountryCode      string  `json:"country_code,omitempty"`
	OperatingSystem  string  `json:"viewer_os_family,omitempty"`
	PlayerSoftware   string  `json:"player_software,omitempty"`
	WatchTime        int64   `json:"watch_time,omitempty"`
	StartupTime      int64   `json:"player_startup_time,omitempty"`
	RebufferCount    int64   `json:"rebuffer_count,omitempty"`
	RebufferDuration int64   `json:"rebuffer_duration,omitempty"`
	PlaybackScore    float64 `json:"player_error_score,omitempty"`

	Events []ViewEvent `json:"events,omitempty"`
}

// ViewEvent is one player event within a video view
type ViewEvent struct {
	Name         string `json:"name,omitempty"`
	ViewerTime   int64  `json:"viewer_time,omitempty"`
	PlaybackTime int64  `json:"playback_time,omitempty"`
	EventTime    int64  `json:"event_time,omitempty"`
}

type (
	videoViewEnvelope struct {
		Data VideoView `json:"data"`
	}

	videoViewsEnvelope struct {
		Data []VideoView `json:"data"`
	}
)

// VideoViewsAPI exposes the video view endpoints
type VideoViewsAPI interface {
	List(ctx context.Context, params *Params) ([]VideoView, error)
	Get(ctx context.Context, id VideoViewID) (VideoView, error)
}

// VideoViewsService reads individual playback sessions through the shared
// transport
type VideoViewsService struct {
	tx *transport.Client
}

var _ VideoViewsAPI = (*VideoViewsService)(nil)

// List returns a page of video views matching the params
func (s *VideoViewsService) List(ctx context.Context, params *Params) ([]VideoView, error) {
	var resp videoViewsEnvelope
	err := s.tx.Get(ctx, videoViewsPath+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Get returns every detail of a single video view
func (s *VideoViewsService) Get(ctx context.Context, id VideoViewID) (VideoView, error) {
	if id == "" {
		return VideoView{}, ErrMissingVideoViewID
	}

	var resp videoViewEnvelope
	err := s.tx.Get(ctx, videoViewsPath+"/"+string(id), &resp)
	if err != nil {
		return VideoView{}, err
	}

	return resp.Data, nil
}
