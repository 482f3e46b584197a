package video

type (
	// LiveStreamID uniquely identifies a live stream
	LiveStreamID string

	// SimulcastTargetID uniquely identifies a simulcast target within a
	// live stream
	SimulcastTargetID string

	// LiveStreamStatus is the broadcast state of a live stream
	LiveStreamStatus string

	// LatencyMode selects the latency/quality tradeoff for a stream
	LatencyMode string
)

const (
	LiveStreamStatusIdle         LiveStreamStatus = "idle"
	LiveStreamStatusActive       LiveStreamStatus = "active"
	LiveStreamStatusDisconnected LiveStreamStatus = "disconnected"
	LiveStreamStatusDisabled     LiveStreamStatus = "disabled"
)

const (
	LatencyModeStandard LatencyMode = "standard"
	LatencyModeReduced  LatencyMode = "reduced"
	LatencyModeLow      LatencyMode = "low"
)

// PlaybackPolicy controls whether playback requires a signed token
type PlaybackPolicy string

const (
	PlaybackPolicyPublic PlaybackPolicy = "public"
	PlaybackPolicySigned PlaybackPolicy = "signed"
)

// PlaybackID grants playback of its parent resource under a policy
type PlaybackID struct {
	ID     string         `json:"id"`
	Policy PlaybackPolicy `json:"policy"`
}

// LiveStream is a single RTMP ingest endpoint and its settings
type LiveStream struct {
	ID               LiveStreamID      `json:"id"`
	CreatedAt        string            `json:"created_at,omitempty"`
	StreamKey        string            `json:"stream_key,omitempty"`
	Status           LiveStreamStatus  `json:"status,omitempty"`
	ActiveAssetID    string            `json:"active_asset_id,omitempty"`
	RecentAssetIDs   []string          `json:"recent_asset_ids,omitempty"`
	PlaybackIDs      []PlaybackID      `json:"playback_ids,omitempty"`
	SimulcastTargets []SimulcastTarget `json:"simulcast_targets,omitempty"`
	NewAssetSettings *NewAssetSettings `json:"new_asset_settings,omitempty"`

	EmbeddedSubtitles []EmbeddedSubtitle `json:"embedded_subtitles,omitempty"`

	LatencyMode     LatencyMode `json:"latency_mode,omitempty"`
	ReconnectWindow float64     `json:"reconnect_window,omitempty"`
	Passthrough     string      `json:"passthrough,omitempty"`
	AudioOnly       bool        `json:"audio_only,omitempty"`
	Test            bool        `json:"test,omitempty"`
}

// SimulcastTarget restreams a live stream to a third-party RTMP destination
type SimulcastTarget struct {
	ID          SimulcastTargetID `json:"id"`
	URL         string            `json:"url"`
	StreamKey   string            `json:"stream_key,omitempty"`
	Passthrough string            `json:"passthrough,omitempty"`
	Status      string            `json:"status,omitempty"`
}

// EmbeddedSubtitle configures capture of a CEA-608 caption channel
type EmbeddedSubtitle struct {
	Name            string `json:"name,omitempty"`
	Passthrough     string `json:"passthrough,omitempty"`
	LanguageCode    string `json:"language_code,omitempty"`
	LanguageChannel string `json:"language_channel,omitempty"`
}

// NewAssetSettings applies to assets recorded from a live stream
type NewAssetSettings struct {
	PlaybackPolicy []PlaybackPolicy `json:"playback_policy,omitempty"`
	Passthrough    string           `json:"passthrough,omitempty"`
	MP4Support     string           `json:"mp4_support,omitempty"`
}

type (
	// CreateLiveStreamRequest and the related structures describe the
	// requests of the live stream management endpoints.
	CreateLiveStreamRequest struct {
		PlaybackPolicy    []PlaybackPolicy   `json:"playback_policy,omitempty"`
		NewAssetSettings  *NewAssetSettings  `json:"new_asset_settings,omitempty"`
		EmbeddedSubtitles []EmbeddedSubtitle `json:"embedded_subtitles,omitempty"`
		LatencyMode       LatencyMode        `json:"latency_mode,omitempty"`
		ReconnectWindow   float64            `json:"reconnect_window,omitempty"`
		Passthrough       string             `json:"passthrough,omitempty"`
		AudioOnly         bool               `json:"audio_only,omitempty"`
		Test              bool               `json:"test,omitempty"`
	}

	UpdateLiveStreamRequest struct {
		NewAssetSettings *NewAssetSettings `json:"new_asset_settings,omitempty"`
		LatencyMode      LatencyMode       `json:"latency_mode,omitempty"`
		ReconnectWindow  float64           `json:"reconnect_window,omitempty"`
		Passthrough      string            `json:"passthrough,omitempty"`
	}

	CreatePlaybackIDRequest struct {
		Policy PlaybackPolicy `json:"policy"`
	}

	CreateSimulcastTargetRequest struct {
		URL         string `json:"url"`
		StreamKey   string `json:"stream_key,omitempty"`
		Passthrough string `json:"passthrough,omitempty"`
	}

	UpdateEmbeddedSubtitlesRequest struct {
		EmbeddedSubtitles []EmbeddedSubtitle `json:"embedded_subtitles"`
	}
)

type (
	liveStreamEnvelope struct {
		Data LiveStream `json:"data"`
	}

	liveStreamsEnvelope struct {
		Data []LiveStream `json:"data"`
	}

	playbackIDEnvelope struct {
		Data PlaybackID `json:"data"`
	}

	simulcastTargetEnvelope struct {
		Data SimulcastTarget `json:"data"`
	}
)
