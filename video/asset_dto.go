package video

type (
	// AssetID uniquely identifies an asset
	AssetID string

	// TrackID uniquely identifies a track within an asset
	TrackID string

	// AssetStatus is the ingest state of an asset
	AssetStatus string
)

const (
	AssetStatusPreparing AssetStatus = "preparing"
	AssetStatusReady     AssetStatus = "ready"
	AssetStatusErrored   AssetStatus = "errored"
)

// MP4Support values accepted by the mp4-support endpoint
const (
	MP4SupportStandard = "standard"
	MP4SupportNone     = "none"
)

// MasterAccess values accepted by the master-access endpoint
const (
	MasterAccessTemporary = "temporary"
	MasterAccessNone      = "none"
)

// Asset is a stored piece of video content and its derived playback state
type Asset struct {
	ID                  AssetID     `json:"id"`
	CreatedAt           string      `json:"created_at,omitempty"`
	Status              AssetStatus `json:"status,omitempty"`
	Duration            float64     `json:"duration,omitempty"`
	AspectRatio         string      `json:"aspect_ratio,omitempty"`
	MaxStoredResolution string      `json:"max_stored_resolution,omitempty"`
	MaxStoredFrameRate  float64     `json:"max_stored_frame_rate,omitempty"`

	PlaybackIDs []PlaybackID `json:"playback_ids,omitempty"`
	Tracks      []Track      `json:"tracks,omitempty"`

	MP4Support   string  `json:"mp4_support,omitempty"`
	MasterAccess string  `json:"master_access,omitempty"`
	Master       *Master `json:"master,omitempty"`

	StaticRenditions *StaticRenditions `json:"static_renditions,omitempty"`

	IsLive        bool   `json:"is_live,omitempty"`
	LiveStreamID  string `json:"live_stream_id,omitempty"`
	SourceAssetID string `json:"source_asset_id,omitempty"`

	Passthrough string       `json:"passthrough,omitempty"`
	Errors      *AssetErrors `json:"errors,omitempty"`
	Test        bool         `json:"test,omitempty"`
}

// Track is a single audio, video, or text stream within an asset
type Track struct {
	ID   TrackID `json:"id"`
	Type string  `json:"type"`

	Duration     float64 `json:"duration,omitempty"`
	MaxWidth     int64   `json:"max_width,omitempty"`
	MaxHeight    int64   `json:"max_height,omitempty"`
	MaxFrameRate float64 `json:"max_frame_rate,omitempty"`
	MaxChannels  int64   `json:"max_channels,omitempty"`

	TextType       string `json:"text_type,omitempty"`
	TextSource     string `json:"text_source,omitempty"`
	LanguageCode   string `json:"language_code,omitempty"`
	Name           string `json:"name,omitempty"`
	ClosedCaptions bool   `json:"closed_captions,omitempty"`
	Passthrough    string `json:"passthrough,omitempty"`
	Status         string `json:"status,omitempty"`
}

// Master describes temporary access to the asset's master file
type Master struct {
	Status string `json:"status,omitempty"`
	URL    string `json:"url,omitempty"`
}

// StaticRenditions lists downloadable MP4 files prepared for an asset
type StaticRenditions struct {
	Status string            `json:"status,omitempty"`
	Files  []StaticRendition `json:"files,omitempty"`
}

type StaticRendition struct {
	Name     string `json:"name,omitempty"`
	Ext      string `json:"ext,omitempty"`
	Width    int64  `json:"width,omitempty"`
	Height   int64  `json:"height,omitempty"`
	Bitrate  int64  `json:"bitrate,omitempty"`
	Filesize string `json:"filesize,omitempty"`
}

// AssetErrors explains why an asset ingest failed
type AssetErrors struct {
	Type     string   `json:"type,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

// InputInfo describes one input file used to create an asset
type InputInfo struct {
	Settings map[string]interface{} `json:"settings,omitempty"`
	File     *InputFile             `json:"file,omitempty"`
}

type InputFile struct {
	ContainerFormat string       `json:"container_format,omitempty"`
	Tracks          []InputTrack `json:"tracks,omitempty"`
}

type InputTrack struct {
	Type       string  `json:"type,omitempty"`
	Duration   float64 `json:"duration,omitempty"`
	Encoding   string  `json:"encoding,omitempty"`
	Width      int64   `json:"width,omitempty"`
	Height     int64   `json:"height,omitempty"`
	FrameRate  float64 `json:"frame_rate,omitempty"`
	SampleRate int64   `json:"sample_rate,omitempty"`
	Channels   int64   `json:"channels,omitempty"`
}

type (
	// CreateAssetRequest and the related structures describe the requests
	// of the asset management endpoints.
	CreateAssetRequest struct {
		Input          []AssetInput     `json:"input,omitempty"`
		PlaybackPolicy []PlaybackPolicy `json:"playback_policy,omitempty"`
		MP4Support     string           `json:"mp4_support,omitempty"`
		Passthrough    string           `json:"passthrough,omitempty"`
		NormalizeAudio bool             `json:"normalize_audio,omitempty"`
		PerTitleEncode bool             `json:"per_title_encode,omitempty"`
		Test           bool             `json:"test,omitempty"`
	}

	// AssetInput points at a source file and optional overlay/text settings
	AssetInput struct {
		URL            string  `json:"url,omitempty"`
		StartTime      float64 `json:"start_time,omitempty"`
		EndTime        float64 `json:"end_time,omitempty"`
		Type           string  `json:"type,omitempty"`
		TextType       string  `json:"text_type,omitempty"`
		LanguageCode   string  `json:"language_code,omitempty"`
		Name           string  `json:"name,omitempty"`
		ClosedCaptions bool    `json:"closed_captions,omitempty"`
		Passthrough    string  `json:"passthrough,omitempty"`
	}

	UpdateAssetRequest struct {
		Passthrough string `json:"passthrough,omitempty"`
	}

	CreateTrackRequest struct {
		URL            string `json:"url"`
		Type           string `json:"type"`
		TextType       string `json:"text_type,omitempty"`
		LanguageCode   string `json:"language_code,omitempty"`
		Name           string `json:"name,omitempty"`
		ClosedCaptions bool   `json:"closed_captions,omitempty"`
		Passthrough    string `json:"passthrough,omitempty"`
	}

	UpdateMP4SupportRequest struct {
		MP4Support string `json:"mp4_support"`
	}

	UpdateMasterAccessRequest struct {
		MasterAccess string `json:"master_access"`
	}
)

type (
	assetEnvelope struct {
		Data Asset `json:"data"`
	}

	assetsEnvelope struct {
		Data []Asset `json:"data"`
	}

	trackEnvelope struct {
		Data Track `json:"data"`
	}

	inputInfoEnvelope struct {
		Data []InputInfo `json:"data"`
	}
)
