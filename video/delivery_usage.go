package video

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

const deliveryUsagePath = basePath + "/delivery-usage"

// DeliveryReport summarizes seconds of video delivered for one asset over
// the requested window
type DeliveryReport struct {
	AssetID          string  `json:"asset_id,omitempty"`
	LiveStreamID     string  `json:"live_stream_id,omitempty"`
	PassthroughValue string  `json:"passthrough,omitempty"`
	AssetState       string  `json:"asset_state,omitempty"`
	AssetDuration    float64 `json:"asset_duration,omitempty"`
	DeliveredSeconds float64 `json:"delivered_seconds,omitempty"`
	CreatedAt        string  `json:"created_at,omitempty"`
	DeletedAt        string  `json:"deleted_at,omitempty"`
}

// ListDeliveryUsageParams narrows a delivery usage report
type ListDeliveryUsageParams struct {
	AssetID string

	// Timeframe is a pair of unix timestamps bounding the report window.
	Timeframe []int64

	Limit int
	Page  int
}

func (p *ListDeliveryUsageParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	if p.AssetID != "" {
		v.Set("asset_id", p.AssetID)
	}
	for _, ts := range p.Timeframe {
		v.Add("timeframe[]", strconv.FormatInt(ts, 10))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	return v
}

type deliveryReportsEnvelope struct {
	Data []DeliveryReport `json:"data"`
}

// DeliveryUsageAPI exposes the delivery usage endpoint
type DeliveryUsageAPI interface {
	List(ctx context.Context, params *ListDeliveryUsageParams) ([]DeliveryReport, error)
}

// DeliveryUsageService reads delivery usage reports through the shared
// transport
type DeliveryUsageService struct {
	tx *transport.Client
}

var _ DeliveryUsageAPI = (*DeliveryUsageService)(nil)

// List returns delivery usage reports for the requested window
func (s *DeliveryUsageService) List(ctx context.Context, params *ListDeliveryUsageParams) ([]DeliveryReport, error) {
	var resp deliveryReportsEnvelope
	err := s.tx.Get(ctx, deliveryUsagePath+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}
