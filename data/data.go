// Package data covers the Mux Data API: viewing metrics, individual video
// views, playback errors, exports, filters, and incidents under /data/v1.
package data

import (
	"net/url"
	"strconv"

	"github.com/cbsinteractive/mux-sdk-go/transport"
	"github.com/pkg/errors"
)

const basePath = "/data/v1"

var (
	// ErrMissingMetricID is returned when a metrics operation is called
	// without a metric ID
	ErrMissingMetricID = errors.New("a metric ID is required")

	// ErrMissingVideoViewID is returned when a video view operation is
	// called without a video view ID
	ErrMissingVideoViewID = errors.New("a video view ID is required")

	// ErrMissingFilterID is returned when a filter operation is called
	// without a filter ID
	ErrMissingFilterID = errors.New("a filter ID is required")

	// ErrMissingIncidentID is returned when an incident operation is
	// called without an incident ID
	ErrMissingIncidentID = errors.New("an incident ID is required")
)

// Service groups the Data API resources behind a shared transport
type Service struct {
	Metrics    *MetricsService
	VideoViews *VideoViewsService
	Errors     *ErrorsService
	Exports    *ExportsService
	Filters    *FiltersService
	Incidents  *IncidentsService
}

// New wires every Data API resource to the given transport
func New(tx *transport.Client) *Service {
	return &Service{
		Metrics:    &MetricsService{tx: tx},
		VideoViews: &VideoViewsService{tx: tx},
		Errors:     &ErrorsService{tx: tx},
		Exports:    &ExportsService{tx: tx},
		Filters:    &FiltersService{tx: tx},
		Incidents:  &IncidentsService{tx: tx},
	}
}

// Params narrows Data API queries. Zero values are omitted from the query
// string; repeated filter and timeframe values use the API's array syntax.
type Params struct {
	Limit int
	Page  int

	// Filters holds "dimension:value" pairs, e.g. "operating_system:linux"
	// or "!country:US" for negation.
	Filters []string

	// Timeframe holds up to two values: unix timestamps or relative
	// durations such as "24:hours".
	Timeframe []string

	OrderBy        string
	OrderDirection string
	GroupBy        string
	Measurement    string
}

func (p *Params) values() url.Values {
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
	for _, f := range p.Filters {
		v.Add("filters[]", f)
	}
	for _, tf := range p.Timeframe {
		v.Add("timeframe[]", tf)
	}
	if p.OrderBy != "" {
		v.Set("order_by", p.OrderBy)
	}
	if p.OrderDirection != "" {
		v.Set("order_direction", p.OrderDirection)
	}
	if p.GroupBy != "" {
		v.Set("group_by", p.GroupBy)
	}
	if p.Measurement != "" {
		v.Set("measurement", p.Measurement)
	}
	return v
}

func query(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
