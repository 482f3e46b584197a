package data

import (
	"context"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

const metricsPath = basePath + "/metrics"

// MetricID names a Data API metric, e.g. "video_startup_time"
type MetricID string

// BreakdownValue is one row of a metric grouped by a dimension
type BreakdownValue struct {
	Views          int64   `json:"views"`
	Value          float64 `json:"value"`
	TotalWatchTime int64   `json:"total_watch_time,omitempty"`
	NegativeImpact int64   `json:"negative_impact_score,omitempty"`
	Field          string  `json:"field,omitempty"`
}

// ComparisonValue is one metric compared across the overall dataset
type ComparisonValue struct {
	Name        string            `json:"name,omitempty"`
	Value       float64           `json:"value"`
	Type        string            `json:"type,omitempty"`
	Metric      string            `json:"metric,omitempty"`
	Items       []ComparisonValue `json:"items,omitempty"`
	Measurement string            `json:"measurement,omitempty"`
}

// Insight flags a dimension value with outsized impact on a metric
type Insight struct {
	TotalRowCount       int64   `json:"total_row_count,omitempty"`
	TotalWatchTime      int64   `json:"total_watch_time,omitempty"`
	TotalViews          int64   `json:"total_views,omitempty"`
	NegativeImpactScore float64 `json:"negative_impact_score,omitempty"`
	Metric              float64 `json:"metric,omitempty"`
	FilterValue         string  `json:"filter_value,omitempty"`
	FilterColumn        string  `json:"filter_column,omitempty"`
}

// OverallValues summarizes a metric across every matching view
type OverallValues struct {
	Value          float64 `json:"value"`
	TotalViews     int64   `json:"total_views,omitempty"`
	TotalWatchTime int64   `json:"total_watch_time,omitempty"`
	GlobalValue    float64 `json:"global_value,omitempty"`
}

// TimeseriesValue is a metric bucketed at one point in time
type TimeseriesValue struct {
	Date       string  `json:"date,omitempty"`
	Value      float64 `json:"value"`
	Views      int64   `json:"views,omitempty"`
	Concurrent int64   `json:"concurrent_viewers,omitempty"`
}

type (
	breakdownEnvelope struct {
		Data []BreakdownValue `json:"data"`
	}

	comparisonEnvelope struct {
		Data []ComparisonValue `json:"data"`
	}

	insightsEnvelope struct {
		Data []Insight `json:"data"`
	}

	overallEnvelope struct {
		Data OverallValues `json:"data"`
	}

	// timeseries rows arrive as [date, value, views] tuples rendered as
	// strings
	timeseriesEnvelope struct {
		Data [][]string `json:"data"`
	}
)

// MetricsAPI exposes the aggregated metrics endpoints
type MetricsAPI interface {
	Breakdown(ctx context.Context, metric MetricID, params *Params) ([]BreakdownValue, error)
	Comparison(ctx context.Context, params *Params) ([]ComparisonValue, error)
	Insights(ctx context.Context, metric MetricID, params *Params) ([]Insight, error)
	Overall(ctx context.Context, metric MetricID, params *Params) (OverallValues, error)
	Timeseries(ctx context.Context, metric MetricID, params *Params) ([][]string, error)
}

// MetricsService reads aggregated viewing metrics through the shared
// transport
type MetricsService struct {
	tx *transport.Client
}

var _ MetricsAPI = (*MetricsService)(nil)

// Breakdown lists the values of a metric grouped by the dimension in
// params.GroupBy
func (s *MetricsService) Breakdown(ctx context.Context, metric MetricID, params *Params) ([]BreakdownValue, error) {
	if metric == "" {
		return nil, ErrMissingMetricID
	}

	var resp breakdownEnvelope
	err := s.tx.Get(ctx, metricsPath+"/"+string(metric)+"/breakdown"+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Comparison lists all metric values compared against the overall dataset
func (s *MetricsService) Comparison(ctx context.Context, params *Params) ([]ComparisonValue, error) {
	var resp comparisonEnvelope
	err := s.tx.Get(ctx, metricsPath+"/comparison"+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Insights lists the dimension values with the largest impact on a metric
func (s *MetricsService) Insights(ctx context.Context, metric MetricID, params *Params) ([]Insight, error) {
	if metric == "" {
		return nil, ErrMissingMetricID
	}

	var resp insightsEnvelope
	err := s.tx.Get(ctx, metricsPath+"/"+string(metric)+"/insights"+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Overall summarizes a metric across every view matching the params
func (s *MetricsService) Overall(ctx context.Context, metric MetricID, params *Params) (OverallValues, error) {
	if metric == "" {
		return OverallValues{}, ErrMissingMetricID
	}

	var resp overallEnvelope
	err := s.tx.Get(ctx, metricsPath+"/"+string(metric)+"/overall"+query(params.values()), &resp)
	if err != nil {
		return OverallValues{}, err
	}

	return resp.Data, nil
}

// Timeseries buckets a metric over time
func (s *MetricsService) Timeseries(ctx context.Context, metric MetricID, params *Params) ([][]string, error) {
	if metric == "" {
		return nil, ErrMissingMetricID
	}

	var resp timeseriesEnvelope
	err := s.tx.Get(ctx, metricsPath+"/"+string(metric)+"/timeseries"+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}
