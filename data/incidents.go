package data

import (
	"context"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

const incidentsPath = basePath + "/incidents"

// IncidentID uniquely identifies an alerting incident
type IncidentID string

// Incident is an anomaly detected in a monitored metric
type Incident struct {
	ID          IncidentID `json:"id"`
	Status      string     `json:"status,omitempty"`
	Severity    string     `json:"severity,omitempty"`
	Description string     `json:"description,omitempty"`

	Measurement       string  `json:"measurement,omitempty"`
	MeasuredValue     float64 `json:"measured_value,omitempty"`
	ThresholdValue    float64 `json:"threshold,omitempty"`
	ImpactDescription string  `json:"impact,omitempty"`
	AffectedViews     int64   `json:"affected_views,omitempty"`

	StartedAt  string `json:"started_at,omitempty"`
	ResolvedAt string `json:"resolved_at,omitempty"`

	Breakdowns []IncidentBreakdown `json:"breakdowns,omitempty"`
}

// IncidentBreakdown narrows an incident to a dimension value
type IncidentBreakdown struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
	ID    string `json:"id,omitempty"`
}

type (
	incidentEnvelope struct {
		Data Incident `json:"data"`
	}

	incidentsEnvelope struct {
		Data []Incident `json:"data"`
	}
)

// IncidentsAPI exposes the alerting incident endpoints
type IncidentsAPI interface {
	List(ctx context.Context, params *Params) ([]Incident, error)
	Get(ctx context.Context, id IncidentID) (Incident, error)
	Related(ctx context.Context, id IncidentID, params *Params) ([]Incident, error)
}

// IncidentsService reads alerting incidents through the shared transport
type IncidentsService struct {
	tx *transport.Client
}

var _ IncidentsAPI = (*IncidentsService)(nil)

// List returns a page of incidents matching the params
func (s *IncidentsService) List(ctx context.Context, params *Params) ([]Incident, error) {
	var resp incidentsEnvelope
	err := s.tx.Get(ctx, incidentsPath+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Get returns details about a single incident
func (s *IncidentsService) Get(ctx context.Context, id IncidentID) (Incident, error) {
	if id == "" {
		return Incident{}, ErrMissingIncidentID
	}

	var resp incidentEnvelope
	err := s.tx.Get(ctx, incidentsPath+"/"+string(id), &resp)
	if err != nil {
		return Incident{}, err
	}

	return resp.Data, nil
}

// Related lists incidents that share a root cause with the given one
func (s *IncidentsService) Related(ctx context.Context, id IncidentID, params *Params) ([]Incident, error) {
	if id == "" {
		return nil, ErrMissingIncidentID
	}

	var resp incidentsEnvelope
	err := s.tx.Get(ctx, incidentsPath+"/"+string(id)+"/related"+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}
