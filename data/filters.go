package data

import (
	"context"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

const filtersPath = basePath + "/filters"

// FilterID names a filterable dimension, e.g. "browser"
type FilterID string

// Filters groups the filterable dimensions by how often they are used
type Filters struct {
	Basic    []string `json:"basic"`
	Advanced []string `json:"advanced"`
}

// FilterValue is one observed value of a dimension and its view count
type FilterValue struct {
	Value      string `json:"value"`
	TotalCount int64  `json:"total_count"`
}

type (
	filtersEnvelope struct {
		Data Filters `json:"data"`
	}

	filterValuesEnvelope struct {
		Data []FilterValue `json:"data"`
	}
)

// FiltersAPI exposes the filter dimension endpoints
type FiltersAPI interface {
	List(ctx context.Context) (Filters, error)
	Get(ctx context.Context, id FilterID, params *Params) ([]FilterValue, error)
}

// FiltersService reads filterable dimensions through the shared transport
type FiltersService struct {
	tx *transport.Client
}

var _ FiltersAPI = (*FiltersService)(nil)

// List returns every dimension views can be filtered by
func (s *FiltersService) List(ctx context.Context) (Filters, error) {
	var resp filtersEnvelope
	err := s.tx.Get(ctx, filtersPath, &resp)
	if err != nil {
		return Filters{}, err
	}

	return resp.Data, nil
}

// Get returns the observed values of a single dimension
func (s *FiltersService) Get(ctx context.Context, id FilterID, params *Params) ([]FilterValue, error) {
	if id == "" {
		return nil, ErrMissingFilterID
	}

	var resp filterValuesEnvelope
	err := s.tx.Get(ctx, filtersPath+"/"+string(id)+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}
