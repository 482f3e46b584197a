package data

import (
	"context"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

const errorsPath = basePath + "/errors"

// ErrorDetail aggregates one class of playback error across views
type ErrorDetail struct {
	ID          int64   `json:"id"`
	Code        int64   `json:"code,omitempty"`
	Message     string  `json:"message,omitempty"`
	Description string  `json:"description,omitempty"`
	Count       int64   `json:"count,omitempty"`
	Percentage  float64 `json:"percentage,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	LastSeen    string  `json:"last_seen,omitempty"`
}

type errorsEnvelope struct {
	Data []ErrorDetail `json:"data"`
}

// ErrorsAPI exposes the aggregated playback error endpoint
type ErrorsAPI interface {
	List(ctx context.Context, params *Params) ([]ErrorDetail, error)
}

// ErrorsService reads aggregated playback errors through the shared
// transport
type ErrorsService struct {
	tx *transport.Client
}

var _ ErrorsAPI = (*ErrorsService)(nil)

// List returns playback errors aggregated over the params window
func (s *ErrorsService) List(ctx context.Context, params *Params) ([]ErrorDetail, error) {
	var resp errorsEnvelope
	err := s.tx.Get(ctx, errorsPath+query(params.values()), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}
