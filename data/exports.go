package data

import (
	"context"

	"github.com/cbsinteractive/mux-sdk-go/transport"
)

const exportsPath = basePath + "/exports"

type exportsEnvelope struct {
	Data []string `json:"data"`
}

// ExportsAPI exposes the raw export listing endpoint
type ExportsAPI interface {
	List(ctx context.Context) ([]string, error)
}

// ExportsService lists raw video view export files through the shared
// transport
type ExportsService struct {
	tx *transport.Client
}

var _ ExportsAPI = (*ExportsService)(nil)

// List returns the URLs of the available video view exports
func (s *ExportsService) List(ctx context.Context) ([]string, error) {
	var resp exportsEnvelope
	err := s.tx.Get(ctx, exportsPath, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, nil
}
