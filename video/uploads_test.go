package video

import (
	"context"
	"net/http"
	"testing"
)

func TestUploadAndKeyRequests(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		title      string
		call       func(s *Service) error
		body       string
		wantMethod string
		wantPath   string
	}{
		{
			title: "create upload",
			call: func(s *Service) error {
				_, err := s.Uploads.Create(ctx, &CreateUploadRequest{CORSOrigin: "*"})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/video/v1/uploads",
		},
		{
			title: "get upload",
			call: func(s *Service) error {
				_, err := s.Uploads.Get(ctx, "u1")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/video/v1/uploads/u1",
		},
		{
			title: "list uploads",
			call: func(s *Service) error {
				_, err := s.Uploads.List(ctx, nil)
				return err
			},
			body:       `{"data": []}`,
			wantMethod: http.MethodGet,
			wantPath:   "/video/v1/uploads",
		},
		{
			title: "cancel upload",
			call: func(s *Service) error {
				_, err := s.Uploads.Cancel(ctx, "u1")
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/video/v1/uploads/u1/cancel",
		},
		{
			title: "create signing key",
			call: func(s *Service) error {
				_, err := s.SigningKeys.Create(ctx)
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/video/v1/signing-keys",
		},
		{
			title: "get signing key",
			call: func(s *Service) error {
				_, err := s.SigningKeys.Get(ctx, "k1")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/video/v1/signing-keys/k1",
		},
		{
			title:      "del signing key",
			call:       func(s *Service) error { return s.SigningKeys.Del(ctx, "k1") },
			wantMethod: http.MethodDelete,
			wantPath:   "/video/v1/signing-keys/k1",
		},
		{
			title: "list delivery usage",
			call: func(s *Service) error {
				_, err := s.DeliveryUsage.List(ctx, nil)
				return err
			},
			body:       `{"data": []}`,
			wantMethod: http.MethodGet,
			wantPath:   "/video/v1/delivery-usage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			body := tt.body
			if body == "" {
				body = `{"data": {}}`
			}
			svc, rec, done := newTestService(t, body)
			defer done()

			if err := tt.call(svc); err != nil {
				t.Fatal(err)
			}

			rec.assertOne(t, tt.wantMethod, tt.wantPath)
		})
	}
}

func TestUploadValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		title   string
		call    func(s *Service) error
		wantErr error
	}{
		{
			title: "create without params",
			call: func(s *Service) error {
				_, err := s.Uploads.Create(ctx, nil)
				return err
			},
			wantErr: ErrMissingParams,
		},
		{
			title: "get without id",
			call: func(s *Service) error {
				_, err := s.Uploads.Get(ctx, "")
				return err
			},
			wantErr: ErrMissingUploadID,
		},
		{
			title: "cancel without id",
			call: func(s *Service) error {
				_, err := s.Uploads.Cancel(ctx, "")
				return err
			},
			wantErr: ErrMissingUploadID,
		},
		{
			title: "signing key without id",
			call: func(s *Service) error {
				_, err := s.SigningKeys.Get(ctx, "")
				return err
			},
			wantErr: ErrMissingSigningKeyID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			svc, rec, done := newTestService(t, `{"data": {}}`)
			defer done()

			err := tt.call(svc)
			if err != tt.wantErr {
				t.Errorf("wrong error: got %v, want %v", err, tt.wantErr)
			}

			rec.assertNone(t)
		})
	}
}

func TestDeliveryUsageQuery(t *testing.T) {
	svc, rec, done := newTestService(t, `{"data": []}`)
	defer done()

	_, err := svc.DeliveryUsage.List(context.Background(), &ListDeliveryUsageParams{
		AssetID:   "a1",
		Timeframe: []int64{1600000000, 1600086400},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(rec.requests) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(rec.requests))
	}
	want := "asset_id=a1&timeframe%5B%5D=1600000000&timeframe%5B%5D=1600086400"
	if got := rec.requests[0].Query; got != want {
		t.Errorf("wrong query: got %q, want %q", got, want)
	}
}
