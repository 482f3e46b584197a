// Package mux is a client for the Mux Video and Data REST APIs. A Client
// groups the per-resource services behind a single authenticated HTTP
// transport:
//
//	client := mux.New(tokenID, tokenSecret)
//	stream, err := client.Video.LiveStreams.Create(ctx, &video.CreateLiveStreamRequest{
//		PlaybackPolicy: []video.PlaybackPolicy{video.PlaybackPolicyPublic},
//	})
package mux

import (
	"net/http"
	"net/url"

	"github.com/cbsinteractive/mux-sdk-go/data"
	"github.com/cbsinteractive/mux-sdk-go/exceptions"
	"github.com/cbsinteractive/mux-sdk-go/transport"
	"github.com/cbsinteractive/mux-sdk-go/video"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Client exposes the Mux API surface, split by API
type Client struct {
	Video *video.Service
	Data  *data.Service

	tx *transport.Client
}

// Option customizes the underlying transport
type Option func(*transport.Client)

// WithBaseURL points the client at a different API host
func WithBaseURL(u *url.URL) Option {
	return func(tx *transport.Client) { tx.Base = u }
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(tx *transport.Client) { tx.Client = h }
}

// WithLogger attaches a logger to the transport
func WithLogger(l *logrus.Logger) Option {
	return func(tx *transport.Client) { tx.Logger = l }
}

// WithReporter attaches an exception reporter to the transport
func WithReporter(r exceptions.Reporter) Option {
	return func(tx *transport.Client) { tx.Reporter = r }
}

// WithMaxRetries allows throttled and 5xx responses to be retried up to n
// times
func WithMaxRetries(n int) Option {
	return func(tx *transport.Client) { tx.MaxRetries = n }
}

// WithRateLimit throttles outbound requests client-side
func WithRateLimit(rps float64, burst int) Option {
	return func(tx *transport.Client) { tx.Limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// New returns a Client authenticating with the given access token pair
func New(tokenID, tokenSecret string, opts ...Option) *Client {
	tx := &transport.Client{TokenID: tokenID, TokenSecret: tokenSecret}
	for _, opt := range opts {
		opt(tx)
	}

	return &Client{
		Video: video.New(tx),
		Data:  data.New(tx),
		tx:    tx,
	}
}

// NewFromEnv builds a Client from the MUX_* environment variables
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if cfg.TokenID == "" || cfg.TokenSecret == "" {
		return nil, errors.New("MUX_TOKEN_ID and MUX_TOKEN_SECRET must be set")
	}

	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, errors.Wrap(err, "parsing MUX_BASE_URL")
		}
		opts = append([]Option{WithBaseURL(base)}, opts...)
	}

	return New(cfg.TokenID, cfg.TokenSecret, opts...), nil
}
