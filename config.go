package mux

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-provided settings of the SDK
type Config struct {
	TokenID     string `envconfig:"MUX_TOKEN_ID"`
	TokenSecret string `envconfig:"MUX_TOKEN_SECRET"`
	BaseURL     string `envconfig:"MUX_BASE_URL"`

	// WebhookSecret verifies webhook deliveries, see the webhooks package.
	WebhookSecret string `envconfig:"MUX_WEBHOOK_SECRET"`

	// SigningKeyID and PrivateKey sign playback tokens, see the jwt
	// package.
	SigningKeyID string `envconfig:"MUX_SIGNING_KEY"`
	PrivateKey   string `envconfig:"MUX_PRIVATE_KEY"`
}

// LoadConfig reads the SDK settings from the environment
func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
