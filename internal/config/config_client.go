package config

import (
	"fmt"
	"time"
)

const (
	defaultPageURL        = "http://localhost:8080"
	defaultRequestTimeout = 30 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base URL, taken from [Configuration.APIURL].
	HTTPAddress string
	// Token is the bearer token attached to outbound requests, if any.
	Token string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Environment is the resolved, immutable environment configuration.
	Environment Configuration
	// Adapter contains the dispatcher address, credentials and timeouts.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration.
//
// It loads the raw signals via [GetStructuredConfig] (env, then flags, then
// the optional JSON file), resolves the environment, and validates the
// resulting [ClientConfig].
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig applies defaults to cfg, resolves the environment, and
// maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	signals := cfg.Signals
	if signals.PageURL == "" {
		signals.PageURL = defaultPageURL
	}

	timeout := cfg.Adapter.RequestTimeout
	if timeout == 0 {
		timeout = defaultRequestTimeout
	}

	environment := Resolve(signals)
	clientCfg := &ClientConfig{
		Environment: environment,
		Adapter: ClientAdapter{
			HTTPAddress:    environment.APIURL,
			Token:          cfg.Adapter.Token,
			RequestTimeout: timeout,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
