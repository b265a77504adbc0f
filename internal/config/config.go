// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level container for the raw runtime signals
// read at startup. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file, and is later
// resolved into a [ClientConfig].
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Signals holds the host environment signals that drive environment
	// selection and the per-environment records.
	Signals Signals `envPrefix:"APP_"`

	// Adapter holds settings for the outbound HTTP dispatcher.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Signals holds the host environment signals read once at startup.
type Signals struct {
	// PageURL is the address the client is served from. Its host selects
	// the environment and its origin is the LOCAL API fallback.
	// Env: APP_PAGE_URL
	PageURL string `env:"PAGE_URL"`

	// Env is the build-time environment override (e.g. "production").
	// It is uppercased before use and only consulted when the page host
	// does not force an environment.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// APIURL overrides the API server for the LOCAL and PR_TEST
	// environments.
	// Env: APP_API_URL
	APIURL string `env:"API_URL"`

	// DisableTrial hides the trial period from billing information.
	// Env: APP_DISABLE_TRIAL
	DisableTrial bool `env:"DISABLE_TRIAL"`
}

// Adapter holds configuration for the outbound HTTP dispatcher.
type Adapter struct {
	// Token is the bearer token attached to every request, if set.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the raw signals from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags (flags may be nil)
//  3. JSON file (path resolved from sources 1 and 2)
//
// The one exception is --disable-trial: when set on the command line it wins
// over the environment even when false.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
