// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the resolved [ClientConfig] can drive the dispatcher.
// An unknown environment override resolves to an empty record and therefore
// fails here with [ErrInvalidAdapterConfigs].
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return fmt.Errorf("%w: no API URL for environment %q", ErrInvalidAdapterConfigs, cfg.Environment.Env)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}
