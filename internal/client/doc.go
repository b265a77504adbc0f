// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the community-client command line application.
//
// It resolves the environment configuration, wires the HTTP dispatcher and
// the API client facade, and exposes every facade operation as a cobra
// subcommand that prints the response payload as JSON.
package client
