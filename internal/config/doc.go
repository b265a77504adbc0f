// Package config provides configuration loading, merging, and environment
// resolution for the community client.
//
// Runtime signals (page URL, environment override, API URL override, adapter
// settings) are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The merged signals are then resolved into an immutable [Configuration] by
// [Resolve]: a BASE record overlaid with exactly one environment-specific
// record. The main entry point is [GetClientConfig].
package config
