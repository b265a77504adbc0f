package config

import (
	"github.com/spf13/pflag"
)

const disableTrialFlag = "disable-trial"

// Flags is the command line layer of the configuration.
type Flags struct {
	StructuredConfig

	fs *pflag.FlagSet
}

// RegisterFlags binds all configuration flags to fs and returns the *Flags
// they populate once fs is parsed.
//
// Flags:
//
//	--page-url        address the client is served from
//	--env             environment override (local, pr_test, development, production)
//	--api-url         API server override for LOCAL and PR_TEST
//	--disable-trial   hide the trial period from billing information
//	--token           bearer token for authenticated requests
//	--request-timeout request timeout (e.g., "30s", "1m")
//	-c/--config       json file path with configs
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	cfg := &Flags{fs: fs}

	fs.StringVar(&cfg.Signals.PageURL, "page-url", "", "Page URL the client is served from")
	fs.StringVar(&cfg.Signals.Env, "env", "", "Environment override")
	fs.StringVar(&cfg.Signals.APIURL, "api-url", "", "API server override (LOCAL and PR_TEST only)")
	fs.BoolVar(&cfg.Signals.DisableTrial, disableTrialFlag, false, "Hide trial period from billing info")
	fs.StringVar(&cfg.Adapter.Token, "token", "", "Bearer token")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}

// explicitDisableTrial returns the --disable-trial value and whether it was
// set on the command line. A set value wins over earlier layers even when it
// is false.
func (f *Flags) explicitDisableTrial() (bool, bool) {
	if f == nil || f.fs == nil || !f.fs.Changed(disableTrialFlag) {
		return false, false
	}
	return f.Signals.DisableTrial, true
}
