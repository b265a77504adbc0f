// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"

	"dario.cat/mergo"
)

// Public reCAPTCHA site keys and API hosts, one set per deployed environment.
const (
	testSiteKey        = "6LcgxGoaAAAAACb4-Sdm1xj5UWQiuyYAieFZUhL4"
	developmentSiteKey = "6Lc1hfsUAAAAAGFReCJUUva4LHF30XG5pIoJr2Nl"
	productionSiteKey  = "6LcuEM0ZAAAAABafZkUPUBAAcj5BNw2rd3fuNMC2"

	prTestAPIURL      = "https://api.morphic.ste-test.net"
	developmentAPIURL = "https://api.morphic.dev"
	productionAPIURL  = "https://api.morphic.org"
)

// Configuration is the resolved, immutable view of the deployment
// environment. It is produced once by [Resolve] and passed by value to the
// components that need it.
type Configuration struct {
	// APIURL is the base endpoint of the API server.
	APIURL string `json:"API_URL" yaml:"API_URL"`
	// RecaptchaSiteKey is the reCAPTCHA site key; empty when reCAPTCHA is
	// unavailable (e.g. a LOCAL page served from a bare IP address).
	RecaptchaSiteKey string `json:"RECAPTCHA_SITEKEY" yaml:"RECAPTCHA_SITEKEY"`
	// DisableFavicons disables favicons in buttons.
	DisableFavicons bool `json:"DISABLE_FAVICONS" yaml:"DISABLE_FAVICONS"`
	// Env is the selected environment.
	Env Environment `json:"ENV" yaml:"ENV"`
	// Production is true only in the production environment.
	Production bool `json:"PRODUCTION" yaml:"PRODUCTION"`
	// DisableTrial hides trial_end_days from billing information.
	DisableTrial bool `json:"DISABLE_TRIAL" yaml:"DISABLE_TRIAL"`
}

// Resolve selects the environment from signals and returns the BASE record
// overlaid with that environment's record. Fields set by the environment
// record shadow BASE fields of the same name. Resolution never fails: every
// combination of signals leads to a usable default.
func Resolve(signals Signals) Configuration {
	host, origin := splitPageURL(signals.PageURL)
	env := DetectEnvironment(host, signals.Env)

	cfg := baseRecord(env, signals)
	record := environmentRecord(env, signals, host, origin)

	// Both sides share one struct type, so Merge cannot fail on kinds.
	if err := mergo.Merge(&cfg, record, mergo.WithOverride); err != nil {
		return baseRecord(env, signals)
	}

	return cfg
}

func baseRecord(env Environment, signals Signals) Configuration {
	return Configuration{
		DisableFavicons: false,
		Env:             env,
		Production:      false,
		DisableTrial:    signals.DisableTrial,
	}
}

func environmentRecord(env Environment, signals Signals, host, origin string) Configuration {
	switch env {
	case Local:
		siteKey := testSiteKey
		if bareIPHostPattern.MatchString(host) {
			siteKey = ""
		}
		return Configuration{
			APIURL:           firstNonEmpty(signals.APIURL, origin),
			RecaptchaSiteKey: siteKey,
		}
	case PRTest:
		return Configuration{
			APIURL:           firstNonEmpty(signals.APIURL, prTestAPIURL),
			RecaptchaSiteKey: testSiteKey,
		}
	case Development:
		return Configuration{
			APIURL:           developmentAPIURL,
			RecaptchaSiteKey: developmentSiteKey,
		}
	case Production:
		return Configuration{
			APIURL:           productionAPIURL,
			RecaptchaSiteKey: productionSiteKey,
			Production:       true,
		}
	default:
		return Configuration{}
	}
}

// splitPageURL returns the host (with port) and origin of raw. A raw value
// without a scheme is treated as http. Unparseable input yields empty
// strings.
func splitPageURL(raw string) (host, origin string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", ""
	}

	return u.Host, u.Scheme + "://" + u.Host
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
