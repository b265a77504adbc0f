// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"regexp"
	"strings"
)

// Environment is the named deployment context that controls the API
// endpoint and the reCAPTCHA site key.
type Environment string

const (
	// Local is the developer machine; the API is expected on the page origin
	// unless overridden.
	Local Environment = "LOCAL"
	// PRTest is an ephemeral pull-request test site.
	PRTest Environment = "PR_TEST"
	// Development is the live development site.
	Development Environment = "DEVELOPMENT"
	// Production is the public site.
	Production Environment = "PRODUCTION"
)

// developmentHost always talks to the development API, regardless of the
// build-time override.
const developmentHost = "communitynew.morphic.dev"

var (
	prTestHostPattern = regexp.MustCompile(`^pr-\d+\.morphic\.ste-test\.net$`)
	bareIPHostPattern = regexp.MustCompile(`^[0-9.:]+$`)
)

// DetectEnvironment derives the environment from the page host and the
// build-time override. Hosts that pin an environment win over the override;
// an empty override falls back to [Local]. Unknown override values are
// returned uppercased and select no environment record.
func DetectEnvironment(host, override string) Environment {
	switch {
	case host == developmentHost:
		return Development
	case prTestHostPattern.MatchString(host):
		return PRTest
	case override != "":
		return Environment(strings.ToUpper(override))
	default:
		return Local
	}
}

func (e Environment) String() string {
	return string(e)
}
