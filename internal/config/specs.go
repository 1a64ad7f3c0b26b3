// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"fmt"
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the gate to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// DSN connects to the backend store with the anon/authenticated role,
	// the same surface the browser client talks to. Row level policies on
	// the backend decide what the gate may read.
	DSN string `envconfig:"dsn"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// IdentityPublicURL is the identity provider's public (self-service) endpoint.
	IdentityPublicURL string `envconfig:"identity_public_url"`

	// SiteURL is the deployed origin plus base path, used as the magic link
	// redirect target, e.g. https://example.github.io/golf/
	SiteURL  string `envconfig:"site_url" default:"http://localhost:8080/golf/"`
	BasePath string `envconfig:"base_path" default:"/golf/"`

	// OnboardingMode selects one of the two society creation workflows.
	OnboardingMode string `envconfig:"onboarding_mode" default:"direct"`

	// AdminSignInEnabled layers a sign-in affordance on top of public
	// society views.
	AdminSignInEnabled bool `envconfig:"admin_sign_in_enabled" default:"false"`

	SessionPollInterval time.Duration `envconfig:"session_poll_interval" default:"5s"`

	SelectionCachePath string `envconfig:"selection_cache_path"`
}

// Validate reports whether the required endpoint and key material are
// present. A failure here is surfaced as the gate's config-error screen, it
// must not abort the process.
func (s *EnvSpec) Validate() error {
	if s.DSN == "" {
		return fmt.Errorf("DSN is not set")
	}
	if s.IdentityPublicURL == "" {
		return fmt.Errorf("IDENTITY_PUBLIC_URL is not set")
	}
	switch s.OnboardingMode {
	case "direct", "deferred":
	default:
		return fmt.Errorf("invalid ONBOARDING_MODE %q, expected direct or deferred", s.OnboardingMode)
	}
	return nil
}
