// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"net/url"
	"strings"
)

// OnboardParam is the query parameter that forces the onboarding screen
// regardless of path. Magic link redirect targets carry it so a returning
// signup lands back in the deferred onboarding flow.
const OnboardParam = "onboard"

type Route struct {
	Slug          string
	OnboardForced bool
}

// Resolver derives a tenant slug and the onboarding-forced flag from a URL
// path and query string. Pure and total: malformed input yields an empty
// route, never an error.
type Resolver struct {
	basePath string
}

func NewResolver(basePath string) *Resolver {
	if basePath == "" {
		basePath = "/"
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return &Resolver{basePath: basePath}
}

func (r *Resolver) Resolve(path, rawQuery string) Route {
	if values, err := url.ParseQuery(rawQuery); err == nil {
		if v := values.Get(OnboardParam); v != "" && v != "0" && v != "false" {
			return Route{OnboardForced: true}
		}
	}

	// "/golf" counts as the base itself.
	if path == strings.TrimSuffix(r.basePath, "/") {
		return Route{}
	}
	if !strings.HasPrefix(path, r.basePath) {
		return Route{}
	}

	rest := strings.TrimPrefix(path, r.basePath)
	for _, segment := range strings.Split(rest, "/") {
		if s := strings.TrimSpace(segment); s != "" {
			return Route{Slug: s}
		}
	}

	return Route{}
}
