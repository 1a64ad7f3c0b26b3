// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"context"

	"github.com/canonical/society-gate/internal/routing"
	"github.com/canonical/society-gate/internal/types"
	"github.com/canonical/society-gate/pkg/resolver"
)

//go:generate mockgen -build_flags=--mod=mod -package gate -destination ./mock_interfaces.go -source=./interfaces.go

type ResolverInterface interface {
	Snapshot() resolver.State
	SetRoute(route routing.Route)
	Pick(societyID string)
	SetPreferred(societyID string)
	Proceed()
	BeginSeasonCreation()
}

type IdentityInterface interface {
	CurrentSession(ctx context.Context) (*types.Session, error)
	SignInWithMagicLink(ctx context.Context, email, redirectTo string) error
	CompleteMagicLink(ctx context.Context, code string) error
	SignOut(ctx context.Context)
}

type SeasonInterface interface {
	Create(ctx context.Context, userID, societyID, label string) (*types.Season, error)
}
