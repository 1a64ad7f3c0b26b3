// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"

	"github.com/canonical/society-gate/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package resolver -destination ./mock_interfaces.go -source=./interfaces.go

// DirectoryInterface is the slice of the tenant directory the resolver
// depends on.
type DirectoryInterface interface {
	ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.Membership, error)
	ListSocietiesByIDs(ctx context.Context, ids []string) ([]*types.Society, error)
	GetPublicSocietyBySlug(ctx context.Context, slug string) (*types.Society, error)
	GetLatestPendingOnboarding(ctx context.Context, email string) (*types.PendingOnboarding, error)
}

// CacheInterface persists the last active society id. Both operations fail
// soft: a broken store reads as empty and drops writes.
type CacheInterface interface {
	Get() (string, bool)
	Set(id string) bool
}

// OrchestratorInterface is the onboarding capability the resolver invokes
// when a signed-in user with no memberships has a pending request.
type OrchestratorInterface interface {
	Finalize(ctx context.Context, session *types.Session) (string, error)
}
