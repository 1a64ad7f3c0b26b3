// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"

	"github.com/canonical/society-gate/internal/types"
)

type DirectoryInterface interface {
	ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.Membership, error)
	ListSocietiesByIDs(ctx context.Context, ids []string) ([]*types.Society, error)
	GetPublicSocietyBySlug(ctx context.Context, slug string) (*types.Society, error)

	GetLatestPendingOnboarding(ctx context.Context, email string) (*types.PendingOnboarding, error)
	DeletePendingOnboarding(ctx context.Context, id string) error

	GetInviteCode(ctx context.Context, code string) (*types.InviteCode, error)
	IncrementInviteCodeUses(ctx context.Context, code string) error
	CreateInviteCode(ctx context.Context, code *types.InviteCode) error

	CreateSociety(ctx context.Context, name, slug string) (*types.Society, error)
	AddMember(ctx context.Context, societyID, userID, role string) error
	CreateSeason(ctx context.Context, season *types.Season) error

	CreateSocietyWithCode(ctx context.Context, name, slug, inviteCode, firstSeason string) (string, error)
	RequestSocietyOnboarding(ctx context.Context, email, name, slug, inviteCode, firstSeason string) error
}
