// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"

	"github.com/canonical/society-gate/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package onboarding -destination ./mock_interfaces.go -source=./interfaces.go

// SocietyForm is the user-supplied creation request. Slug and FirstSeason
// are optional; defaults are derived from Name. Email is only consulted
// when no session is present.
type SocietyForm struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	InviteCode  string `json:"invite_code" validate:"required"`
	FirstSeason string `json:"first_season"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// Orchestrator is the onboarding capability. A deployment wires exactly one
// implementation at startup.
//
// Begin starts a creation request. In direct mode it requires a session and
// returns the new society id; in deferred mode the session may be nil and
// the id stays empty until Finalize runs after the magic link round trip.
type Orchestrator interface {
	Begin(ctx context.Context, session *types.Session, form SocietyForm) (string, error)
	Finalize(ctx context.Context, session *types.Session) (string, error)
	Mode() string
}

type DirectoryInterface interface {
	GetInviteCode(ctx context.Context, code string) (*types.InviteCode, error)
	IncrementInviteCodeUses(ctx context.Context, code string) error
	CreateSocietyWithCode(ctx context.Context, name, slug, inviteCode, firstSeason string) (string, error)
	RequestSocietyOnboarding(ctx context.Context, email, name, slug, inviteCode, firstSeason string) error
	GetLatestPendingOnboarding(ctx context.Context, email string) (*types.PendingOnboarding, error)
	DeletePendingOnboarding(ctx context.Context, id string) error
	CreateSociety(ctx context.Context, name, slug string) (*types.Society, error)
	AddMember(ctx context.Context, societyID, userID, role string) error
	CreateSeason(ctx context.Context, season *types.Season) error
	ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.Membership, error)
}

// IdentityInterface sends the magic link that carries the onboarding
// marker back into the app.
type IdentityInterface interface {
	SignInWithMagicLink(ctx context.Context, email, redirectTo string) error
}
