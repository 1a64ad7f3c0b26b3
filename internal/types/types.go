// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Session is observed from the identity provider, never owned by the gate.
type Session struct {
	UserID string
	Email  string
}

type Membership struct {
	SocietyID string `db:"society_id"`
	UserID    string `db:"user_id"`
	Role      string `db:"role"`
}

type Society struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Slug          string `db:"slug"`
	ViewerEnabled bool   `db:"viewer_enabled"`
}

type Season struct {
	SocietyID   string    `db:"society_id"`
	SeasonID    string    `db:"season_id"`
	Label       string    `db:"label"`
	Competition string    `db:"competition"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
}

// PendingOnboarding is a server-persisted society creation request that
// survives the magic link redirect, possibly across devices.
type PendingOnboarding struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	SocietyName string    `db:"society_name"`
	SocietySlug string    `db:"society_slug"`
	InviteCode  string    `db:"invite_code"`
	FirstSeason string    `db:"first_season"`
	CreatedAt   time.Time `db:"created_at"`
}

type InviteCode struct {
	Code     string `db:"code"`
	IsActive bool   `db:"is_active"`
	MaxUses  int64  `db:"max_uses"`
	Uses     int64  `db:"uses"`
}

// Role strings are open-ended backend data. Captain is the one value the
// gate recognises for feature gating; player is the default when a
// membership row carries none.
const (
	RoleCaptain = "captain"
	RolePlayer  = "player"
	RoleViewer  = "viewer"
)

// ActiveTenant is the resolved context handed to the main application.
// Session is nil for anonymous public viewers.
type ActiveTenant struct {
	SocietyID string
	Slug      string
	Name      string
	Role      string
	Session   *Session
}
