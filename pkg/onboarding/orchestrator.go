// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package onboarding creates societies. Two strategies implement the same
// Orchestrator capability: direct creation behind an invite code, and a
// deferred store-then-redeem flow that survives the magic link round trip.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/society-gate/internal/directory"
	"github.com/canonical/society-gate/internal/types"
)

const (
	ModeDirect   = "direct"
	ModeDeferred = "deferred"

	defaultSeasonLabel = "Season 1"
	seasonLength       = 365 * 24 * time.Hour
)

// prepareForm validates the request and fills in derived defaults. The
// returned form always carries a non-empty slug and season label.
func prepareForm(validate *validator.Validate, form SocietyForm) (SocietyForm, error) {
	if err := validate.Struct(form); err != nil {
		return form, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if form.Slug == "" {
		form.Slug = Slugify(form.Name)
	}
	if form.Slug == "" {
		return form, fmt.Errorf("%w: society name %q yields an empty slug", ErrValidation, form.Name)
	}
	if form.FirstSeason == "" {
		form.FirstSeason = defaultSeasonLabel
	}

	return form, nil
}

// checkInviteCode enforces the invite policy: the code must exist and be
// active, and a capped code must have uses left. max_uses of zero means
// unlimited.
func checkInviteCode(ctx context.Context, dir DirectoryInterface, code string) error {
	invite, err := dir.GetInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return ErrInvalidInviteCode
		}
		return fmt.Errorf("invite code lookup failed: %w", err)
	}

	if !invite.IsActive {
		return ErrInvalidInviteCode
	}
	if invite.MaxUses > 0 && invite.Uses >= invite.MaxUses {
		return ErrInviteExhausted
	}

	return nil
}

// firstSeason builds the season row for a fresh society: id from the
// slugified label, a year-long window starting today, and the default
// season competition.
func firstSeason(societyID, label string) *types.Season {
	if label == "" {
		label = defaultSeasonLabel
	}

	seasonID := Slugify(label)
	if seasonID == "" {
		seasonID = "season-1"
	}

	start := time.Now().Truncate(24 * time.Hour)
	return &types.Season{
		SocietyID:   societyID,
		SeasonID:    seasonID,
		Label:       label,
		Competition: "season",
		StartDate:   start,
		EndDate:     start.Add(seasonLength),
	}
}
