// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/society-gate/internal/directory"
	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/monitoring"
	"github.com/canonical/society-gate/internal/tracing"
	"github.com/canonical/society-gate/internal/types"
)

var _ Orchestrator = (*Direct)(nil)

// Direct creates societies immediately. The society and its first season
// are written atomically by the backend's create_society_with_code
// function; the captain membership and the invite usage increment follow
// as separate best-effort writes.
type Direct struct {
	directory DirectoryInterface
	validate  *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewDirect(dir DirectoryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Direct {
	d := new(Direct)

	d.directory = dir
	d.validate = validator.New()

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}

func (d *Direct) Mode() string {
	return ModeDirect
}

func (d *Direct) Begin(ctx context.Context, session *types.Session, form SocietyForm) (string, error) {
	ctx, span := d.tracer.Start(ctx, "onboarding.Direct.Begin")
	defer span.End()

	if session == nil {
		return "", fmt.Errorf("%w: sign in before creating a society", ErrValidation)
	}

	form, err := prepareForm(d.validate, form)
	if err != nil {
		return "", err
	}

	if err := checkInviteCode(ctx, d.directory, form.InviteCode); err != nil {
		return "", err
	}

	societyID, err := d.create(ctx, session.UserID, form.Name, form.Slug, form.InviteCode, form.FirstSeason)
	if err != nil {
		return "", err
	}

	d.logger.Infof("created society %s (%s) for %s", societyID, form.Slug, session.Email)
	return societyID, nil
}

// Finalize redeems a pending request left over from a deferred deployment.
// Normally direct mode never sees one, but a mode switch must not strand
// stored requests.
func (d *Direct) Finalize(ctx context.Context, session *types.Session) (string, error) {
	ctx, span := d.tracer.Start(ctx, "onboarding.Direct.Finalize")
	defer span.End()

	pending, err := d.directory.GetLatestPendingOnboarding(ctx, session.Email)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return "", ErrNothingPending
		}
		return "", fmt.Errorf("pending onboarding lookup failed: %w", err)
	}

	if err := checkInviteCode(ctx, d.directory, pending.InviteCode); err != nil {
		return "", err
	}

	societyID, err := d.create(ctx, session.UserID, pending.SocietyName, pending.SocietySlug, pending.InviteCode, pending.FirstSeason)
	if err != nil {
		return "", err
	}

	if err := d.directory.DeletePendingOnboarding(ctx, pending.ID); err != nil {
		d.logger.Warnf("failed to delete pending onboarding %s: %v", pending.ID, err)
	}

	return societyID, nil
}

func (d *Direct) create(ctx context.Context, userID, name, slug, inviteCode, firstSeasonLabel string) (string, error) {
	societyID, err := d.directory.CreateSocietyWithCode(ctx, name, slug, inviteCode, firstSeasonLabel)
	if err != nil {
		if errors.Is(err, directory.ErrDuplicateKey) {
			return "", ErrDuplicateSlug
		}
		return "", fmt.Errorf("society creation failed: %w", err)
	}

	err = d.directory.AddMember(ctx, societyID, userID, types.RoleCaptain)
	if err != nil && !errors.Is(err, directory.ErrDuplicateKey) {
		return "", &PartialWriteError{Completed: []string{"society"}, Err: err}
	}

	if err := d.directory.IncrementInviteCodeUses(ctx, inviteCode); err != nil {
		d.logger.Warnf("failed to increment uses for invite code: %v", err)
	}

	return societyID, nil
}
