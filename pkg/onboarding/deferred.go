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

var _ Orchestrator = (*Deferred)(nil)

// Deferred stores the creation request server side and sends a magic link
// whose return target carries the onboarding marker. The request is
// redeemed by Finalize after sign-in, which may happen on a different
// device than the one that initiated it.
type Deferred struct {
	directory DirectoryInterface
	identity  IdentityInterface
	// redirectTo is the magic link return target, already carrying the
	// onboarding marker in its query string.
	redirectTo string
	validate   *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewDeferred(dir DirectoryInterface, identity IdentityInterface, redirectTo string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Deferred {
	d := new(Deferred)

	d.directory = dir
	d.identity = identity
	d.redirectTo = redirectTo
	d.validate = validator.New()

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}

func (d *Deferred) Mode() string {
	return ModeDeferred
}

// Begin persists the request and sends the magic link. It returns an empty
// society id; creation happens in Finalize once the user is signed in. The
// requester is usually anonymous, so the email comes from the form unless a
// session is present.
func (d *Deferred) Begin(ctx context.Context, session *types.Session, form SocietyForm) (string, error) {
	ctx, span := d.tracer.Start(ctx, "onboarding.Deferred.Begin")
	defer span.End()

	email := form.Email
	if session != nil {
		email = session.Email
	}
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrValidation)
	}

	form, err := prepareForm(d.validate, form)
	if err != nil {
		return "", err
	}

	if err := checkInviteCode(ctx, d.directory, form.InviteCode); err != nil {
		return "", err
	}

	err = d.directory.RequestSocietyOnboarding(ctx, email, form.Name, form.Slug, form.InviteCode, form.FirstSeason)
	if err != nil {
		return "", fmt.Errorf("failed to store onboarding request: %w", err)
	}

	if err := d.identity.SignInWithMagicLink(ctx, email, d.redirectTo); err != nil {
		return "", fmt.Errorf("failed to send magic link: %w", err)
	}

	d.logger.Infof("stored onboarding request for %s (%s)", email, form.Slug)
	return "", nil
}

// Finalize redeems the latest pending request for the signed-in user. The
// society, captain membership and first season are three separate inserts;
// a failure part way through surfaces a PartialWriteError naming the
// committed steps and nothing is rolled back.
func (d *Deferred) Finalize(ctx context.Context, session *types.Session) (string, error) {
	ctx, span := d.tracer.Start(ctx, "onboarding.Deferred.Finalize")
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

	society, err := d.directory.CreateSociety(ctx, pending.SocietyName, pending.SocietySlug)
	if err != nil {
		if errors.Is(err, directory.ErrDuplicateKey) {
			return "", ErrDuplicateSlug
		}
		return "", fmt.Errorf("society creation failed: %w", err)
	}
	completed := []string{"society"}

	err = d.directory.AddMember(ctx, society.ID, session.UserID, types.RoleCaptain)
	if err != nil && !errors.Is(err, directory.ErrDuplicateKey) {
		return "", &PartialWriteError{Completed: completed, Err: err}
	}
	completed = append(completed, "membership")

	err = d.directory.CreateSeason(ctx, firstSeason(society.ID, pending.FirstSeason))
	if err != nil && !errors.Is(err, directory.ErrDuplicateKey) {
		return "", &PartialWriteError{Completed: completed, Err: err}
	}

	if err := d.directory.IncrementInviteCodeUses(ctx, pending.InviteCode); err != nil {
		d.logger.Warnf("failed to increment uses for invite code: %v", err)
	}

	if err := d.directory.DeletePendingOnboarding(ctx, pending.ID); err != nil {
		d.logger.Warnf("failed to delete pending onboarding %s: %v", pending.ID, err)
	}

	d.logger.Infof("redeemed onboarding request %s into society %s", pending.ID, society.ID)
	return society.ID, nil
}
