// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/society-gate/internal/db"
	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/monitoring"
	"github.com/canonical/society-gate/internal/tracing"
	"github.com/canonical/society-gate/internal/types"
)

var _ DirectoryInterface = (*Directory)(nil)

// Directory reads and writes the backend's tabular surface with the same
// role the browser client uses. Row level policies decide visibility; the
// gate only maps their denials into its error taxonomy.
type Directory struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewDirectory(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Directory {
	d := new(Directory)

	d.db = c

	d.logger = logger
	d.tracer = tracer
	d.monitor = monitor

	return d
}

func (d *Directory) ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.Membership, error) {
	ctx, span := d.tracer.Start(ctx, "directory.ListMembershipsByUserID")
	defer span.End()

	rows, err := d.db.Statement(ctx).
		Select("society_id", "user_id", "role").
		From("memberships").
		Where(sq.Eq{"user_id": userID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.SocietyID, &m.UserID, &m.Role); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

// ListSocietiesByIDs returns the subset of requested societies that exist
// and are visible; missing ids are silently omitted.
func (d *Directory) ListSocietiesByIDs(ctx context.Context, ids []string) ([]*types.Society, error) {
	ctx, span := d.tracer.Start(ctx, "directory.ListSocietiesByIDs")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := d.db.Statement(ctx).
		Select("id", "name", "slug", "viewer_enabled").
		From("societies").
		Where(sq.Eq{"id": ids}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list societies: %w", err)
	}
	defer rows.Close()

	var societies []*types.Society
	for rows.Next() {
		var s types.Society
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.ViewerEnabled); err != nil {
			return nil, fmt.Errorf("failed to scan society: %w", err)
		}
		societies = append(societies, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return societies, nil
}

// GetPublicSocietyBySlug looks a society up for anonymous viewing.
// A policy denial is reported as ErrNotFound on purpose: the public
// directory must be indistinguishable from absence for private societies.
// A society that exists with viewing disabled returns ErrNotViewable.
func (d *Directory) GetPublicSocietyBySlug(ctx context.Context, slug string) (*types.Society, error) {
	ctx, span := d.tracer.Start(ctx, "directory.GetPublicSocietyBySlug")
	defer span.End()

	var s types.Society
	err := d.db.Statement(ctx).
		Select("id", "name", "slug", "viewer_enabled").
		From("societies").
		Where(sq.Eq{"slug": slug}).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&s.ID, &s.Name, &s.Slug, &s.ViewerEnabled)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || IsPermissionDenied(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get society: %w", err)
	}

	if !s.ViewerEnabled {
		return nil, ErrNotViewable
	}

	return &s, nil
}

// GetLatestPendingOnboarding returns the most recent pending record for the
// email. Older duplicates are tolerated and ignored.
func (d *Directory) GetLatestPendingOnboarding(ctx context.Context, email string) (*types.PendingOnboarding, error) {
	ctx, span := d.tracer.Start(ctx, "directory.GetLatestPendingOnboarding")
	defer span.End()

	var p types.PendingOnboarding
	err := d.db.Statement(ctx).
		Select("id", "email", "society_name", "society_slug", "invite_code", "first_season", "created_at").
		From("pending_onboarding").
		Where(sq.Eq{"email": email}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Email, &p.SocietyName, &p.SocietySlug, &p.InviteCode, &p.FirstSeason, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending onboarding: %w", err)
	}

	return &p, nil
}

func (d *Directory) DeletePendingOnboarding(ctx context.Context, id string) error {
	ctx, span := d.tracer.Start(ctx, "directory.DeletePendingOnboarding")
	defer span.End()

	_, err := d.db.Statement(ctx).
		Delete("pending_onboarding").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete pending onboarding: %w", err)
	}
	return nil
}

func (d *Directory) GetInviteCode(ctx context.Context, code string) (*types.InviteCode, error) {
	ctx, span := d.tracer.Start(ctx, "directory.GetInviteCode")
	defer span.End()

	var c types.InviteCode
	err := d.db.Statement(ctx).
		Select("code", "is_active", "max_uses", "uses").
		From("invite_codes").
		Where(sq.Eq{"code": code}).
		QueryRowContext(ctx).
		Scan(&c.Code, &c.IsActive, &c.MaxUses, &c.Uses)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || IsPermissionDenied(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite code: %w", err)
	}

	return &c, nil
}

// IncrementInviteCodeUses bumps the usage counter. Callers treat this as
// best-effort; it is not atomic with the society creation it follows.
func (d *Directory) IncrementInviteCodeUses(ctx context.Context, code string) error {
	ctx, span := d.tracer.Start(ctx, "directory.IncrementInviteCodeUses")
	defer span.End()

	_, err := d.db.Statement(ctx).
		Update("invite_codes").
		Set("uses", sq.Expr("uses + 1")).
		Where(sq.Eq{"code": code}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to increment invite code uses: %w", err)
	}
	return nil
}

func (d *Directory) CreateInviteCode(ctx context.Context, code *types.InviteCode) error {
	ctx, span := d.tracer.Start(ctx, "directory.CreateInviteCode")
	defer span.End()

	_, err := d.db.Statement(ctx).
		Insert("invite_codes").
		Columns("code", "is_active", "max_uses", "uses").
		Values(code.Code, code.IsActive, code.MaxUses, code.Uses).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert invite code: %w", err)
	}
	return nil
}

func (d *Directory) CreateSociety(ctx context.Context, name, slug string) (*types.Society, error) {
	ctx, span := d.tracer.Start(ctx, "directory.CreateSociety")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate society ID: %w", err)
	}

	var s types.Society
	err = d.db.Statement(ctx).
		Insert("societies").
		Columns("id", "name", "slug", "viewer_enabled").
		Values(id.String(), name, slug, true).
		Suffix("RETURNING id, name, slug, viewer_enabled").
		QueryRowContext(ctx).
		Scan(&s.ID, &s.Name, &s.Slug, &s.ViewerEnabled)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert society: %w", err)
	}

	return &s, nil
}

func (d *Directory) AddMember(ctx context.Context, societyID, userID, role string) error {
	ctx, span := d.tracer.Start(ctx, "directory.AddMember")
	defer span.End()

	_, err := d.db.Statement(ctx).
		Insert("memberships").
		Columns("society_id", "user_id", "role").
		Values(societyID, userID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (d *Directory) CreateSeason(ctx context.Context, season *types.Season) error {
	ctx, span := d.tracer.Start(ctx, "directory.CreateSeason")
	defer span.End()

	_, err := d.db.Statement(ctx).
		Insert("seasons").
		Columns("society_id", "season_id", "label", "competition", "start_date", "end_date").
		Values(season.SocietyID, season.SeasonID, season.Label, season.Competition, season.StartDate, season.EndDate).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert season: %w", err)
	}
	return nil
}

// CreateSocietyWithCode invokes the backend's atomic creation function:
// invite code validation, society row, captain membership and first season
// all happen server side under the caller's identity.
func (d *Directory) CreateSocietyWithCode(ctx context.Context, name, slug, inviteCode, firstSeason string) (string, error) {
	ctx, span := d.tracer.Start(ctx, "directory.CreateSocietyWithCode")
	defer span.End()

	var societyID string
	err := d.db.Statement(ctx).
		Select().
		Column(sq.Expr("create_society_with_code(?, ?, ?, ?)", name, slug, inviteCode, firstSeason)).
		QueryRowContext(ctx).
		Scan(&societyID)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsPermissionDenied(err) {
			return "", ErrPermissionDenied
		}
		return "", fmt.Errorf("create_society_with_code failed: %w", err)
	}

	return societyID, nil
}

// RequestSocietyOnboarding stores a signup intent server side so it can be
// redeemed after email verification, possibly from another device.
func (d *Directory) RequestSocietyOnboarding(ctx context.Context, email, name, slug, inviteCode, firstSeason string) error {
	ctx, span := d.tracer.Start(ctx, "directory.RequestSocietyOnboarding")
	defer span.End()

	var ok bool
	err := d.db.Statement(ctx).
		Select().
		Column(sq.Expr("request_society_onboarding(?, ?, ?, ?, ?)", email, name, slug, inviteCode, firstSeason)).
		QueryRowContext(ctx).
		Scan(&ok)

	if err != nil {
		if IsPermissionDenied(err) {
			return ErrPermissionDenied
		}
		return fmt.Errorf("request_society_onboarding failed: %w", err)
	}

	return nil
}
