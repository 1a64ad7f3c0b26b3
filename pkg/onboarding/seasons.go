// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/society-gate/internal/directory"
	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/monitoring"
	"github.com/canonical/society-gate/internal/tracing"
	"github.com/canonical/society-gate/internal/types"
)

// SeasonService adds seasons to an existing society. Creation is gated on
// the caller holding a captain membership in that society.
type SeasonService struct {
	directory DirectoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewSeasonService(dir DirectoryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SeasonService {
	s := new(SeasonService)

	s.directory = dir

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

func (s *SeasonService) Create(ctx context.Context, userID, societyID, label string) (*types.Season, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.SeasonService.Create")
	defer span.End()

	if label == "" {
		return nil, fmt.Errorf("%w: season label is required", ErrValidation)
	}

	memberships, err := s.directory.ListMembershipsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("membership lookup failed: %w", err)
	}

	captain := false
	for _, m := range memberships {
		if m.SocietyID == societyID && m.Role == types.RoleCaptain {
			captain = true
			break
		}
	}
	if !captain {
		return nil, fmt.Errorf("%w: user is not a captain of society %s", ErrValidation, societyID)
	}

	season := firstSeason(societyID, label)
	if err := s.directory.CreateSeason(ctx, season); err != nil {
		if errors.Is(err, directory.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: season %q already exists", ErrValidation, season.SeasonID)
		}
		return nil, fmt.Errorf("season creation failed: %w", err)
	}

	s.logger.Infof("created season %s for society %s", season.SeasonID, societyID)
	return season, nil
}
