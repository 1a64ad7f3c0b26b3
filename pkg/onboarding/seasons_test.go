// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/society-gate/internal/directory"
	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/monitoring"
	"github.com/canonical/society-gate/internal/tracing"
	"github.com/canonical/society-gate/internal/types"
)

func newSeasonService(t *testing.T) (*SeasonService, *MockDirectoryInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	dir := NewMockDirectoryInterface(ctrl)

	return NewSeasonService(dir, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()), dir
}

func TestSeasonCreateByCaptain(t *testing.T) {
	s, dir := newSeasonService(t)

	dir.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(
		[]*types.Membership{{SocietyID: "soc-1", UserID: "user-1", Role: types.RoleCaptain}}, nil)
	dir.EXPECT().CreateSeason(gomock.Any(), gomock.Any()).Return(nil)

	season, err := s.Create(context.Background(), "user-1", "soc-1", "Winter League 2026")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if season.SeasonID != "winter-league-2026" {
		t.Fatalf("expected derived season id, got %s", season.SeasonID)
	}
	if season.Competition != "season" {
		t.Fatalf("expected default competition, got %s", season.Competition)
	}
}

func TestSeasonCreateRejections(t *testing.T) {
	tests := []struct {
		name        string
		label       string
		memberships []*types.Membership
		skipLookup  bool
	}{
		{
			name:       "empty label",
			label:      "",
			skipLookup: true,
		},
		{
			name:        "player cannot create",
			label:       "Winter",
			memberships: []*types.Membership{{SocietyID: "soc-1", UserID: "user-1", Role: types.RolePlayer}},
		},
		{
			name:        "captain of a different society",
			label:       "Winter",
			memberships: []*types.Membership{{SocietyID: "soc-2", UserID: "user-1", Role: types.RoleCaptain}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, dir := newSeasonService(t)

			if !test.skipLookup {
				dir.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(test.memberships, nil)
			}

			_, err := s.Create(context.Background(), "user-1", "soc-1", test.label)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestSeasonCreateDuplicate(t *testing.T) {
	s, dir := newSeasonService(t)

	dir.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(
		[]*types.Membership{{SocietyID: "soc-1", UserID: "user-1", Role: types.RoleCaptain}}, nil)
	dir.EXPECT().CreateSeason(gomock.Any(), gomock.Any()).Return(directory.ErrDuplicateKey)

	_, err := s.Create(context.Background(), "user-1", "soc-1", "Winter")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error on duplicate season, got %v", err)
	}
}
