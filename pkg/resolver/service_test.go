// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/society-gate/internal/directory"
	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/monitoring"
	"github.com/canonical/society-gate/internal/routing"
	"github.com/canonical/society-gate/internal/tracing"
	"github.com/canonical/society-gate/internal/types"
)

type testDeps struct {
	directory    *MockDirectoryInterface
	cache        *MockCacheInterface
	orchestrator *MockOrchestratorInterface
}

func newTestService(t *testing.T, configErr error) (*Service, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		directory:    NewMockDirectoryInterface(ctrl),
		cache:        NewMockCacheInterface(ctrl),
		orchestrator: NewMockOrchestratorInterface(ctrl),
	}

	svc := NewService(
		deps.directory,
		deps.cache,
		deps.orchestrator,
		"direct",
		configErr,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return svc, deps
}

func session(userID, email string) *types.Session {
	return &types.Session{UserID: userID, Email: email}
}

func membership(societyID, userID, role string) *types.Membership {
	return &types.Membership{SocietyID: societyID, UserID: userID, Role: role}
}

func society(id, name, slug string) *types.Society {
	return &types.Society{ID: id, Name: name, Slug: slug, ViewerEnabled: true}
}

func TestResolveConfigError(t *testing.T) {
	svc, _ := newTestService(t, errors.New("identity endpoint not configured"))

	state := svc.resolve(context.Background(), passInput{sessionKnown: true})

	if state.Phase != PhaseConfigError {
		t.Fatalf("expected %s, got %s", PhaseConfigError, state.Phase)
	}
	if state.Err != "identity endpoint not configured" {
		t.Fatalf("unexpected error message %q", state.Err)
	}
}

func TestResolveAuthLoadingBeforeFirstSession(t *testing.T) {
	svc, _ := newTestService(t, nil)

	state := svc.resolve(context.Background(), passInput{})

	if state.Phase != PhaseAuthLoading {
		t.Fatalf("expected %s, got %s", PhaseAuthLoading, state.Phase)
	}
}

func TestResolveAnonymous(t *testing.T) {
	acme := society("soc-1", "Acme Golf", "acme")

	tests := []struct {
		name          string
		route         routing.Route
		lookupErr     error
		expectedPhase Phase
	}{
		{
			name:          "no slug signed out",
			expectedPhase: PhaseSignedOut,
		},
		{
			name:          "onboard marker forces onboarding",
			route:         routing.Route{OnboardForced: true},
			expectedPhase: PhaseOnboarding,
		},
		{
			name:          "viewable society",
			route:         routing.Route{Slug: "acme"},
			expectedPhase: PhasePublicViewing,
		},
		{
			name:          "unknown slug",
			route:         routing.Route{Slug: "acme"},
			lookupErr:     directory.ErrNotFound,
			expectedPhase: PhaseSignedOut,
		},
		{
			name:          "non viewable slug",
			route:         routing.Route{Slug: "acme"},
			lookupErr:     directory.ErrNotViewable,
			expectedPhase: PhaseSignedOut,
		},
		{
			name:          "access denied reads as absent",
			route:         routing.Route{Slug: "acme"},
			lookupErr:     fmt.Errorf("public society lookup: %w", directory.ErrNotFound),
			expectedPhase: PhaseSignedOut,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, deps := newTestService(t, nil)

			if test.route.Slug != "" {
				if test.lookupErr != nil {
					deps.directory.EXPECT().GetPublicSocietyBySlug(gomock.Any(), "acme").Return(nil, test.lookupErr)
				} else {
					deps.directory.EXPECT().GetPublicSocietyBySlug(gomock.Any(), "acme").Return(acme, nil)
				}
			}

			state := svc.resolve(context.Background(), passInput{sessionKnown: true, route: test.route})

			if state.Phase != test.expectedPhase {
				t.Fatalf("expected %s, got %s", test.expectedPhase, state.Phase)
			}
			if state.Err != "" {
				t.Fatalf("expected no error message, got %q", state.Err)
			}
			if test.expectedPhase == PhasePublicViewing {
				if state.Tenant == nil || state.Tenant.Role != types.RoleViewer {
					t.Fatalf("expected viewer tenant, got %+v", state.Tenant)
				}
				if state.Society == nil || state.Society.ID != "soc-1" {
					t.Fatalf("expected society soc-1, got %+v", state.Society)
				}
			}
		})
	}
}

func TestResolveAnonymousLookupFailureSurfacesMessage(t *testing.T) {
	svc, deps := newTestService(t, nil)

	deps.directory.EXPECT().GetPublicSocietyBySlug(gomock.Any(), "acme").Return(nil, errors.New("connection refused"))

	state := svc.resolve(context.Background(), passInput{sessionKnown: true, route: routing.Route{Slug: "acme"}})

	if state.Phase != PhaseTenantLoading {
		t.Fatalf("expected %s, got %s", PhaseTenantLoading, state.Phase)
	}
	if state.Err != "connection refused" {
		t.Fatalf("expected surfaced message, got %q", state.Err)
	}
}

func TestResolveMembershipCardinality(t *testing.T) {
	user := session("user-1", "u@example.com")

	t.Run("no memberships no pending", func(t *testing.T) {
		svc, deps := newTestService(t, nil)

		deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(nil, nil)
		deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(nil, directory.ErrNotFound)

		state := svc.resolve(context.Background(), passInput{sessionKnown: true, session: user})

		if state.Phase != PhaseNoAccess {
			t.Fatalf("expected %s, got %s", PhaseNoAccess, state.Phase)
		}
	})

	t.Run("single membership resolves immediately", func(t *testing.T) {
		svc, deps := newTestService(t, nil)

		deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(
			[]*types.Membership{membership("soc-1", "user-1", types.RoleCaptain)}, nil)
		deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(nil, directory.ErrNotFound)
		deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), []string{"soc-1"}).Return(
			[]*types.Society{society("soc-1", "Acme Golf", "acme")}, nil)
		deps.cache.EXPECT().Get().Return("", false)
		deps.cache.EXPECT().Set("soc-1").Return(true)

		state := svc.resolve(context.Background(), passInput{sessionKnown: true, session: user})

		if state.Phase != PhaseResolved {
			t.Fatalf("expected %s, got %s", PhaseResolved, state.Phase)
		}
		if state.Tenant.SocietyID != "soc-1" || state.Tenant.Role != types.RoleCaptain {
			t.Fatalf("unexpected tenant %+v", state.Tenant)
		}
	})

	t.Run("multiple memberships without a signal yield the picker", func(t *testing.T) {
		svc, deps := newTestService(t, nil)

		deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(
			[]*types.Membership{
				membership("soc-2", "user-1", types.RolePlayer),
				membership("soc-1", "user-1", types.RoleCaptain),
			}, nil)
		deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(nil, directory.ErrNotFound)
		deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), []string{"soc-2", "soc-1"}).Return(
			[]*types.Society{society("soc-2", "Beta Club", "beta"), society("soc-1", "Acme Golf", "acme")}, nil)
		deps.cache.EXPECT().Get().Return("", false)

		state := svc.resolve(context.Background(), passInput{sessionKnown: true, session: user})

		if state.Phase != PhasePicker {
			t.Fatalf("expected %s, got %s", PhasePicker, state.Phase)
		}
		if len(state.Options) != 2 || state.Options[0].Name != "Acme Golf" || state.Options[1].Name != "Beta Club" {
			t.Fatalf("expected options sorted by name, got %+v", state.Options)
		}
	})
}

func TestResolvePrecedence(t *testing.T) {
	user := session("user-1", "u@example.com")

	memberships := []*types.Membership{
		membership("soc-a", "user-1", types.RoleCaptain),
		membership("soc-b", "user-1", types.RolePlayer),
		membership("soc-c", "user-1", types.RolePlayer),
	}
	societies := []*types.Society{
		society("soc-a", "Alpha", "alpha"),
		society("soc-b", "Beta", "beta"),
		society("soc-c", "Gamma", "gamma"),
	}

	tests := []struct {
		name         string
		memberships  []*types.Membership
		societies    []*types.Society
		preferredID  string
		cached       string
		expectPhase  Phase
		expectActive string
	}{
		{
			name:         "preferred id wins over cache",
			memberships:  memberships,
			societies:    societies,
			preferredID:  "soc-c",
			cached:       "soc-b",
			expectPhase:  PhaseResolved,
			expectActive: "soc-c",
		},
		{
			name:         "cached selection wins without preferred",
			memberships:  memberships,
			societies:    societies,
			cached:       "soc-b",
			expectPhase:  PhaseResolved,
			expectActive: "soc-b",
		},
		{
			name:         "sole membership wins without signals",
			memberships:  memberships[:1],
			societies:    societies[:1],
			expectPhase:  PhaseResolved,
			expectActive: "soc-a",
		},
		{
			name:        "no signal and many memberships defers to picker",
			memberships: memberships,
			societies:   societies,
			expectPhase: PhasePicker,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, deps := newTestService(t, nil)

			deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(test.memberships, nil)
			deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(nil, directory.ErrNotFound)
			deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), gomock.Any()).Return(test.societies, nil)
			deps.cache.EXPECT().Get().Return(test.cached, test.cached != "").AnyTimes()
			if test.expectPhase == PhaseResolved {
				deps.cache.EXPECT().Set(test.expectActive).Return(true)
			}

			state := svc.resolve(context.Background(), passInput{
				sessionKnown: true,
				session:      user,
				preferredID:  test.preferredID,
			})

			if state.Phase != test.expectPhase {
				t.Fatalf("expected %s, got %s", test.expectPhase, state.Phase)
			}
			if test.expectActive != "" && state.Tenant.SocietyID != test.expectActive {
				t.Fatalf("expected active society %s, got %s", test.expectActive, state.Tenant.SocietyID)
			}
		})
	}
}

func TestResolveSlugMatchBeatsCache(t *testing.T) {
	svc, deps := newTestService(t, nil)
	user := session("user-1", "u@example.com")

	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(
		[]*types.Membership{
			membership("soc-a", "user-1", types.RoleCaptain),
			membership("soc-b", "user-1", types.RolePlayer),
		}, nil)
	deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(nil, directory.ErrNotFound)
	deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), gomock.Any()).Return(
		[]*types.Society{society("soc-a", "Alpha", "alpha"), society("soc-b", "Beta", "beta")}, nil)
	deps.cache.EXPECT().Set("soc-b").Return(true)

	state := svc.resolve(context.Background(), passInput{
		sessionKnown: true,
		session:      user,
		route:        routing.Route{Slug: "beta"},
	})

	if state.Phase != PhaseResolved || state.Tenant.SocietyID != "soc-b" {
		t.Fatalf("expected slug match to resolve soc-b, got %+v", state)
	}
	if state.Tenant.Role != types.RolePlayer {
		t.Fatalf("expected role player, got %s", state.Tenant.Role)
	}
}

func TestResolveIdempotent(t *testing.T) {
	svc, deps := newTestService(t, nil)
	user := session("user-1", "u@example.com")

	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(
		[]*types.Membership{membership("soc-1", "user-1", "")}, nil).Times(2)
	deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(nil, directory.ErrNotFound).Times(2)
	deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), []string{"soc-1"}).Return(
		[]*types.Society{society("soc-1", "Acme Golf", "acme")}, nil).Times(2)
	deps.cache.EXPECT().Get().Return("", false).Times(2)
	deps.cache.EXPECT().Set("soc-1").Return(true).Times(2)

	in := passInput{sessionKnown: true, session: user}

	first := svc.resolve(context.Background(), in)
	second := svc.resolve(context.Background(), in)

	if first.Phase != PhaseResolved || second.Phase != PhaseResolved {
		t.Fatalf("expected both passes resolved, got %s and %s", first.Phase, second.Phase)
	}
	if first.Tenant.SocietyID != second.Tenant.SocietyID {
		t.Fatalf("expected identical outcome, got %s then %s", first.Tenant.SocietyID, second.Tenant.SocietyID)
	}
	if first.Tenant.Role != types.RolePlayer {
		t.Fatalf("expected default role player, got %s", first.Tenant.Role)
	}
}

func TestResolveAutoFinalizesPendingOnboarding(t *testing.T) {
	svc, deps := newTestService(t, nil)
	user := session("user-1", "u@example.com")
	pending := &types.PendingOnboarding{ID: "pend-1", Email: "u@example.com", SocietyName: "Acme Golf"}

	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(nil, nil)
	deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(pending, nil)
	deps.orchestrator.EXPECT().Finalize(gomock.Any(), user).Return("soc-new", nil)
	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(
		[]*types.Membership{membership("soc-new", "user-1", types.RoleCaptain)}, nil)
	deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), []string{"soc-new"}).Return(
		[]*types.Society{society("soc-new", "Acme Golf", "acme-golf")}, nil)
	deps.cache.EXPECT().Set("soc-new").Return(true)

	state := svc.resolve(context.Background(), passInput{sessionKnown: true, session: user})

	if state.Phase != PhaseResolved {
		t.Fatalf("expected %s, got %s", PhaseResolved, state.Phase)
	}
	if state.Tenant.SocietyID != "soc-new" || state.Tenant.Role != types.RoleCaptain {
		t.Fatalf("unexpected tenant %+v", state.Tenant)
	}
}

func TestResolveFinalizeFailureShowsOnboarding(t *testing.T) {
	svc, deps := newTestService(t, nil)
	user := session("user-1", "u@example.com")
	pending := &types.PendingOnboarding{ID: "pend-1", Email: "u@example.com"}

	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(nil, nil)
	deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(pending, nil)
	deps.orchestrator.EXPECT().Finalize(gomock.Any(), user).Return("", errors.New("invite code expired"))

	state := svc.resolve(context.Background(), passInput{sessionKnown: true, session: user})

	if state.Phase != PhaseOnboarding {
		t.Fatalf("expected %s, got %s", PhaseOnboarding, state.Phase)
	}
	if state.Err != "invite code expired" {
		t.Fatalf("expected surfaced finalize error, got %q", state.Err)
	}
	if state.Pending == nil || state.Pending.ID != "pend-1" {
		t.Fatalf("expected pending record in state, got %+v", state.Pending)
	}
}

func TestResolvePendingWithMembershipsOffersChoice(t *testing.T) {
	svc, deps := newTestService(t, nil)
	user := session("user-1", "u@example.com")
	pending := &types.PendingOnboarding{ID: "pend-1", Email: "u@example.com"}

	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(
		[]*types.Membership{membership("soc-1", "user-1", types.RoleCaptain)}, nil)
	deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(pending, nil)
	deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), []string{"soc-1"}).Return(
		[]*types.Society{society("soc-1", "Acme Golf", "acme")}, nil)

	state := svc.resolve(context.Background(), passInput{sessionKnown: true, session: user})

	if state.Phase != PhasePostLoginChoice {
		t.Fatalf("expected %s, got %s", PhasePostLoginChoice, state.Phase)
	}
	if state.Pending == nil || len(state.Options) != 1 {
		t.Fatalf("expected pending record and one option, got %+v", state)
	}
}

func waitForPhase(t *testing.T, svc *Service, phase Phase) State {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		state := svc.Snapshot()
		if state.Phase == phase {
			return state
		}
		time.Sleep(2 * time.Millisecond)
	}

	t.Fatalf("timed out waiting for phase %s, last phase %s", phase, svc.Snapshot().Phase)
	return State{}
}

func TestServiceCancelsSupersededPass(t *testing.T) {
	svc, deps := newTestService(t, nil)

	alice := session("user-a", "a@example.com")
	bob := session("user-b", "b@example.com")

	released := make(chan struct{})

	// the first pass blocks until its context is cancelled by the second
	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-a").DoAndReturn(
		func(ctx context.Context, userID string) ([]*types.Membership, error) {
			select {
			case <-ctx.Done():
			case <-released:
			}
			return []*types.Membership{membership("soc-stale", "user-a", types.RoleCaptain)}, nil
		})
	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-b").Return(
		[]*types.Membership{membership("soc-b", "user-b", types.RolePlayer)}, nil)
	deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "b@example.com").Return(nil, directory.ErrNotFound)
	deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), []string{"soc-b"}).Return(
		[]*types.Society{society("soc-b", "Beta", "beta")}, nil)
	deps.cache.EXPECT().Get().Return("", false).AnyTimes()
	deps.cache.EXPECT().Set("soc-b").Return(true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	svc.SetSession(alice)
	svc.SetSession(bob)

	state := waitForPhase(t, svc, PhaseResolved)
	if state.Tenant.SocietyID != "soc-b" {
		t.Fatalf("expected soc-b, got %s", state.Tenant.SocietyID)
	}

	// releasing the stale pass must not overwrite the newer outcome
	close(released)
	time.Sleep(20 * time.Millisecond)

	state = svc.Snapshot()
	if state.Phase != PhaseResolved || state.Tenant.SocietyID != "soc-b" {
		t.Fatalf("stale pass leaked into state: %+v", state)
	}
}

func TestServicePickerFlow(t *testing.T) {
	svc, deps := newTestService(t, nil)
	user := session("user-1", "u@example.com")

	memberships := []*types.Membership{
		membership("soc-a", "user-1", types.RoleCaptain),
		membership("soc-b", "user-1", types.RolePlayer),
	}
	societies := []*types.Society{
		society("soc-b", "Beta", "beta"),
		society("soc-a", "Alpha", "alpha"),
	}

	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(memberships, nil).AnyTimes()
	deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(nil, directory.ErrNotFound).AnyTimes()
	deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), gomock.Any()).Return(societies, nil).AnyTimes()
	deps.cache.EXPECT().Get().Return("", false).AnyTimes()
	deps.cache.EXPECT().Set("soc-a").Return(true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	svc.SetSession(user)

	state := waitForPhase(t, svc, PhasePicker)
	if len(state.Options) != 2 || state.Options[0].Name != "Alpha" || state.Options[1].Name != "Beta" {
		t.Fatalf("expected sorted picker options, got %+v", state.Options)
	}

	svc.Pick("soc-a")

	state = waitForPhase(t, svc, PhaseResolved)
	if state.Tenant.SocietyID != "soc-a" || state.Tenant.Role != types.RoleCaptain {
		t.Fatalf("unexpected tenant after pick: %+v", state.Tenant)
	}
}

func TestServiceSignOutReturnsToSignedOut(t *testing.T) {
	svc, deps := newTestService(t, nil)
	user := session("user-1", "u@example.com")

	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(
		[]*types.Membership{membership("soc-1", "user-1", types.RolePlayer)}, nil)
	deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(nil, directory.ErrNotFound)
	deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), []string{"soc-1"}).Return(
		[]*types.Society{society("soc-1", "Acme Golf", "acme")}, nil)
	deps.cache.EXPECT().Get().Return("", false)
	deps.cache.EXPECT().Set("soc-1").Return(true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	svc.SetSession(user)
	waitForPhase(t, svc, PhaseResolved)

	svc.SetSession(nil)
	waitForPhase(t, svc, PhaseSignedOut)
}

func TestServiceSeasonCreationScreen(t *testing.T) {
	svc, deps := newTestService(t, nil)
	user := session("user-1", "u@example.com")

	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-1").Return(
		[]*types.Membership{membership("soc-1", "user-1", types.RoleCaptain)}, nil).AnyTimes()
	deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "u@example.com").Return(nil, directory.ErrNotFound).AnyTimes()
	deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), []string{"soc-1"}).Return(
		[]*types.Society{society("soc-1", "Acme Golf", "acme")}, nil).AnyTimes()
	deps.cache.EXPECT().Get().Return("", false).AnyTimes()
	deps.cache.EXPECT().Set("soc-1").Return(true).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	svc.SetSession(user)
	waitForPhase(t, svc, PhaseResolved)

	svc.BeginSeasonCreation()
	state := waitForPhase(t, svc, PhaseCreatingSeason)
	if state.Tenant == nil || state.Tenant.SocietyID != "soc-1" {
		t.Fatalf("expected season screen to carry current tenant, got %+v", state.Tenant)
	}

	svc.Proceed()
	waitForPhase(t, svc, PhaseResolved)
}

func TestServiceStatesDeliversLatest(t *testing.T) {
	svc, _ := newTestService(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	svc.SetSession(nil)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case state := <-svc.States():
			if state.Phase == PhaseSignedOut {
				return
			}
			// latest-wins feed, intermediate states may still slip through
		case <-deadline:
			t.Fatal("timed out waiting for signed-out on the change feed")
		}
	}
}

func TestServiceStalePassDoesNotWriteCache(t *testing.T) {
	svc, deps := newTestService(t, nil)

	alice := session("user-a", "a@example.com")
	bob := session("user-b", "b@example.com")

	staleFetchEntered := make(chan struct{})
	released := make(chan struct{})

	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-a").Return(
		[]*types.Membership{membership("soc-stale", "user-a", types.RoleCaptain)}, nil)
	deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "a@example.com").Return(nil, directory.ErrNotFound)
	// the first pass's society fetch completes only after it was superseded
	deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), []string{"soc-stale"}).DoAndReturn(
		func(ctx context.Context, ids []string) ([]*types.Society, error) {
			close(staleFetchEntered)
			<-released
			return []*types.Society{society("soc-stale", "Stale", "stale")}, nil
		})

	deps.directory.EXPECT().ListMembershipsByUserID(gomock.Any(), "user-b").Return(
		[]*types.Membership{membership("soc-b", "user-b", types.RolePlayer)}, nil)
	deps.directory.EXPECT().GetLatestPendingOnboarding(gomock.Any(), "b@example.com").Return(nil, directory.ErrNotFound)
	deps.directory.EXPECT().ListSocietiesByIDs(gomock.Any(), []string{"soc-b"}).Return(
		[]*types.Society{society("soc-b", "Beta", "beta")}, nil)

	var mu sync.Mutex
	var writes []string
	deps.cache.EXPECT().Get().Return("", false).AnyTimes()
	deps.cache.EXPECT().Set(gomock.Any()).DoAndReturn(func(id string) bool {
		mu.Lock()
		defer mu.Unlock()
		writes = append(writes, id)
		return true
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	svc.SetSession(alice)
	<-staleFetchEntered
	svc.SetSession(bob)

	state := waitForPhase(t, svc, PhaseResolved)
	if state.Tenant.SocietyID != "soc-b" {
		t.Fatalf("expected soc-b, got %s", state.Tenant.SocietyID)
	}

	// let the superseded pass finish its fetch; it must not reach the cache
	close(released)
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(writes) != 1 || writes[0] != "soc-b" {
		t.Fatalf("expected a single cache write for soc-b, got %v", writes)
	}
}
