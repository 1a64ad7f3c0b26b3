// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package resolver decides which society a visitor is acting in. It folds
// the current session, the URL slug, and directory data into one explicit
// state consumed by the presentation shell.
package resolver

import (
	"context"
	"errors"

	"github.com/canonical/society-gate/internal/directory"
	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/monitoring"
	"github.com/canonical/society-gate/internal/routing"
	"github.com/canonical/society-gate/internal/tracing"
	"github.com/canonical/society-gate/internal/types"
)

type inputKind int

const (
	inputSession inputKind = iota
	inputRoute
	inputPick
	inputPreferred
	inputProceed
	inputSeasonFlow
	inputSnapshot
)

type input struct {
	kind    inputKind
	session *types.Session
	route   routing.Route
	id      string
	reply   chan State
}

// passInput is the immutable snapshot a resolution pass runs against.
type passInput struct {
	sessionKnown bool
	session      *types.Session
	route        routing.Route
	preferredID  string
	skipPending  bool
	retried      bool
}

type passResult struct {
	gen   uint64
	state State
}

// Service runs the resolution machine. All state is owned by the Run loop
// goroutine; callers interact through channels only.
type Service struct {
	directory    DirectoryInterface
	cache        CacheInterface
	orchestrator OrchestratorInterface
	mode         string
	configErr    error

	inputs  chan input
	results chan passResult
	updates chan State

	// owned by Run
	state        State
	sessionKnown bool
	session      *types.Session
	route        routing.Route
	preferredID  string
	skipPending  bool
	seasonFlow   bool
	gen          uint64
	cancelPass   context.CancelFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewService builds a resolver. A non-nil configErr pins the machine in the
// configuration-error phase; every other input still drains so the shell
// stays responsive.
func NewService(dir DirectoryInterface, cache CacheInterface, orchestrator OrchestratorInterface, mode string, configErr error, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.directory = dir
	s.cache = cache
	s.orchestrator = orchestrator
	s.mode = mode
	s.configErr = configErr

	s.inputs = make(chan input)
	s.results = make(chan passResult)
	s.updates = make(chan State, 1)
	s.state = State{Phase: PhaseAuthLoading}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// Run owns the machine until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			if s.cancelPass != nil {
				s.cancelPass()
			}
			return
		case in := <-s.inputs:
			s.handleInput(ctx, in)
		case r := <-s.results:
			if r.gen != s.gen {
				// late result for a superseded (session, slug) pair
				continue
			}
			s.apply(r.state)
		}
	}
}

// SetSession feeds a session transition. Passing nil records a signed-out
// state; the first call of either kind ends the auth-loading phase.
func (s *Service) SetSession(session *types.Session) {
	s.inputs <- input{kind: inputSession, session: session}
}

// SetRoute feeds the resolved URL route.
func (s *Service) SetRoute(route routing.Route) {
	s.inputs <- input{kind: inputRoute, route: route}
}

// Pick records an explicit picker choice and re-resolves.
func (s *Service) Pick(societyID string) {
	s.inputs <- input{kind: inputPick, id: societyID}
}

// SetPreferred hints the id of a just-created society so the next pass
// resolves straight into it.
func (s *Service) SetPreferred(societyID string) {
	s.inputs <- input{kind: inputPreferred, id: societyID}
}

// Proceed dismisses a post-login choice or season-creation screen and
// resumes normal resolution.
func (s *Service) Proceed() {
	s.inputs <- input{kind: inputProceed}
}

// BeginSeasonCreation switches to the season-creation screen for the
// current tenant.
func (s *Service) BeginSeasonCreation() {
	s.inputs <- input{kind: inputSeasonFlow}
}

// Snapshot returns the current state.
func (s *Service) Snapshot() State {
	reply := make(chan State, 1)
	s.inputs <- input{kind: inputSnapshot, reply: reply}
	return <-reply
}

// States is the change feed. It holds at most one element; a slow reader
// observes only the latest state.
func (s *Service) States() <-chan State {
	return s.updates
}

func (s *Service) handleInput(ctx context.Context, in input) {
	switch in.kind {
	case inputSnapshot:
		in.reply <- s.state
		return
	case inputSession:
		if !sameIdentity(s.session, in.session) {
			s.preferredID = ""
			s.skipPending = false
			s.seasonFlow = false
		}
		s.session = in.session
		s.sessionKnown = true
	case inputRoute:
		s.route = in.route
	case inputPick:
		if in.id == "" {
			return
		}
		s.preferredID = in.id
	case inputPreferred:
		if in.id == "" {
			return
		}
		s.preferredID = in.id
		s.skipPending = true
		s.seasonFlow = false
	case inputProceed:
		s.skipPending = true
		s.seasonFlow = false
	case inputSeasonFlow:
		s.seasonFlow = true
		s.apply(State{Phase: PhaseCreatingSeason, Tenant: s.state.Tenant})
		return
	}

	s.startPass(ctx)
}

func (s *Service) startPass(ctx context.Context) {
	s.gen++
	if s.cancelPass != nil {
		s.cancelPass()
	}

	passCtx, cancel := context.WithCancel(ctx)
	s.cancelPass = cancel

	in := passInput{
		sessionKnown: s.sessionKnown,
		session:      s.session,
		route:        s.route,
		preferredID:  s.preferredID,
		skipPending:  s.skipPending,
	}

	if s.willFetch(in) {
		s.apply(State{Phase: PhaseTenantLoading})
	}

	gen := s.gen
	go func() {
		state := s.resolve(passCtx, in)
		select {
		case s.results <- passResult{gen: gen, state: state}:
		case <-passCtx.Done():
		}
	}()
}

func (s *Service) willFetch(in passInput) bool {
	if s.configErr != nil || !in.sessionKnown {
		return false
	}
	if in.session != nil {
		return true
	}
	return in.route.Slug != "" && !in.route.OnboardForced
}

func (s *Service) apply(state State) {
	s.state = state

	for {
		select {
		case s.updates <- state:
			return
		default:
			select {
			case <-s.updates:
			default:
			}
		}
	}
}

// resolve computes the state for one immutable snapshot of the inputs. It
// is the only place directory reads happen, so cancelling its context is
// enough to discard a superseded pass.
func (s *Service) resolve(ctx context.Context, in passInput) State {
	ctx, span := s.tracer.Start(ctx, "resolver.Service.resolve")
	defer span.End()

	if s.configErr != nil {
		return State{Phase: PhaseConfigError, Err: s.configErr.Error()}
	}

	if !in.sessionKnown {
		return State{Phase: PhaseAuthLoading}
	}

	if in.session == nil {
		return s.resolveAnonymous(ctx, in)
	}

	return s.resolveMember(ctx, in)
}

func (s *Service) resolveAnonymous(ctx context.Context, in passInput) State {
	if in.route.OnboardForced {
		return State{Phase: PhaseOnboarding, Mode: s.mode}
	}

	if in.route.Slug == "" {
		return State{Phase: PhaseSignedOut}
	}

	society, err := s.directory.GetPublicSocietyBySlug(ctx, in.route.Slug)
	switch {
	case err == nil:
		return State{
			Phase:   PhasePublicViewing,
			Society: society,
			Tenant: &types.ActiveTenant{
				SocietyID: society.ID,
				Slug:      society.Slug,
				Name:      society.Name,
				Role:      types.RoleViewer,
			},
		}
	case errors.Is(err, directory.ErrNotFound), errors.Is(err, directory.ErrNotViewable):
		// absent, private, and access-denied all read as "no public
		// society" so anonymous callers cannot probe for private slugs
		return State{Phase: PhaseSignedOut}
	default:
		s.logger.Errorf("public society lookup for %q failed: %v", in.route.Slug, err)
		return State{Phase: PhaseTenantLoading, Err: err.Error()}
	}
}

func (s *Service) resolveMember(ctx context.Context, in passInput) State {
	memberships, err := s.directory.ListMembershipsByUserID(ctx, in.session.UserID)
	if err != nil {
		s.logger.Errorf("membership fetch for user %s failed: %v", in.session.UserID, err)
		return State{Phase: PhaseTenantLoading, Err: err.Error()}
	}
	if ctx.Err() != nil {
		// superseded pass, the result is discarded anyway
		return State{Phase: PhaseTenantLoading}
	}

	var pending *types.PendingOnboarding
	if !in.skipPending {
		pending, err = s.directory.GetLatestPendingOnboarding(ctx, in.session.Email)
		if err != nil && !errors.Is(err, directory.ErrNotFound) {
			s.logger.Errorf("pending onboarding fetch failed: %v", err)
			return State{Phase: PhaseTenantLoading, Err: err.Error()}
		}
	}

	if len(memberships) == 0 {
		if pending == nil {
			return State{Phase: PhaseNoAccess}
		}
		if in.retried {
			return State{Phase: PhaseNoAccess}
		}

		societyID, err := s.orchestrator.Finalize(ctx, in.session)
		if err != nil {
			s.logger.Errorf("onboarding finalize failed: %v", err)
			return State{Phase: PhaseOnboarding, Mode: s.mode, Pending: pending, Err: err.Error()}
		}

		in.preferredID = societyID
		in.skipPending = true
		in.retried = true
		return s.resolveMember(ctx, in)
	}

	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.SocietyID)
	}

	societies, err := s.directory.ListSocietiesByIDs(ctx, ids)
	if err != nil {
		s.logger.Errorf("society fetch failed: %v", err)
		return State{Phase: PhaseTenantLoading, Err: err.Error()}
	}
	if ctx.Err() != nil {
		// superseded pass, it must not touch the cache
		return State{Phase: PhaseTenantLoading}
	}

	if pending != nil {
		sortOptions(societies)
		return State{Phase: PhasePostLoginChoice, Pending: pending, Options: societies}
	}

	activeID, picked := s.pickActive(in, memberships, societies)
	if !picked {
		sortOptions(societies)
		return State{Phase: PhasePicker, Options: societies}
	}

	s.cache.Set(activeID)

	role := types.RolePlayer
	for _, m := range memberships {
		if m.SocietyID == activeID && m.Role != "" {
			role = m.Role
			break
		}
	}

	tenant := &types.ActiveTenant{SocietyID: activeID, Role: role, Session: in.session}
	for _, society := range societies {
		if society.ID == activeID {
			tenant.Slug = society.Slug
			tenant.Name = society.Name
			break
		}
	}

	return State{Phase: PhaseResolved, Tenant: tenant}
}

// pickActive applies the selection precedence: preferred id, then slug
// match, then cached selection, then a sole membership. A multi-membership
// set with no signal defers to the picker.
func (s *Service) pickActive(in passInput, memberships []*types.Membership, societies []*types.Society) (string, bool) {
	ids := make(map[string]bool, len(memberships))
	for _, m := range memberships {
		ids[m.SocietyID] = true
	}

	if in.preferredID != "" && ids[in.preferredID] {
		return in.preferredID, true
	}

	if in.route.Slug != "" {
		for _, society := range societies {
			if society.Slug == in.route.Slug && ids[society.ID] {
				return society.ID, true
			}
		}
	}

	if cached, ok := s.cache.Get(); ok && ids[cached] {
		return cached, true
	}

	if len(memberships) > 1 {
		return "", false
	}

	return memberships[0].SocietyID, true
}

func sameIdentity(a, b *types.Session) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	return a.UserID == b.UserID
}
