// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package gate is the HTTP surface of the auth and tenant-resolution shell.
// It renders the resolver state as a screen model and feeds user actions
// back into the resolver and the onboarding orchestrator.
package gate

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/society-gate/internal/identity"
	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/monitoring"
	"github.com/canonical/society-gate/internal/routing"
	"github.com/canonical/society-gate/internal/tracing"
	"github.com/canonical/society-gate/pkg/onboarding"
	"github.com/canonical/society-gate/pkg/resolver"
)

type API struct {
	resolver     ResolverInterface
	identity     IdentityInterface
	orchestrator onboarding.Orchestrator
	seasons      SeasonInterface
	routes       *routing.Resolver
	siteURL      string
	adminSignIn  bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	res ResolverInterface,
	id IdentityInterface,
	orchestrator onboarding.Orchestrator,
	seasons SeasonInterface,
	routes *routing.Resolver,
	siteURL string,
	adminSignIn bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.resolver = res
	a.identity = id
	a.orchestrator = orchestrator
	a.seasons = seasons
	a.routes = routes
	a.siteURL = siteURL
	a.adminSignIn = adminSignIn

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/state", a.handleState)
	mux.Post("/api/v0/signin", a.handleSignIn)
	mux.Post("/api/v0/signin/complete", a.handleSignInComplete)
	mux.Post("/api/v0/signout", a.handleSignOut)
	mux.Post("/api/v0/pick", a.handlePick)
	mux.Post("/api/v0/proceed", a.handleProceed)
	mux.Post("/api/v0/societies", a.handleCreateSociety)
	mux.Post("/api/v0/societies/finalize", a.handleFinalize)
	mux.Post("/api/v0/seasons/begin", a.handleBeginSeason)
	mux.Post("/api/v0/seasons", a.handleCreateSeason)
}

// handleState returns the current screen. When the caller supplies its URL
// via the path and query parameters, the route is fed to the resolver
// first; the response may still show the previous screen while the new
// pass runs, clients poll until it settles.
func (a *API) handleState(w http.ResponseWriter, r *http.Request) {
	if path := r.URL.Query().Get("path"); path != "" {
		a.resolver.SetRoute(a.routes.Resolve(path, r.URL.Query().Get("query")))
	}

	a.writeJSON(w, http.StatusOK, NewView(a.resolver.Snapshot(), a.adminSignIn))
}

func (a *API) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := a.identity.SignInWithMagicLink(r.Context(), body.Email, a.siteURL); err != nil {
		a.writeMappedError(w, err)
		return
	}

	a.writeJSON(w, http.StatusAccepted, map[string]string{"status": "email_sent"})
}

func (a *API) handleSignInComplete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Code == "" {
		a.writeError(w, http.StatusBadRequest, errors.New("code is required"))
		return
	}

	if err := a.identity.CompleteMagicLink(r.Context(), body.Code); err != nil {
		a.writeError(w, http.StatusBadRequest, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]string{"status": "signed_in"})
}

func (a *API) handleSignOut(w http.ResponseWriter, r *http.Request) {
	a.identity.SignOut(r.Context())
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}

func (a *API) handlePick(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SocietyID string `json:"society_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.SocietyID == "" {
		a.writeError(w, http.StatusBadRequest, errors.New("society_id is required"))
		return
	}

	a.resolver.Pick(body.SocietyID)
	a.writeJSON(w, http.StatusAccepted, map[string]string{"status": "picked"})
}

func (a *API) handleProceed(w http.ResponseWriter, r *http.Request) {
	a.resolver.Proceed()
	a.writeJSON(w, http.StatusAccepted, map[string]string{"status": "proceeding"})
}

// notConfigured rejects actions that need the backend while the gate sits
// on the configuration-error screen; the directory is not usable then.
func (a *API) notConfigured(w http.ResponseWriter) bool {
	state := a.resolver.Snapshot()
	if state.Phase != resolver.PhaseConfigError {
		return false
	}

	a.writeError(w, http.StatusServiceUnavailable, errors.New("gate is not configured"))
	return true
}

func (a *API) handleCreateSociety(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "gate.API.handleCreateSociety")
	defer span.End()

	if a.notConfigured(w) {
		return
	}

	var form onboarding.SocietyForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		a.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	// session is optional here: deferred mode accepts anonymous requests
	// carrying an email in the form
	session, err := a.identity.CurrentSession(ctx)
	if err != nil {
		session = nil
	}

	societyID, err := a.orchestrator.Begin(ctx, session, form)
	if err != nil {
		a.writeMappedError(w, err)
		return
	}

	if societyID == "" {
		// deferred mode, creation completes after the magic link round trip
		a.writeJSON(w, http.StatusAccepted, map[string]string{"status": "pending"})
		return
	}

	a.resolver.SetPreferred(societyID)
	a.writeJSON(w, http.StatusCreated, map[string]string{"society_id": societyID})
}

func (a *API) handleFinalize(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "gate.API.handleFinalize")
	defer span.End()

	if a.notConfigured(w) {
		return
	}

	session, err := a.identity.CurrentSession(ctx)
	if err != nil || session == nil {
		a.writeError(w, http.StatusUnauthorized, errors.New("sign in to finish onboarding"))
		return
	}

	societyID, err := a.orchestrator.Finalize(ctx, session)
	if err != nil {
		a.writeMappedError(w, err)
		return
	}

	a.resolver.SetPreferred(societyID)
	a.writeJSON(w, http.StatusOK, map[string]string{"society_id": societyID})
}

func (a *API) handleBeginSeason(w http.ResponseWriter, r *http.Request) {
	a.resolver.BeginSeasonCreation()
	a.writeJSON(w, http.StatusAccepted, map[string]string{"status": "creating_season"})
}

func (a *API) handleCreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "gate.API.handleCreateSeason")
	defer span.End()

	if a.notConfigured(w) {
		return
	}

	session, err := a.identity.CurrentSession(ctx)
	if err != nil || session == nil {
		a.writeError(w, http.StatusUnauthorized, errors.New("sign in to create a season"))
		return
	}

	var body struct {
		SocietyID string `json:"society_id"`
		Label     string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	societyID := body.SocietyID
	if societyID == "" {
		if tenant := a.resolver.Snapshot().Tenant; tenant != nil {
			societyID = tenant.SocietyID
		}
	}
	if societyID == "" {
		a.writeError(w, http.StatusBadRequest, errors.New("no active society"))
		return
	}

	season, err := a.seasons.Create(ctx, session.UserID, societyID, body.Label)
	if err != nil {
		a.writeMappedError(w, err)
		return
	}

	a.resolver.Proceed()
	a.writeJSON(w, http.StatusCreated, map[string]string{
		"society_id": season.SocietyID,
		"season_id":  season.SeasonID,
		"label":      season.Label,
	})
}

func (a *API) writeMappedError(w http.ResponseWriter, err error) {
	var partial *onboarding.PartialWriteError

	switch {
	case errors.Is(err, onboarding.ErrValidation),
		errors.Is(err, onboarding.ErrInvalidInviteCode),
		errors.Is(err, onboarding.ErrInviteExhausted),
		errors.Is(err, identity.ErrInvalidEmail):
		a.writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, onboarding.ErrDuplicateSlug):
		a.writeError(w, http.StatusConflict, err)
	case errors.Is(err, onboarding.ErrNothingPending):
		a.writeError(w, http.StatusNotFound, err)
	case errors.As(err, &partial):
		// surfaced, never hidden: the caller may retry and clean up
		a.writeError(w, http.StatusInternalServerError, err)
	default:
		a.logger.Errorf("request failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, err error) {
	a.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
