// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"github.com/canonical/society-gate/internal/types"
	"github.com/canonical/society-gate/pkg/resolver"
)

// View is the screen model served to the frontend: one screen name per
// resolver phase, the payload for that screen, and the actions it offers.
type View struct {
	Screen  string        `json:"screen"`
	Error   string        `json:"error,omitempty"`
	Mode    string        `json:"mode,omitempty"`
	Society *SocietyView  `json:"society,omitempty"`
	Tenant  *TenantView   `json:"tenant,omitempty"`
	Options []SocietyView `json:"options,omitempty"`
	Pending *PendingView  `json:"pending,omitempty"`
	Actions []string      `json:"actions"`
}

type SocietyView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TenantView struct {
	SocietyID string `json:"society_id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Email     string `json:"email,omitempty"`
}

type PendingView struct {
	SocietyName string `json:"society_name"`
	SocietySlug string `json:"society_slug"`
	FirstSeason string `json:"first_season"`
}

// NewView maps a resolver state to its screen. adminSignIn layers a
// sign-in affordance on top of the public view when enabled.
func NewView(state resolver.State, adminSignIn bool) View {
	v := View{
		Screen: string(state.Phase),
		Error:  state.Err,
		Mode:   state.Mode,
	}

	if state.Society != nil {
		v.Society = societyView(state.Society)
	}
	if state.Tenant != nil {
		v.Tenant = tenantView(state.Tenant)
	}
	if state.Pending != nil {
		v.Pending = &PendingView{
			SocietyName: state.Pending.SocietyName,
			SocietySlug: state.Pending.SocietySlug,
			FirstSeason: state.Pending.FirstSeason,
		}
	}
	for _, option := range state.Options {
		v.Options = append(v.Options, *societyView(option))
	}

	v.Actions = actionsFor(state, adminSignIn)
	return v
}

func actionsFor(state resolver.State, adminSignIn bool) []string {
	switch state.Phase {
	case resolver.PhaseConfigError:
		return []string{}
	case resolver.PhaseAuthLoading, resolver.PhaseTenantLoading:
		return []string{"sign_out"}
	case resolver.PhaseSignedOut:
		return []string{"sign_in", "request_onboarding"}
	case resolver.PhasePublicViewing:
		if adminSignIn {
			return []string{"sign_in"}
		}
		return []string{}
	case resolver.PhaseNoAccess:
		return []string{"create_society", "sign_out"}
	case resolver.PhaseOnboarding:
		return []string{"create_society", "sign_out"}
	case resolver.PhasePostLoginChoice:
		return []string{"finalize", "proceed", "sign_out"}
	case resolver.PhaseCreatingSeason:
		return []string{"create_season", "proceed", "sign_out"}
	case resolver.PhasePicker:
		return []string{"pick", "sign_out"}
	case resolver.PhaseResolved:
		if state.Tenant != nil && state.Tenant.Role == types.RoleCaptain {
			return []string{"create_season", "sign_out"}
		}
		return []string{"sign_out"}
	default:
		return []string{"sign_out"}
	}
}

func societyView(s *types.Society) *SocietyView {
	return &SocietyView{ID: s.ID, Name: s.Name, Slug: s.Slug}
}

func tenantView(t *types.ActiveTenant) *TenantView {
	v := &TenantView{
		SocietyID: t.SocietyID,
		Slug:      t.Slug,
		Name:      t.Name,
		Role:      t.Role,
	}
	if t.Session != nil {
		v.Email = t.Session.Email
	}
	return v
}
