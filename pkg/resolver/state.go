// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"sort"

	"github.com/canonical/society-gate/internal/types"
)

// Phase enumerates the mutually exclusive states of the resolution machine.
// Exactly one phase is active at any time.
type Phase string

const (
	PhaseConfigError     Phase = "config_error"
	PhaseAuthLoading     Phase = "auth_loading"
	PhaseSignedOut       Phase = "signed_out"
	PhasePublicViewing   Phase = "public_viewing"
	PhaseTenantLoading   Phase = "tenant_loading"
	PhaseNoAccess        Phase = "no_access"
	PhaseOnboarding      Phase = "onboarding"
	PhasePostLoginChoice Phase = "post_login_choice"
	PhaseCreatingSeason  Phase = "creating_season"
	PhasePicker          Phase = "picker"
	PhaseResolved        Phase = "resolved"
)

// State is the single source of truth handed to the presentation layer.
// Only the fields relevant to the active phase are populated.
type State struct {
	Phase   Phase
	Society *types.Society
	Tenant  *types.ActiveTenant
	Options []*types.Society
	Pending *types.PendingOnboarding
	Mode    string
	Err     string
}

// sortOptions orders picker entries by display name, byte order, falling
// back to slug then raw id when a name is absent.
func sortOptions(options []*types.Society) {
	sort.Slice(options, func(i, j int) bool {
		return optionKey(options[i]) < optionKey(options[j])
	})
}

func optionKey(s *types.Society) string {
	if s.Name != "" {
		return s.Name
	}
	if s.Slug != "" {
		return s.Slug
	}
	return s.ID
}
