// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/society-gate/internal/types"
)

type ClientInterface interface {
	// CurrentSession is a point-in-time read. It fails soft: transport
	// errors and expired tokens both read as "no session".
	CurrentSession(ctx context.Context) (*types.Session, error)
	// SignInWithMagicLink initiates passwordless sign-in. The session
	// materialises later through the watcher, never through this call.
	SignInWithMagicLink(ctx context.Context, email, redirectTo string) error
	// CompleteMagicLink submits the emailed code and establishes the session.
	CompleteMagicLink(ctx context.Context, code string) error
	// SignOut is best-effort; local session state is cleared regardless of
	// the remote call's outcome.
	SignOut(ctx context.Context)
}
