// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInviteCode = errors.New("invalid invite code")
	ErrInviteExhausted   = errors.New("invite code exhausted")
	ErrDuplicateSlug     = errors.New("society slug already taken")
	ErrValidation        = errors.New("validation failed")
	ErrNothingPending    = errors.New("no pending onboarding request")
)

// PartialWriteError reports a multi-step creation that failed after one or
// more steps committed. Nothing is rolled back; the caller may retry, which
// can leave duplicate partial artifacts behind.
type PartialWriteError struct {
	Completed []string
	Err       error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("creation failed after completing %s: %v", strings.Join(e.Completed, ", "), e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
