// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for directory operations.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrNotViewable      = errors.New("society is not publicly viewable")
	ErrDuplicateKey     = errors.New("duplicate key violation")
	ErrPermissionDenied = errors.New("permission denied by backend policy")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation  = "23505"
	pgErrCodeForeignKey       = "23503"
	pgErrCodeInsufficientPriv = "42501"
)

// IsDuplicateKeyError checks if the error is a unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// IsPermissionDenied checks if the error is a row-level-security denial.
// Public lookups treat these identically to absent rows so that
// unauthenticated callers cannot probe for private societies.
func IsPermissionDenied(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeInsufficientPriv
	}
	return false
}
