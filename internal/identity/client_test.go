// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/monitoring"
	"github.com/canonical/society-gate/internal/tracing"
)

const loginFlowJSON = `{
	"id": "flow-1",
	"type": "api",
	"expires_at": "2027-01-01T00:00:00Z",
	"issued_at": "2026-01-01T00:00:00Z",
	"request_url": "http://localhost/self-service/login/api",
	"state": "choose_method",
	"ui": {"action": "http://localhost", "method": "POST", "nodes": []}
}`

func TestSignInWithMagicLinkSubmitOutcomes(t *testing.T) {
	tests := []struct {
		name         string
		submitStatus int
		expectErr    bool
	}{
		{
			// the provider rejects the identifier-only submission with a
			// check-your-email flow state, the email is on its way
			name:         "sent email flow state",
			submitStatus: http.StatusBadRequest,
			expectErr:    false,
		},
		{
			name:         "provider failure",
			submitStatus: http.StatusInternalServerError,
			expectErr:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if r.Method == http.MethodGet {
					fmt.Fprint(w, loginFlowJSON)
					return
				}
				w.WriteHeader(test.submitStatus)
				fmt.Fprint(w, `{"error": {"message": "submit rejected"}}`)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			err := c.SignInWithMagicLink(context.Background(), "a@example.com", "http://localhost/golf/")

			if test.expectErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected success, got %v", err)
			}
			if c.flowID != "flow-1" {
				t.Fatalf("expected stored flow id flow-1, got %q", c.flowID)
			}
		})
	}
}

func TestSignInWithMagicLinkRejectsInvalidEmail(t *testing.T) {
	c := NewClient("http://localhost:0", tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	err := c.SignInWithMagicLink(context.Background(), "not-an-email", "http://localhost/golf/")
	if err != ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}
