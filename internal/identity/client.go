// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"sync"

	ory "github.com/ory/client-go"

	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/monitoring"
	"github.com/canonical/society-gate/internal/tracing"
	"github.com/canonical/society-gate/internal/types"
)

var ErrInvalidEmail = errors.New("invalid email address")

var _ ClientInterface = (*Client)(nil)

// Client wraps the identity provider's public self-service API. It holds the
// session token and the in-flight login flow id; both are cleared on sign-out.
type Client struct {
	client *ory.APIClient

	mu           sync.Mutex
	sessionToken string
	flowID       string
	flowEmail    string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(publicURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: publicURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) CurrentSession(ctx context.Context) (*types.Session, error) {
	ctx, span := c.tracer.Start(ctx, "identity.CurrentSession")
	defer span.End()

	c.mu.Lock()
	token := c.sessionToken
	c.mu.Unlock()

	if token == "" {
		return nil, nil
	}

	session, _, err := c.client.FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	if err != nil {
		// Expired, revoked or unreachable all read as signed out.
		c.logger.Debugf("session lookup failed, treating as no session: %v", err)
		return nil, nil
	}

	if session.Identity == nil {
		return nil, nil
	}

	return &types.Session{
		UserID: session.Identity.Id,
		Email:  emailFromTraits(session.Identity.Traits),
	}, nil
}

func (c *Client) SignInWithMagicLink(ctx context.Context, email, redirectTo string) error {
	ctx, span := c.tracer.Start(ctx, "identity.SignInWithMagicLink")
	defer span.End()

	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}

	c.logger.Security().AuthnAttempt(email)

	flow, _, err := c.client.FrontendAPI.CreateNativeLoginFlow(ctx).ReturnTo(redirectTo).Execute()
	if err != nil {
		return fmt.Errorf("failed to create login flow: %w", err)
	}

	method := ory.NewUpdateLoginFlowWithCodeMethod("", "code")
	method.Identifier = &email

	_, r, err := c.client.FrontendAPI.UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(ory.UpdateLoginFlowWithCodeMethodAsUpdateLoginFlowBody(method)).
		Execute()
	// The provider answers the code submission step with a 400 "please
	// check your email" flow state; the email is on its way then. Anything
	// else, transport failures included, means no email was sent.
	if err != nil && (r == nil || r.StatusCode != http.StatusBadRequest) {
		return fmt.Errorf("failed to request sign-in code: %w", err)
	}

	c.mu.Lock()
	c.flowID = flow.Id
	c.flowEmail = email
	c.mu.Unlock()

	return nil
}

func (c *Client) CompleteMagicLink(ctx context.Context, code string) error {
	ctx, span := c.tracer.Start(ctx, "identity.CompleteMagicLink")
	defer span.End()

	c.mu.Lock()
	flowID := c.flowID
	email := c.flowEmail
	c.mu.Unlock()

	if flowID == "" {
		return fmt.Errorf("no sign-in flow in progress")
	}

	method := ory.NewUpdateLoginFlowWithCodeMethod("", "code")
	method.Identifier = &email
	method.Code = &code

	login, _, err := c.client.FrontendAPI.UpdateLoginFlow(ctx).
		Flow(flowID).
		UpdateLoginFlowBody(ory.UpdateLoginFlowWithCodeMethodAsUpdateLoginFlowBody(method)).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to complete sign-in: %w", err)
	}

	c.mu.Lock()
	if login.SessionToken != nil {
		c.sessionToken = *login.SessionToken
	}
	c.flowID = ""
	c.flowEmail = ""
	c.mu.Unlock()

	return nil
}

func (c *Client) SignOut(ctx context.Context) {
	ctx, span := c.tracer.Start(ctx, "identity.SignOut")
	defer span.End()

	c.mu.Lock()
	token := c.sessionToken
	c.sessionToken = ""
	c.flowID = ""
	c.flowEmail = ""
	c.mu.Unlock()

	if token == "" {
		return
	}

	_, err := c.client.FrontendAPI.PerformNativeLogout(ctx).
		PerformNativeLogoutBody(ory.PerformNativeLogoutBody{SessionToken: token}).
		Execute()
	if err != nil {
		// Local state is already cleared; the remote session will expire.
		c.logger.Warnf("remote logout failed: %v", err)
	}
}

func emailFromTraits(traits interface{}) string {
	if m, ok := traits.(map[string]interface{}); ok {
		if e, ok := m["email"].(string); ok {
			return e
		}
	}
	return ""
}
