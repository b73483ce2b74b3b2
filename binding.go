// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"

	"github.com/jschlyter/oidcendpoint/internal/consts"
	"github.com/jschlyter/oidcendpoint/internal/errorsx"
)

// SessionLiveness is the state of the session an identity points at.
type SessionLiveness int

const (
	// SessionAbsent means no session exists for the identity.
	SessionAbsent SessionLiveness = iota

	// SessionActive means the session exists and has not been revoked.
	SessionActive

	// SessionRevoked means the session exists but was revoked.
	SessionRevoked
)

// BindingResult is the outcome of binding an authorization request to a
// session. Either Method and Args are set and the user must be challenged, or
// AuthnEvent, Identity and User describe the existing authentication that
// satisfies the request.
type BindingResult struct {
	Method AuthenticationMethod
	Args   AuthnArgs

	AuthnEvent *AuthnEvent
	Identity   *Identity
	User       string
}

// NeedsChallenge reports whether a fresh authentication is required.
func (r *BindingResult) NeedsChallenge() bool {
	return r.Method != nil
}

// SessionBindingEngine decides whether an existing session satisfies an
// authorization request or a fresh authentication challenge is required.
type SessionBindingEngine struct {
	Broker *AuthnBroker
	Store  SessionStore

	Config interface {
		ClockConfigProvider
		LoggerProvider
	}
}

// Bind selects the authentication method for the request and checks the
// presented authentication state against it. It fails with access_denied when
// no method qualifies and with login_required when authentication is needed
// but prompt=none forbids it.
func (e *SessionBindingEngine) Bind(ctx context.Context, request *AuthorizationRequest, client Client, cookie string, authorization string) (*BindingResult, error) {
	log := e.Config.GetLogger(ctx)

	ref, err := e.Broker.PickMethod(request)
	if err != nil {
		return nil, err
	}

	var maxAge int64
	if request.Form.Get(consts.FormParameterUserPasswordAnswer) != "true" {
		maxAge = request.MaxAge()
	}

	identity, authnTime, err := ref.Method.AuthenticatedAs(ctx, cookie, authorization, maxAge)
	if err != nil {
		log.Info().Err(err).Str("client_id", request.ClientID).Msg("no active authentication")

		identity = nil
	}

	if identity != nil && identity.SID != "" {
		switch e.liveness(ctx, identity.SID) {
		case SessionAbsent, SessionRevoked:
			identity = nil
		}
	}

	args := e.gatherArgs(request, ref, client)

	if identity == nil {
		if request.Prompt.Has(consts.PromptNone) {
			return nil, errorsx.WithStack(ErrLoginRequired)
		}

		return &BindingResult{Method: ref.Method, Args: args}, nil
	}

	log.Debug().Str("client_id", request.ClientID).Str("acr", ref.ACR).Msg("active authentication")

	if reAuthenticate(request, ref.Method) {
		return &BindingResult{Method: ref.Method, Args: args}, nil
	}

	user := identity.UID

	if proposed := request.ProposedSubject(); proposed != "" {
		sids, err := e.Store.SIDsBySubject(ctx, proposed)
		if err == nil && len(sids) > 0 {
			if event, err := e.Store.LastAuthnEvent(ctx, sids[len(sids)-1]); err == nil && user != event.UID {
				log.Debug().Str("client_id", request.ClientID).Msg("authenticated user does not match proposed subject")

				if request.Prompt.Has(consts.PromptNone) {
					return nil, errorsx.WithStack(ErrLoginRequired)
				}

				return &BindingResult{Method: ref.Method, Args: args}, nil
			}
		}
	}

	event := &AuthnEvent{
		UID:       identity.UID,
		Salt:      identity.Salt,
		ACR:       ref.ACR,
		AuthnTime: authnTime,
	}

	return &BindingResult{AuthnEvent: event, Identity: identity, User: user}, nil
}

// liveness resolves the state of the session with the given id.
func (e *SessionBindingEngine) liveness(ctx context.Context, sid string) SessionLiveness {
	session, err := e.Store.GetSession(ctx, sid)
	if err != nil || session == nil {
		return SessionAbsent
	}

	if session.Revoked {
		return SessionRevoked
	}

	return SessionActive
}

// gatherArgs collects everything the authentication method needs to render
// its challenge and continue the request afterwards.
func (e *SessionBindingEngine) gatherArgs(request *AuthorizationRequest, ref MethodRef, client Client) AuthnArgs {
	args := AuthnArgs{
		ACR:       ref.ACR,
		Query:     request.ToValues(),
		ReturnURI: request.RedirectURI,
		AsUser:    request.ProposedSubject(),
		UILocales: request.UILocales,
		ACRValues: request.ACRValues,
	}

	if branded, ok := client.(BrandedClient); ok {
		args.PolicyURI = branded.GetPolicyURI()
		args.LogoURI = branded.GetLogoURI()
		args.TermsOfServiceURI = branded.GetTermsOfServiceURI()
	}

	return args
}

// reAuthenticate reports whether prompt=login demands a fresh authentication
// even though an active one exists.
func reAuthenticate(request *AuthorizationRequest, method AuthenticationMethod) bool {
	return request.Prompt.Has(consts.PromptLogin) && method.Done(request)
}
