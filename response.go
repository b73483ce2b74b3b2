// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jschlyter/oidcendpoint/internal/consts"
	"github.com/jschlyter/oidcendpoint/internal/errorsx"
)

// AssembledResponse is the assembled authorization response parameter set
// together with its encoding law. It is built once and not mutated after
// assembly, except for the issuer binding the orchestrator injects last.
type AssembledResponse struct {
	Parameters url.Values

	// FragmentEncoding is true when the parameters must travel in the URI
	// fragment rather than the query.
	FragmentEncoding bool

	// Failed is set when assembly degraded to an error response, Parameters
	// then carry the error shape.
	Failed bool
}

// AuthorizeResponse is the finalized, encoded authorization response handed
// back to the transport layer.
type AuthorizeResponse struct {
	Header     http.Header
	Parameters url.Values

	// ReturnURI is the redirect target, empty when the response is written
	// directly.
	ReturnURI string

	FragmentEncoding bool

	Cookies []*http.Cookie

	// Body is set for form post responses, direct errors and inline
	// challenges.
	Body string

	// Status is the HTTP status of body carrying responses, redirects always
	// use 303 See Other.
	Status int
}

// AuthorizationResponseBuilder assembles the response parameters for an
// authenticated, authorized session.
type AuthorizationResponseBuilder struct {
	Store    SessionStore
	IDTokens IDTokenStrategy

	Config interface {
		LoggerProvider
	}
}

// Build assembles the response for the given session. Code and token are
// resolved before the id token because its hash bindings depend on their
// final values. Minting failures and unsupported response types degrade to an
// error shaped response rather than an error return; only store failures
// escalate.
func (b *AuthorizationResponseBuilder) Build(ctx context.Context, request *AuthorizationRequest, sid string) (*AssembledResponse, error) {
	parameters := url.Values{}

	if request.State != "" {
		parameters.Set(consts.FormParameterState, request.State)
	}

	rtype := request.ResponseTypes.Unique()

	if rtype.ExactOne(consts.ResponseTypeNone) {
		return &AssembledResponse{Parameters: parameters, FragmentEncoding: false}, nil
	}

	fragmentEnc := !rtype.ExactOne(consts.ResponseTypeAuthorizationCodeFlow)

	session, err := b.Store.GetSession(ctx, sid)
	if err != nil {
		return nil, errorsx.WithStack(err)
	}

	if len(request.Scope) > 0 {
		parameters.Set(consts.FormParameterScope, request.Scope.String())
	}

	var handled Arguments

	var code string

	if rtype.Has(consts.ResponseTypeAuthorizationCodeFlow) {
		code = session.Code
		parameters.Set(consts.FormParameterAuthorizationCode, code)
		handled = append(handled, consts.ResponseTypeAuthorizationCodeFlow)
	} else {
		cleared := ""
		if err = b.Store.UpdateSession(ctx, sid, SessionUpdate{Code: &cleared}); err != nil {
			return nil, errorsx.WithStack(err)
		}
	}

	if rtype.Has(consts.ResponseTypeImplicitFlowToken) {
		upgrade, err := b.Store.UpgradeToToken(ctx, sid, false)
		if err != nil {
			return nil, errorsx.WithStack(err)
		}

		if err = upgrade.ApplyTo(parameters); err != nil {
			return nil, err
		}

		handled = append(handled, consts.ResponseTypeImplicitFlowToken)
	}

	accessToken := parameters.Get(consts.FormParameterAccessToken)

	if rtype.Has(consts.ResponseTypeImplicitFlowIDToken) {
		mint := IDTokenRequest{Session: session, Request: request}

		switch {
		case rtype.Has(consts.ResponseTypeAuthorizationCodeFlow) && rtype.Has(consts.ResponseTypeImplicitFlowToken):
			mint.Code, mint.AccessToken = code, accessToken
		case rtype.Has(consts.ResponseTypeAuthorizationCodeFlow):
			mint.Code = code
		case rtype.Has(consts.ResponseTypeImplicitFlowToken):
			mint.AccessToken = accessToken
		}

		if rtype.ExactOne(consts.ResponseTypeImplicitFlowIDToken) {
			mint.UserClaims = true
		}

		idToken, err := b.IDTokens.MintIDToken(ctx, mint)
		if err != nil {
			log := b.Config.GetLogger(ctx)
			log.Warn().Err(err).Str("client_id", request.ClientID).Msg("minting id token failed")

			rfc := ErrInvalidRequest.WithDescription("Could not sign/encrypt id_token")

			return &AssembledResponse{Parameters: rfc.ToValues(), FragmentEncoding: fragmentEnc, Failed: true}, nil
		}

		parameters.Set(consts.FormParameterIDToken, idToken)

		if err = b.Store.UpdateSession(ctx, sid, SessionUpdate{IDToken: &idToken}); err != nil {
			return nil, errorsx.WithStack(err)
		}

		handled = append(handled, consts.ResponseTypeImplicitFlowIDToken)
	}

	for _, requested := range rtype {
		if !handled.Has(requested) {
			rfc := ErrInvalidRequest.WithDescription("unsupported_response_type")

			return &AssembledResponse{Parameters: rfc.ToValues(), FragmentEncoding: fragmentEnc, Failed: true}, nil
		}
	}

	return &AssembledResponse{Parameters: parameters, FragmentEncoding: fragmentEnc}, nil
}
