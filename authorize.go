// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/jschlyter/oidcendpoint/internal/consts"
	"github.com/jschlyter/oidcendpoint/internal/errorsx"
)

// AuthorizationEndpoint orchestrates the processing of authorization
// requests: validation, session binding, the authorization decision, response
// assembly and encoding. All collaborators are read-only during a request, a
// hosting system may serve many requests concurrently.
type AuthorizationEndpoint struct {
	Store   SessionStore
	Clients ClientStore
	Binding *SessionBindingEngine
	Authz   Authorizer
	Cookies CookieDealer
	Builder *AuthorizationResponseBuilder
	Encoder *ResponseModeEncoder

	Config Configurator
}

// NewAuthorizationEndpoint wires an AuthorizationEndpoint from its
// collaborators, using the default cookie dealer.
func NewAuthorizationEndpoint(config Configurator, store SessionStore, clients ClientStore, broker *AuthnBroker, authz Authorizer, idTokens IDTokenStrategy) *AuthorizationEndpoint {
	return &AuthorizationEndpoint{
		Store:   store,
		Clients: clients,
		Binding: &SessionBindingEngine{Broker: broker, Store: store, Config: config},
		Authz:   authz,
		Cookies: NewDefaultCookieDealer(config),
		Builder: &AuthorizationResponseBuilder{Store: store, IDTokens: idTokens, Config: config},
		Encoder: &ResponseModeEncoder{Config: config},
		Config:  config,
	}
}

// Authorize processes one authorization request. The cookie argument is the
// raw value of the session cookie, empty when absent; authorization carries
// optional caller supplied credentials for the authentication method. The
// returned response is terminal: a success redirect or form post, an
// authentication challenge, or an error, never an unhandled failure.
func (e *AuthorizationEndpoint) Authorize(ctx context.Context, form url.Values, cookie string, authorization string) *AuthorizeResponse {
	log := e.Config.GetLogger(ctx)

	request := NewAuthorizationRequest(form)

	client, err := e.Clients.GetClient(ctx, request.ClientID)
	if err != nil {
		log.Error().Str("client_id", request.ClientID).Msg("client not in client database")

		return e.directError(ctx, request, ErrUnauthorizedClient.WithHint("The client is unknown."))
	}

	if request, err = ResolveRequestObject(ctx, request, e.Config); err != nil {
		log.Error().Err(err).Str("client_id", request.ClientID).Msg("resolving the request object failed")

		return e.directError(ctx, request, err)
	}

	if err = ValidateResponseTypes(request, client); err != nil {
		log.Error().Err(err).Str("client_id", request.ClientID).Strs("response_type", request.ResponseTypes).Msg("unregistered response type")

		return e.directError(ctx, request, err)
	}

	returnURI, err := GetRedirectURI(request, client)
	if err != nil {
		log.Error().Err(err).Str("client_id", request.ClientID).Msg("faulty redirect_uri")

		return e.directError(ctx, request, ErrInvalidRequest.WithDescription(err.Error()))
	}

	fragmentEnc := errorFragmentEncoding(request)

	if err = e.validateParameters(ctx, request); err != nil {
		log.Error().Err(err).Str("client_id", request.ClientID).Msg("illegal request parameters")

		return e.redirectedError(ctx, request, returnURI, fragmentEnc, err)
	}

	bound, err := e.Binding.Bind(ctx, request, client, cookie, authorization)
	if err != nil {
		return e.redirectedError(ctx, request, returnURI, fragmentEnc, err)
	}

	if bound.NeedsChallenge() {
		challenge, err := bound.Method.Invoke(ctx, bound.Args)
		if err != nil {
			log.Error().Err(err).Str("client_id", request.ClientID).Msg("authentication method failed")

			return &AuthorizeResponse{
				Status: http.StatusInternalServerError,
				Body:   fmt.Sprintf("Internal error: %v", err),
			}
		}

		return &AuthorizeResponse{
			Status: challenge.Status,
			Header: challenge.Header,
			Body:   challenge.Body,
		}
	}

	sid, err := e.Store.CreateSession(ctx, *bound.AuthnEvent, request)
	if err != nil {
		log.Error().Err(err).Str("client_id", request.ClientID).Msg("creating the session failed")

		return e.redirectedError(ctx, request, returnURI, fragmentEnc, ErrServerError.WithWrap(err).WithDebugError(err))
	}

	permission, err := e.Authz.Authorize(ctx, bound.User, request.ClientID)
	if err != nil {
		log.Info().Err(err).Str("client_id", request.ClientID).Msg("authorization denied")

		rfc := ErrAccessDenied.WithWrap(err).WithDebugError(err)
		if errors.Is(err, ErrAuthenticationTooOld) {
			rfc = rfc.WithHint("Authentication too old.")
		}

		return e.redirectedError(ctx, request, returnURI, fragmentEnc, rfc)
	}

	if err = e.Store.UpdateSession(ctx, sid, SessionUpdate{Permission: permission}); err != nil {
		log.Error().Err(err).Str("client_id", request.ClientID).Msg("recording the permission failed")

		return e.redirectedError(ctx, request, returnURI, fragmentEnc, ErrServerError.WithWrap(err).WithDebugError(err))
	}

	revoked, err := e.Store.IsSessionRevoked(ctx, sid)

	switch {
	case err != nil:
		log.Error().Err(err).Str("client_id", request.ClientID).Msg("checking session revocation failed")

		return e.redirectedError(ctx, request, returnURI, fragmentEnc, ErrServerError.WithWrap(err).WithDebugError(err))
	case revoked:
		log.Info().Str("client_id", request.ClientID).Msg("session is revoked")

		return e.redirectedError(ctx, request, returnURI, fragmentEnc, ErrAccessDenied.WithHint("Session is revoked."))
	}

	assembled, err := e.Builder.Build(ctx, request, sid)
	if err != nil {
		log.Error().Err(err).Str("client_id", request.ClientID).Msg("assembling the response failed")

		return e.redirectedError(ctx, request, returnURI, fragmentEnc, ErrServerError.WithWrap(err).WithDebugError(err))
	}

	response := &AuthorizeResponse{
		Parameters:       assembled.Parameters,
		FragmentEncoding: assembled.FragmentEncoding,
		ReturnURI:        returnURI,
	}

	if !assembled.Failed {
		if err = e.finalize(ctx, request, response, bound.User, sid, returnURI); err != nil {
			log.Error().Err(err).Str("client_id", request.ClientID).Msg("finalizing the response failed")

			return e.redirectedError(ctx, request, returnURI, fragmentEnc, ErrServerError.WithWrap(err).WithDebugError(err))
		}
	}

	if err = e.Encoder.Encode(ctx, response, request.ResponseMode); err != nil {
		log.Error().Err(err).Str("client_id", request.ClientID).Str("response_mode", request.ResponseMode).Msg("illegal response mode")

		return e.redirectedError(ctx, request, returnURI, response.FragmentEncoding, err)
	}

	return response
}

// validateParameters enforces the prompt whitelist and the minimum state
// entropy. It runs after redirect validation so failures travel to the
// established redirect URI.
func (e *AuthorizationEndpoint) validateParameters(ctx context.Context, request *AuthorizationRequest) error {
	allowed := Arguments(e.Config.GetAllowedPrompts(ctx))

	for _, prompt := range request.Prompt {
		if !allowed.Has(prompt) {
			return errorsx.WithStack(ErrInvalidRequest.
				WithHintf("The requested prompt value '%s' either contains unknown, unsupported, or prohibited prompt values.", strings.Join(request.Prompt, " ")).
				WithDebugf("The permitted prompt values are '%s'.", strings.Join(allowed, "', '")))
		}
	}

	if request.Prompt.Has(consts.PromptNone) && len(request.Prompt) > 1 {
		return errorsx.WithStack(ErrInvalidRequest.WithHint("Parameter 'prompt' was set to 'none', but contains other values as well which is not allowed."))
	}

	if entropy := e.Config.GetMinParameterEntropy(ctx); request.State != "" && len(request.State) < entropy {
		return errorsx.WithStack(ErrInvalidRequest.WithHintf("Request parameter 'state' must be at least be %d characters long to ensure sufficient entropy.", entropy))
	}

	return nil
}

// finalize issues the session cookie, computes session_state when session
// management is enabled and injects the issuer binding. The issuer and
// client_id are set last and override any parameter assembled earlier with
// the same name.
func (e *AuthorizationEndpoint) finalize(ctx context.Context, request *AuthorizationRequest, response *AuthorizeResponse, user, sid, returnURI string) error {
	sessionCookie, err := e.Cookies.CreateSessionCookie(ctx, user, sid, request.State)
	if err != nil {
		return err
	}

	response.Cookies = append(response.Cookies, sessionCookie)

	if iframe := e.Config.GetCheckSessionIFrame(ctx); iframe != "" {
		event, err := e.Store.LastAuthnEvent(ctx, sid)
		if err != nil {
			return err
		}

		salt := RandomString(16)
		timestamp := strconv.FormatInt(event.AuthnTime.Unix(), 10)

		stateCookie, err := e.Cookies.CreateSessionStateCookie(ctx, timestamp)
		if err != nil {
			return err
		}

		response.Cookies = append(response.Cookies, stateCookie)
		response.Parameters.Set(consts.FormParameterSessionState, ComputeSessionState(timestamp, salt, request.ClientID, returnURI))
	}

	response.Parameters.Set(consts.FormParameterIssuer, e.Config.GetIssuer(ctx))
	response.Parameters.Set(consts.FormParameterClientID, request.ClientID)

	return nil
}

// directError returns an error response written directly, used while no
// trusted redirect URI is established.
func (e *AuthorizationEndpoint) directError(ctx context.Context, request *AuthorizationRequest, err error) *AuthorizeResponse {
	rfc := e.rfcError(ctx, request, err)

	header := http.Header{}
	header.Set(consts.HeaderContentType, consts.ContentTypeApplicationJSON)

	data, merr := json.Marshal(rfc)
	if merr != nil {
		return &AuthorizeResponse{
			Header: header,
			Status: http.StatusInternalServerError,
			Body:   `{"error":"server_error"}`,
		}
	}

	return &AuthorizeResponse{
		Header: header,
		Status: rfc.CodeField,
		Body:   string(data),
	}
}

// redirectedError returns an error response transported to the established
// redirect URI the same way a success response would be.
func (e *AuthorizationEndpoint) redirectedError(ctx context.Context, request *AuthorizationRequest, returnURI string, fragmentEnc bool, err error) *AuthorizeResponse {
	rfc := e.rfcError(ctx, request, err)

	parameters := rfc.ToValues()

	if request.State != "" {
		parameters.Set(consts.FormParameterState, request.State)
	}

	return &AuthorizeResponse{
		Parameters:       parameters,
		FragmentEncoding: fragmentEnc,
		ReturnURI:        returnURI,
	}
}

func (e *AuthorizationEndpoint) rfcError(ctx context.Context, request *AuthorizationRequest, err error) *RFC6749Error {
	return ErrorToRFC6749Error(err).
		WithExposeDebug(e.Config.GetSendDebugMessagesToClients(ctx)).
		WithLocalizer(e.Config.GetMessageCatalog(ctx), requestLanguage(request))
}

// errorFragmentEncoding derives the transport of error responses from the
// requested response types, code and none travel in the query, everything
// else in the fragment.
func errorFragmentEncoding(request *AuthorizationRequest) bool {
	rtype := request.ResponseTypes.Unique()

	return !(rtype.ExactOne(consts.ResponseTypeAuthorizationCodeFlow) || rtype.ExactOne(consts.ResponseTypeNone) || len(rtype) == 0)
}

// requestLanguage resolves the language for error messages from ui_locales.
func requestLanguage(request *AuthorizationRequest) language.Tag {
	for _, locale := range request.UILocales {
		if tag, err := language.Parse(locale); err == nil {
			return tag
		}
	}

	return language.English
}
