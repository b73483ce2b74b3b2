// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	. "github.com/jschlyter/oidcendpoint"
	"github.com/jschlyter/oidcendpoint/storage"
)

type endpointFixture struct {
	endpoint *AuthorizationEndpoint
	store    *storage.MemoryStore
	config   *Config
	password *UserPasswordMethod
}

func newEndpointFixture(t *testing.T) *endpointFixture {
	t.Helper()

	config := &Config{
		Issuer:       "https://op.example.com",
		GlobalSecret: []byte("some-secret-thats-random-some-secret-thats-random-"),
		HashCost:     4,
		Clock:        NewFixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
	}

	store := storage.NewMemoryStoreWithClients(
		&DefaultClient{
			ID:            "client-1",
			RedirectURIs:  []string{"https://rp.example.com/cb"},
			ResponseTypes: []Arguments{{"code"}, {"code", "id_token", "token"}, {"id_token"}, {"none"}},
			Scopes:        Arguments{"openid", "profile"},
		},
	)

	password := newTestPasswordMethod(t, config.GetClock(context.Background()))

	broker := NewAuthnBroker(acrInternet)
	broker.Add(acrInternet, 0, &NoAuthn{User: "peter", Config: config})
	broker.Add(acrPassword, 10, password)

	strategy, _ := newTestIDTokenStrategy(t, nil)

	return &endpointFixture{
		endpoint: NewAuthorizationEndpoint(config, store, store, broker, &Implicit{Permission: "implicit"}, strategy),
		store:    store,
		config:   config,
		password: password,
	}
}

func TestAuthorizeCodeFlow(t *testing.T) {
	fixture := newEndpointFixture(t)

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code"},
		"scope":         {"openid"},
		"state":         {"af0ifjsldkj"},
	}, "", "")

	assert.Empty(t, response.Body)
	assert.Equal(t, "https://rp.example.com/cb", response.ReturnURI)
	assert.False(t, response.FragmentEncoding)

	assert.NotEmpty(t, response.Parameters.Get("code"))
	assert.Equal(t, "af0ifjsldkj", response.Parameters.Get("state"))
	assert.Equal(t, "openid", response.Parameters.Get("scope"))

	// The issuer binding is always present on success responses.
	assert.Equal(t, "https://op.example.com", response.Parameters.Get("iss"))
	assert.Equal(t, "client-1", response.Parameters.Get("client_id"))

	// One session was created and carries the granted permission.
	require.Len(t, fixture.store.Sessions, 1)
	for _, session := range fixture.store.Sessions {
		assert.Equal(t, "peter", session.UID)
		assert.Equal(t, []string{"implicit"}, session.Permission)
		assert.Equal(t, response.Parameters.Get("code"), session.Code)
	}

	// The session cookie round trips through the dealer.
	require.Len(t, response.Cookies, 1)
	decoded, err := NewDefaultCookieDealer(fixture.config).DecodeSessionCookie(context.Background(), response.Cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "peter", decoded.UID)
	assert.Equal(t, "af0ifjsldkj", decoded.State)
}

func TestAuthorizeHybridFlow(t *testing.T) {
	fixture := newEndpointFixture(t)

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code id_token token"},
		"scope":         {"openid"},
		"nonce":         {"n-0S6_WzA2Mj"},
	}, "", "")

	assert.Empty(t, response.Body)
	assert.True(t, response.FragmentEncoding)

	assert.NotEmpty(t, response.Parameters.Get("code"))
	assert.NotEmpty(t, response.Parameters.Get("access_token"))
	assert.Equal(t, "Bearer", response.Parameters.Get("token_type"))

	payload := decodeIDTokenPayload(t, response.Parameters.Get("id_token"))
	assert.Equal(t, "peter", gjson.Get(payload, "sub").String())
	assert.Equal(t, "n-0S6_WzA2Mj", gjson.Get(payload, "nonce").String())
	assert.Equal(t, LeftmostHash(response.Parameters.Get("code")), gjson.Get(payload, "c_hash").String())
	assert.Equal(t, LeftmostHash(response.Parameters.Get("access_token")), gjson.Get(payload, "at_hash").String())
}

func TestAuthorizeUnknownClient(t *testing.T) {
	fixture := newEndpointFixture(t)

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"nobody"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code"},
	}, "", "")

	assert.Equal(t, http.StatusBadRequest, response.Status)
	assert.Empty(t, response.ReturnURI)
	assert.Equal(t, "unauthorized_client", gjson.Get(response.Body, "error").String())
}

func TestAuthorizeUnregisteredResponseType(t *testing.T) {
	fixture := newEndpointFixture(t)

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"token"},
	}, "", "")

	assert.Equal(t, http.StatusBadRequest, response.Status)
	assert.Empty(t, response.ReturnURI)
	assert.Equal(t, "invalid_request", gjson.Get(response.Body, "error").String())
}

func TestAuthorizeFaultyRedirectURI(t *testing.T) {
	fixture := newEndpointFixture(t)

	for k, form := range []url.Values{
		// No redirect_uri at all.
		{
			"client_id":     {"client-1"},
			"response_type": {"code"},
		},
		// Unregistered base.
		{
			"client_id":     {"client-1"},
			"redirect_uri":  {"https://attacker.example.com/cb"},
			"response_type": {"code"},
		},
		// Extra query parameter.
		{
			"client_id":     {"client-1"},
			"redirect_uri":  {"https://rp.example.com/cb?extra=1"},
			"response_type": {"code"},
		},
	} {
		response := fixture.endpoint.Authorize(context.Background(), form, "", "")

		// Never redirect to an unverified URI.
		assert.Empty(t, response.ReturnURI, "case %d", k)
		assert.Equal(t, http.StatusBadRequest, response.Status, "case %d", k)
		assert.Equal(t, "invalid_request", gjson.Get(response.Body, "error").String(), "case %d", k)
	}
}

func TestAuthorizePromptNoneWithoutSession(t *testing.T) {
	fixture := newEndpointFixture(t)

	// The password method requires a cookie; none is presented.
	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code"},
		"acr_values":    {acrPassword},
		"prompt":        {"none"},
		"state":         {"af0ifjsldkj"},
	}, "", "")

	assert.Empty(t, response.Body)
	assert.Equal(t, "https://rp.example.com/cb", response.ReturnURI)
	assert.False(t, response.FragmentEncoding)
	assert.Equal(t, "login_required", response.Parameters.Get("error"))
	assert.Equal(t, "af0ifjsldkj", response.Parameters.Get("state"))
}

func TestAuthorizeChallenge(t *testing.T) {
	fixture := newEndpointFixture(t)

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code"},
		"acr_values":    {acrPassword},
	}, "", "")

	assert.Equal(t, http.StatusOK, response.Status)
	assert.Equal(t, "text/html; charset=utf-8", response.Header.Get("Content-Type"))
	assert.Contains(t, response.Body, `action="https://op.example.com/verify"`)

	// No session exists until the challenge is answered.
	assert.Empty(t, fixture.store.Sessions)
}

func TestAuthorizeChallengeCompletes(t *testing.T) {
	fixture := newEndpointFixture(t)
	ctx := context.Background()

	cookie, err := fixture.password.Dealer.CreateSessionCookie(ctx, "diana", "", "")
	require.NoError(t, err)

	response := fixture.endpoint.Authorize(ctx, url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code"},
		"acr_values":    {acrPassword},
		"upm_answer":    {"true"},
	}, cookie.Value, "")

	assert.Empty(t, response.Body)
	assert.NotEmpty(t, response.Parameters.Get("code"))

	require.Len(t, fixture.store.Sessions, 1)
	for _, session := range fixture.store.Sessions {
		assert.Equal(t, "diana", session.UID)
		assert.Equal(t, acrPassword, session.AuthnEvent.ACR)
	}
}

func TestAuthorizeRevokedSession(t *testing.T) {
	fixture := newEndpointFixture(t)

	// Revoke every session as soon as it is created.
	fixture.endpoint.Authz = revokingAuthorizer{store: fixture.store}

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code"},
	}, "", "")

	assert.Equal(t, "access_denied", response.Parameters.Get("error"))
	assert.Contains(t, response.Parameters.Get("error_description"), "Session is revoked.")
}

// revokingAuthorizer revokes the subject's sessions while deciding, modeling
// an out of band revocation racing the request.
type revokingAuthorizer struct {
	store *storage.MemoryStore
}

func (a revokingAuthorizer) Authorize(ctx context.Context, user string, clientID string) ([]string, error) {
	sids, _ := a.store.SIDsBySubject(ctx, user)
	for _, sid := range sids {
		_ = a.store.RevokeSession(ctx, sid)
	}

	return []string{"implicit"}, nil
}

func TestAuthorizeProhibitedPrompt(t *testing.T) {
	fixture := newEndpointFixture(t)
	fixture.config.AllowedPromptValues = []string{"none", "login"}

	for k, prompt := range []string{"select_account", "none login"} {
		response := fixture.endpoint.Authorize(context.Background(), url.Values{
			"client_id":     {"client-1"},
			"redirect_uri":  {"https://rp.example.com/cb"},
			"response_type": {"code"},
			"prompt":        {prompt},
			"state":         {"af0ifjsldkj"},
		}, "", "")

		// The prompt check runs after redirect validation, so the error
		// travels to the registered redirect URI.
		assert.Equal(t, "https://rp.example.com/cb", response.ReturnURI, "case %d", k)
		assert.Equal(t, "invalid_request", response.Parameters.Get("error"), "case %d", k)
		assert.Equal(t, "af0ifjsldkj", response.Parameters.Get("state"), "case %d", k)
		assert.Empty(t, fixture.store.Sessions, "case %d", k)
	}
}

func TestAuthorizeLowEntropyState(t *testing.T) {
	fixture := newEndpointFixture(t)

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code"},
		"state":         {"short"},
	}, "", "")

	assert.Equal(t, "invalid_request", response.Parameters.Get("error"))
	assert.Contains(t, response.Parameters.Get("error_description"), "entropy")
	assert.Empty(t, fixture.store.Sessions)
}

func TestAuthorizeRevocationCheckFailure(t *testing.T) {
	fixture := newEndpointFixture(t)
	fixture.endpoint.Store = failingRevocationStore{fixture.store}

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code"},
	}, "", "")

	// An infrastructure failure is not a denial.
	assert.Equal(t, "server_error", response.Parameters.Get("error"))
}

// failingRevocationStore fails the revocation re-check with an infrastructure
// error.
type failingRevocationStore struct {
	*storage.MemoryStore
}

func (s failingRevocationStore) IsSessionRevoked(ctx context.Context, sid string) (bool, error) {
	return false, errors.New("session database unavailable")
}

func TestAuthorizeSessionState(t *testing.T) {
	fixture := newEndpointFixture(t)
	fixture.config.CheckSessionIFrame = "https://op.example.com/check_session_iframe"

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code"},
	}, "", "")

	sessionState := response.Parameters.Get("session_state")
	require.NotEmpty(t, sessionState)

	parts := strings.Split(sessionState, ".")
	require.Len(t, parts, 2)

	// The state cookie carries the authentication timestamp the hash was
	// derived from, so the iframe can recompute it.
	require.Len(t, response.Cookies, 2)
	assert.Equal(t, "oidc_session_mgmt", response.Cookies[1].Name)
	assert.Equal(t,
		ComputeSessionState(response.Cookies[1].Value, parts[1], "client-1", "https://rp.example.com/cb"),
		sessionState,
	)
}

func TestAuthorizeNoneResponseType(t *testing.T) {
	fixture := newEndpointFixture(t)

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"none"},
		"state":         {"af0ifjsldkj"},
	}, "", "")

	assert.False(t, response.FragmentEncoding)
	assert.Equal(t, "af0ifjsldkj", response.Parameters.Get("state"))
	assert.Empty(t, response.Parameters.Get("code"))
	assert.Equal(t, "https://op.example.com", response.Parameters.Get("iss"))
}

func TestAuthorizeFormPostResponseMode(t *testing.T) {
	fixture := newEndpointFixture(t)

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code"},
		"response_mode": {"form_post"},
		"state":         {"af0ifjsldkj"},
	}, "", "")

	require.NotEmpty(t, response.Body)
	assert.Contains(t, response.Body, `action="https://rp.example.com/cb"`)
	assert.Contains(t, response.Body, "af0ifjsldkj")
}

func TestAuthorizeIllegalResponseMode(t *testing.T) {
	fixture := newEndpointFixture(t)

	response := fixture.endpoint.Authorize(context.Background(), url.Values{
		"client_id":     {"client-1"},
		"redirect_uri":  {"https://rp.example.com/cb"},
		"response_type": {"code"},
		"response_mode": {"fragment"},
	}, "", "")

	assert.Equal(t, "invalid_request", response.Parameters.Get("error"))
	assert.Equal(t, "https://rp.example.com/cb", response.ReturnURI)
}
