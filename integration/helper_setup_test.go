// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package integration_test

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	xoauth2 "golang.org/x/oauth2"

	"github.com/jschlyter/oidcendpoint"
	"github.com/jschlyter/oidcendpoint/storage"
)

const (
	acrInternet = "urn:acr:internet"
	acrPassword = "urn:acr:password"
)

var signingKey, _ = rsa.GenerateKey(rand.Reader, 2048)

func newStore() *storage.MemoryStore {
	return storage.NewMemoryStoreWithClients(
		&oidcendpoint.DefaultClient{
			ID: "my-client",
			ResponseTypes: []oidcendpoint.Arguments{
				{"code"},
				{"id_token"},
				{"id_token", "token"},
				{"code", "id_token", "token"},
			},
			Scopes: oidcendpoint.Arguments{"openid", "profile", "offline"},
		},
	)
}

// mockServer serves the authorization endpoint and a callback the test flows
// return to.
func mockServer(t *testing.T, endpoint *oidcendpoint.AuthorizationEndpoint) *httptest.Server {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/auth", authorizeHandler(endpoint)).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/callback", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write([]byte("callback"))
	})

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	return ts
}

func authorizeHandler(endpoint *oidcendpoint.AuthorizationEndpoint) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(rw, err.Error(), http.StatusBadRequest)

			return
		}

		var cookie string
		if c, err := r.Cookie("oidc_session"); err == nil {
			cookie = c.Value
		}

		response := endpoint.Authorize(r.Context(), r.Form, cookie, r.Header.Get("Authorization"))
		oidcendpoint.WriteAuthorizeResponse(r.Context(), rw, response)
	}
}

// newFixture wires an endpoint with the NoAuthn method so flows complete
// without interaction.
func newFixture(t *testing.T, store *storage.MemoryStore, config *oidcendpoint.Config) *oidcendpoint.AuthorizationEndpoint {
	t.Helper()

	broker := oidcendpoint.NewAuthnBroker(acrInternet)
	broker.Add(acrInternet, 0, &oidcendpoint.NoAuthn{User: "peter", Config: config})

	strategy := &oidcendpoint.DefaultIDTokenStrategy{Key: signingKey, KeyID: "sig-1", Config: config}

	return oidcendpoint.NewAuthorizationEndpoint(config, store, store, broker, &oidcendpoint.Implicit{Permission: "implicit"}, strategy)
}

func newConfig() *oidcendpoint.Config {
	return &oidcendpoint.Config{
		Issuer:          "https://op.example.com",
		GlobalSecret:    []byte("some-secret-thats-random-some-secret-thats-random-"),
		IDTokenLifespan: time.Hour,
	}
}

// newOAuth2Client returns an oauth2 client configuration pointing at ts.
func newOAuth2Client(ts *httptest.Server) *xoauth2.Config {
	return &xoauth2.Config{
		ClientID:    "my-client",
		RedirectURL: ts.URL + "/callback",
		Scopes:      []string{"openid"},
		Endpoint: xoauth2.Endpoint{
			AuthURL:  ts.URL + "/auth",
			TokenURL: ts.URL + "/token",
		},
	}
}

// noRedirectClient returns the redirect response instead of following it.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func registerCallback(t *testing.T, store *storage.MemoryStore, ts *httptest.Server) {
	t.Helper()

	client, ok := store.Clients["my-client"].(*oidcendpoint.DefaultClient)
	require.True(t, ok)

	client.RedirectURIs = []string{ts.URL + "/callback"}
}
