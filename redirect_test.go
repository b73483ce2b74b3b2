// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jschlyter/oidcendpoint"
)

func TestParseRedirectURI(t *testing.T) {
	for k, c := range []struct {
		raw       string
		expectErr bool
		base      string
		query     url.Values
	}{
		{
			raw:  "https://rp.example.com/cb",
			base: "https://rp.example.com/cb",
		},
		{
			raw:   "https://rp.example.com/cb?foo=bar",
			base:  "https://rp.example.com/cb",
			query: url.Values{"foo": {"bar"}},
		},
		{
			raw:   "https://rp.example.com/cb?foo=bar&foo=baz",
			base:  "https://rp.example.com/cb",
			query: url.Values{"foo": {"bar", "baz"}},
		},
		{
			raw:       "https://rp.example.com/cb#fragment",
			expectErr: true,
		},
		{
			raw:       "://not-a-uri",
			expectErr: true,
		},
	} {
		uri, err := ParseRedirectURI(c.raw)
		if c.expectErr {
			assert.Error(t, err, "case %d", k)
			continue
		}

		require.NoError(t, err, "case %d", k)
		assert.Equal(t, c.base, uri.Base, "case %d", k)
		assert.Equal(t, c.query, uri.Query, "case %d", k)
	}
}

func TestVerifyRedirectURI(t *testing.T) {
	client := &DefaultClient{
		ID: "client-1",
		RedirectURIs: []string{
			"https://rp.example.com/cb",
			"https://rp.example.com/cb2?foo=bar",
		},
	}

	for k, c := range []struct {
		description string
		clientID    string
		redirectURI string
		expectErr   any
	}{
		{
			description: "exact base match",
			clientID:    "client-1",
			redirectURI: "https://rp.example.com/cb",
		},
		{
			description: "base plus matching query",
			clientID:    "client-1",
			redirectURI: "https://rp.example.com/cb2?foo=bar",
		},
		{
			description: "query order is irrelevant for multi-value",
			clientID:    "client-1",
			redirectURI: "https://rp.example.com/cb2?foo=bar",
		},
		{
			description: "missing client id",
			clientID:    "",
			redirectURI: "https://rp.example.com/cb",
			expectErr:   &UnknownClient{},
		},
		{
			description: "unregistered base",
			clientID:    "client-1",
			redirectURI: "https://attacker.example.com/cb",
			expectErr:   &RedirectURIError{},
		},
		{
			description: "registered query missing from request",
			clientID:    "client-1",
			redirectURI: "https://rp.example.com/cb2",
			expectErr:   &RedirectURIError{},
		},
		{
			description: "extra query parameter on request",
			clientID:    "client-1",
			redirectURI: "https://rp.example.com/cb?extra=1",
			expectErr:   &RedirectURIError{},
		},
		{
			description: "fragment is illegal",
			clientID:    "client-1",
			redirectURI: "https://rp.example.com/cb#frag",
			expectErr:   &URIError{},
		},
	} {
		request := NewAuthorizationRequest(url.Values{
			"client_id":    {c.clientID},
			"redirect_uri": {c.redirectURI},
		})

		err := VerifyRedirectURI(request, client)
		if c.expectErr == nil {
			assert.NoError(t, err, "case %d: %s", k, c.description)
			continue
		}

		require.Error(t, err, "case %d: %s", k, c.description)
		assert.IsType(t, c.expectErr, err, "case %d: %s", k, c.description)
	}
}

// A registered URI must always verify against itself, whatever query
// component it carries.
func TestVerifyRedirectURIReflexive(t *testing.T) {
	for k, registered := range []string{
		"https://rp.example.com/cb",
		"https://rp.example.com/cb?foo=bar",
		"https://rp.example.com/cb?foo=bar&foo=baz&x=y",
		"http://localhost:8080/callback?state=keep",
	} {
		client := &DefaultClient{ID: "client-1", RedirectURIs: []string{registered}}
		request := NewAuthorizationRequest(url.Values{
			"client_id":    {"client-1"},
			"redirect_uri": {registered},
		})

		assert.NoError(t, VerifyRedirectURI(request, client), "case %d: %s", k, registered)
	}
}

func TestGetRedirectURI(t *testing.T) {
	client := &DefaultClient{ID: "client-1", RedirectURIs: []string{"https://rp.example.com/cb"}}

	request := NewAuthorizationRequest(url.Values{
		"client_id":    {"client-1"},
		"redirect_uri": {"https://rp.example.com/cb"},
	})
	uri, err := GetRedirectURI(request, client)
	require.NoError(t, err)
	assert.Equal(t, "https://rp.example.com/cb", uri)

	request = NewAuthorizationRequest(url.Values{"client_id": {"client-1"}})
	_, err = GetRedirectURI(request, client)
	require.Error(t, err)
	assert.IsType(t, &ParameterError{}, err)
}
