// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jschlyter/oidcendpoint"
)

func TestWriteAuthorizeResponseQueryRedirect(t *testing.T) {
	rw := httptest.NewRecorder()

	WriteAuthorizeResponse(context.Background(), rw, &AuthorizeResponse{
		ReturnURI:  "https://rp.example.com/cb?keep=1",
		Parameters: url.Values{"code": {"authorization-code"}, "state": {"af0ifjsldkj"}},
	})

	assert.Equal(t, http.StatusSeeOther, rw.Code)
	assert.Equal(t, "no-store", rw.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", rw.Header().Get("Pragma"))

	location, err := url.Parse(rw.Header().Get("Location"))
	require.NoError(t, err)

	query := location.Query()
	assert.Equal(t, "authorization-code", query.Get("code"))
	assert.Equal(t, "af0ifjsldkj", query.Get("state"))
	assert.Equal(t, "1", query.Get("keep"))
	assert.Empty(t, location.Fragment)
}

func TestWriteAuthorizeResponseFragmentRedirect(t *testing.T) {
	rw := httptest.NewRecorder()

	WriteAuthorizeResponse(context.Background(), rw, &AuthorizeResponse{
		ReturnURI:        "https://rp.example.com/cb",
		FragmentEncoding: true,
		Parameters:       url.Values{"access_token": {"token-1"}, "token_type": {"Bearer"}},
	})

	assert.Equal(t, http.StatusSeeOther, rw.Code)

	location := rw.Header().Get("Location")
	require.Contains(t, location, "#")

	fragment, err := url.ParseQuery(location[len("https://rp.example.com/cb#"):])
	require.NoError(t, err)
	assert.Equal(t, "token-1", fragment.Get("access_token"))
	assert.Equal(t, "Bearer", fragment.Get("token_type"))
}

func TestWriteAuthorizeResponseBody(t *testing.T) {
	rw := httptest.NewRecorder()

	WriteAuthorizeResponse(context.Background(), rw, &AuthorizeResponse{
		Status: http.StatusBadRequest,
		Body:   `{"error":"invalid_request"}`,
	})

	assert.Equal(t, http.StatusBadRequest, rw.Code)
	assert.JSONEq(t, `{"error":"invalid_request"}`, rw.Body.String())
}

func TestWriteAuthorizeResponseCookies(t *testing.T) {
	rw := httptest.NewRecorder()

	WriteAuthorizeResponse(context.Background(), rw, &AuthorizeResponse{
		ReturnURI:  "https://rp.example.com/cb",
		Parameters: url.Values{"code": {"authorization-code"}},
		Cookies: []*http.Cookie{
			{Name: "oidc_session", Value: "payload.signature"},
		},
	})

	cookies := rw.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "oidc_session", cookies[0].Name)
	assert.Equal(t, "payload.signature", cookies[0].Value)
}
