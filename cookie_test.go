// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jschlyter/oidcendpoint"
)

func TestCookieDealerRoundTrip(t *testing.T) {
	ctx := context.Background()
	clock := NewFixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	dealer := NewDefaultCookieDealer(&Config{
		GlobalSecret: []byte("some-secret-thats-random-some-secret-thats-random-"),
		Clock:        clock,
	})

	cookie, err := dealer.CreateSessionCookie(ctx, "peter", "sid-1", "af0ifjsldkj")
	require.NoError(t, err)

	assert.Equal(t, "oidc_session", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)

	decoded, err := dealer.DecodeSessionCookie(ctx, cookie.Value)
	require.NoError(t, err)

	assert.Equal(t, "peter", decoded.UID)
	assert.Equal(t, "sid-1", decoded.SID)
	assert.Equal(t, "af0ifjsldkj", decoded.State)
	assert.Equal(t, clock.Now().Unix(), decoded.IssuedAt)
}

func TestCookieDealerRejectsTampering(t *testing.T) {
	ctx := context.Background()
	dealer := NewDefaultCookieDealer(&Config{
		GlobalSecret: []byte("some-secret-thats-random-some-secret-thats-random-"),
	})

	cookie, err := dealer.CreateSessionCookie(ctx, "peter", "sid-1", "")
	require.NoError(t, err)

	for k, c := range []string{
		"",
		"garbage",
		"a.b.c",
		cookie.Value + "x",
		strings.Split(cookie.Value, ".")[0] + ".deadbeef",
	} {
		_, err = dealer.DecodeSessionCookie(ctx, c)
		assert.True(t, errors.Is(err, ErrTamperedAuthentication), "case %d: %v", k, err)
	}
}

func TestCookieDealerRejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	dealer := NewDefaultCookieDealer(&Config{GlobalSecret: []byte("secret-one-secret-one-secret-one-secret-one-secret")})
	other := NewDefaultCookieDealer(&Config{GlobalSecret: []byte("secret-two-secret-two-secret-two-secret-two-secret")})

	cookie, err := dealer.CreateSessionCookie(ctx, "peter", "sid-1", "")
	require.NoError(t, err)

	_, err = other.DecodeSessionCookie(ctx, cookie.Value)
	assert.True(t, errors.Is(err, ErrTamperedAuthentication))
}

func TestSessionStateCookieIsScriptReadable(t *testing.T) {
	dealer := NewDefaultCookieDealer(&Config{GlobalSecret: []byte("some-secret-thats-random-some-secret-thats-random-")})

	cookie, err := dealer.CreateSessionStateCookie(context.Background(), "1714564800")
	require.NoError(t, err)

	assert.Equal(t, "oidc_session_mgmt", cookie.Name)
	assert.Equal(t, "1714564800", cookie.Value)
	assert.False(t, cookie.HttpOnly)
}
