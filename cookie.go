// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jschlyter/oidcendpoint/internal/errorsx"
)

// SessionCookie is the payload bound into the session cookie after a
// successful authorization.
type SessionCookie struct {
	UID      string `json:"uid"`
	SID      string `json:"sid"`
	State    string `json:"state"`
	IssuedAt int64  `json:"iat"`
}

// CookieDealer creates and decodes the cookies issued by the authorization
// endpoint.
type CookieDealer interface {
	// CreateSessionCookie returns the session cookie binding the given user,
	// session id and request state.
	CreateSessionCookie(ctx context.Context, uid, sid, state string) (*http.Cookie, error)

	// CreateSessionStateCookie returns the cookie read by the check session
	// iframe. Its value is the authentication time the session_state hash
	// was derived from.
	CreateSessionStateCookie(ctx context.Context, value string) (*http.Cookie, error)

	// DecodeSessionCookie validates and decodes a session cookie value.
	DecodeSessionCookie(ctx context.Context, value string) (*SessionCookie, error)
}

// DefaultCookieDealer authenticates cookie payloads with HMAC-SHA256 using
// the configured global secret.
type DefaultCookieDealer struct {
	Config interface {
		GlobalSecretProvider
		SessionCookieNamesProvider
		ClockConfigProvider
	}
}

// NewDefaultCookieDealer returns a DefaultCookieDealer backed by the given
// configuration.
func NewDefaultCookieDealer(config interface {
	GlobalSecretProvider
	SessionCookieNamesProvider
	ClockConfigProvider
}) *DefaultCookieDealer {
	return &DefaultCookieDealer{Config: config}
}

func (d *DefaultCookieDealer) CreateSessionCookie(ctx context.Context, uid, sid, state string) (*http.Cookie, error) {
	payload := SessionCookie{
		UID:      uid,
		SID:      sid,
		State:    state,
		IssuedAt: d.Config.GetClock(ctx).Now().Unix(),
	}

	value, err := d.encode(ctx, payload)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     d.Config.GetSessionCookieName(ctx),
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

func (d *DefaultCookieDealer) CreateSessionStateCookie(ctx context.Context, value string) (*http.Cookie, error) {
	// The check session iframe compares this value in the browser, it must
	// stay readable by scripts.
	return &http.Cookie{
		Name:     d.Config.GetSessionStateCookieName(ctx),
		Value:    value,
		Path:     "/",
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

func (d *DefaultCookieDealer) DecodeSessionCookie(ctx context.Context, value string) (*SessionCookie, error) {
	parts := strings.Split(value, ".")
	if len(parts) != 2 {
		return nil, errorsx.WithStack(ErrTamperedAuthentication)
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, errorsx.WithStack(ErrTamperedAuthentication)
	}

	expected, err := d.signature(ctx, parts[0])
	if err != nil {
		return nil, err
	}

	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return nil, errorsx.WithStack(ErrTamperedAuthentication)
	}

	var cookie SessionCookie
	if err = json.Unmarshal(payload, &cookie); err != nil {
		return nil, errorsx.WithStack(ErrTamperedAuthentication)
	}

	return &cookie, nil
}

func (d *DefaultCookieDealer) encode(ctx context.Context, payload SessionCookie) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", errorsx.WithStack(err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(raw)

	signature, err := d.signature(ctx, encoded)
	if err != nil {
		return "", err
	}

	return encoded + "." + signature, nil
}

func (d *DefaultCookieDealer) signature(ctx context.Context, payload string) (string, error) {
	secret, err := d.Config.GetGlobalSecret(ctx)
	if err != nil {
		return "", errorsx.WithStack(err)
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))

	return hex.EncodeToString(mac.Sum(nil)), nil
}

var _ CookieDealer = (*DefaultCookieDealer)(nil)
