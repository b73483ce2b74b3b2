// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/oleiade/reflections"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned by SessionStore implementations when a
// session id is unknown.
var ErrSessionNotFound = errors.New("session not found")

// AuthnEvent records a single end user authentication.
type AuthnEvent struct {
	UID       string    `json:"uid"`
	Salt      string    `json:"salt"`
	ACR       string    `json:"acr"`
	AuthnTime time.Time `json:"authn_time"`
}

// Session is an authorization session: one authenticated user consenting to
// one client, together with the artifacts issued for it.
type Session struct {
	SID        string
	UID        string
	ClientID   string
	AuthnEvent AuthnEvent

	// Request is the authorization request the session was created for.
	Request *AuthorizationRequest

	Scope       Arguments
	Code        string
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	IDToken     string

	// Permission is the outcome of the authorization decision for this
	// session.
	Permission []string

	Revoked bool
}

// AccessTokenUpgrade is the result of upgrading a session to an access token.
// The response tags name the authorization response parameter each field maps
// to.
type AccessTokenUpgrade struct {
	AccessToken string `response:"access_token"`
	TokenType   string `response:"token_type"`
	ExpiresIn   int64  `response:"expires_in"`
	Scope       string `response:"scope"`
	State       string `response:"state"`
}

// legalUpgradeParameters is the set of authorization response parameters an
// access token upgrade may contribute.
var legalUpgradeParameters = []string{
	"scope", "state", "code", "access_token", "token_type", "expires_in", "id_token",
}

// ApplyTo copies the upgrade's non-zero fields into the given response
// parameters, restricted to the legal parameter set.
func (u *AccessTokenUpgrade) ApplyTo(parameters url.Values) error {
	fields, err := reflections.Fields(u)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, field := range fields {
		name, err := reflections.GetFieldTag(u, field, "response")
		if err != nil {
			return errors.WithStack(err)
		}

		if name == "" || !StringInSlice(name, legalUpgradeParameters) {
			continue
		}

		value, err := reflections.GetField(u, field)
		if err != nil {
			return errors.WithStack(err)
		}

		switch v := value.(type) {
		case string:
			if v != "" {
				parameters.Set(name, v)
			}
		case int64:
			if v != 0 {
				parameters.Set(name, strconv.FormatInt(v, 10))
			}
		}
	}

	return nil
}

// SessionUpdate describes a partial update of a session. Nil fields are left
// untouched; Code set to an empty string clears the issued code.
type SessionUpdate struct {
	Code       *string
	Permission []string
	IDToken    *string
}

// SessionStore persists authorization sessions.
type SessionStore interface {
	// CreateSession stores a new session for the given request and
	// authentication event and returns its session id.
	CreateSession(ctx context.Context, event AuthnEvent, request *AuthorizationRequest) (sid string, err error)

	// GetSession returns the session with the given id.
	GetSession(ctx context.Context, sid string) (*Session, error)

	// UpdateSession applies the given update to the session.
	UpdateSession(ctx context.Context, sid string, update SessionUpdate) error

	// UpgradeToToken mints an access token for the session and returns the
	// token response parameters.
	UpgradeToToken(ctx context.Context, sid string, issueRefresh bool) (*AccessTokenUpgrade, error)

	// IsSessionRevoked reports whether the session has been revoked.
	IsSessionRevoked(ctx context.Context, sid string) (bool, error)

	// RevokeSession marks the session as revoked.
	RevokeSession(ctx context.Context, sid string) error

	// SIDsBySubject returns the ids of all sessions of the given subject,
	// oldest first.
	SIDsBySubject(ctx context.Context, subject string) ([]string, error)

	// LastAuthnEvent returns the authentication event of the subject's most
	// recent session.
	LastAuthnEvent(ctx context.Context, sid string) (*AuthnEvent, error)
}
