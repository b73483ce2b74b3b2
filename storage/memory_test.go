// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jschlyter/oidcendpoint"
	"github.com/jschlyter/oidcendpoint/storage"
)

func newStoredSession(t *testing.T, store *storage.MemoryStore, uid string) string {
	t.Helper()

	request := oidcendpoint.NewAuthorizationRequest(url.Values{
		"client_id": {"client-1"},
		"scope":     {"openid profile"},
		"state":     {"af0ifjsldkj"},
	})

	sid, err := store.CreateSession(context.Background(), oidcendpoint.AuthnEvent{
		UID:       uid,
		ACR:       "urn:acr:password",
		AuthnTime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}, request)
	require.NoError(t, err)

	return sid
}

func TestMemoryStoreClients(t *testing.T) {
	ctx := context.Background()
	client := &oidcendpoint.DefaultClient{ID: "client-1"}
	store := storage.NewMemoryStoreWithClients(client)

	got, err := store.GetClient(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, client, got)

	_, err = store.GetClient(ctx, "nobody")
	assert.True(t, errors.Is(err, oidcendpoint.ErrClientNotFound))
}

func TestMemoryStoreSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	sid := newStoredSession(t, store, "peter")

	session, err := store.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, sid, session.SID)
	assert.Equal(t, "peter", session.UID)
	assert.Equal(t, "client-1", session.ClientID)
	assert.Equal(t, oidcendpoint.Arguments{"openid", "profile"}, session.Scope)
	assert.NotEmpty(t, session.Code)

	_, err = store.GetSession(ctx, "no-such-sid")
	assert.True(t, errors.Is(err, oidcendpoint.ErrSessionNotFound))

	// Updates apply only the set fields.
	idToken := "header.payload.signature"
	require.NoError(t, store.UpdateSession(ctx, sid, oidcendpoint.SessionUpdate{
		Permission: []string{"openid"},
		IDToken:    &idToken,
	}))

	session, err = store.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, []string{"openid"}, session.Permission)
	assert.Equal(t, idToken, session.IDToken)
	assert.NotEmpty(t, session.Code)

	// Clearing the code uses an explicit empty string.
	cleared := ""
	require.NoError(t, store.UpdateSession(ctx, sid, oidcendpoint.SessionUpdate{Code: &cleared}))

	session, err = store.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, session.Code)
}

func TestMemoryStoreGetSessionCopies(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	sid := newStoredSession(t, store, "peter")

	session, err := store.GetSession(ctx, sid)
	require.NoError(t, err)

	session.Permission = append(session.Permission, "tampered")
	session.Scope[0] = "tampered"

	fresh, err := store.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, fresh.Permission)
	assert.Equal(t, oidcendpoint.Arguments{"openid", "profile"}, fresh.Scope)
}

func TestMemoryStoreUpgradeToToken(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.AccessTokenLifespan = 30 * time.Minute

	sid := newStoredSession(t, store, "peter")

	upgrade, err := store.UpgradeToToken(ctx, sid, false)
	require.NoError(t, err)

	assert.NotEmpty(t, upgrade.AccessToken)
	assert.Equal(t, "Bearer", upgrade.TokenType)
	assert.Equal(t, int64(1800), upgrade.ExpiresIn)
	assert.Equal(t, "openid profile", upgrade.Scope)
	assert.Equal(t, "af0ifjsldkj", upgrade.State)

	session, err := store.GetSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, upgrade.AccessToken, session.AccessToken)

	_, err = store.UpgradeToToken(ctx, "no-such-sid", false)
	assert.True(t, errors.Is(err, oidcendpoint.ErrSessionNotFound))
}

func TestMemoryStoreRevocation(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	sid := newStoredSession(t, store, "peter")

	revoked, err := store.IsSessionRevoked(ctx, sid)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.RevokeSession(ctx, sid))

	revoked, err = store.IsSessionRevoked(ctx, sid)
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = store.IsSessionRevoked(ctx, "no-such-sid")
	assert.True(t, errors.Is(err, oidcendpoint.ErrSessionNotFound))
}

func TestMemoryStoreSubjectIndex(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := newStoredSession(t, store, "peter")
	second := newStoredSession(t, store, "peter")
	other := newStoredSession(t, store, "diana")

	sids, err := store.SIDsBySubject(ctx, "peter")
	require.NoError(t, err)
	assert.Equal(t, []string{first, second}, sids)

	sids, err = store.SIDsBySubject(ctx, "diana")
	require.NoError(t, err)
	assert.Equal(t, []string{other}, sids)

	sids, err = store.SIDsBySubject(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, sids)

	event, err := store.LastAuthnEvent(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "peter", event.UID)
	assert.Equal(t, "urn:acr:password", event.ACR)
}
