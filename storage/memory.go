// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mohae/deepcopy"

	"github.com/jschlyter/oidcendpoint"
)

// MemoryStore is an in-memory session and client store. Every read hands out
// a deep copy so callers never observe concurrent mutation.
type MemoryStore struct {
	Clients  map[string]oidcendpoint.Client
	Sessions map[string]*oidcendpoint.Session

	// subjects maps a user id to its session ids in creation order.
	subjects map[string][]string

	// AccessTokenLifespan is the expires_in reported for minted access
	// tokens. Defaults to one hour.
	AccessTokenLifespan time.Duration

	clientsMutex  sync.RWMutex
	sessionsMutex sync.RWMutex
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Clients:  make(map[string]oidcendpoint.Client),
		Sessions: make(map[string]*oidcendpoint.Session),
		subjects: make(map[string][]string),
	}
}

// NewMemoryStoreWithClients returns a MemoryStore preloaded with the given
// clients.
func NewMemoryStoreWithClients(clients ...oidcendpoint.Client) *MemoryStore {
	store := NewMemoryStore()
	for _, client := range clients {
		store.Clients[client.GetID()] = client
	}

	return store
}

func (s *MemoryStore) GetClient(_ context.Context, id string) (oidcendpoint.Client, error) {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()

	client, ok := s.Clients[id]
	if !ok {
		return nil, oidcendpoint.ErrClientNotFound
	}

	return client, nil
}

func (s *MemoryStore) CreateSession(_ context.Context, event oidcendpoint.AuthnEvent, request *oidcendpoint.AuthorizationRequest) (string, error) {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	sid := uuid.NewString()

	s.Sessions[sid] = &oidcendpoint.Session{
		SID:        sid,
		UID:        event.UID,
		ClientID:   request.ClientID,
		AuthnEvent: event,
		Request:    request,
		Scope:      request.Scope,
		Code:       oidcendpoint.RandomString(32),
	}

	s.subjects[event.UID] = append(s.subjects[event.UID], sid)

	return sid, nil
}

func (s *MemoryStore) GetSession(_ context.Context, sid string) (*oidcendpoint.Session, error) {
	s.sessionsMutex.RLock()
	defer s.sessionsMutex.RUnlock()

	session, ok := s.Sessions[sid]
	if !ok {
		return nil, oidcendpoint.ErrSessionNotFound
	}

	return copySession(session), nil
}

func (s *MemoryStore) UpdateSession(_ context.Context, sid string, update oidcendpoint.SessionUpdate) error {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	session, ok := s.Sessions[sid]
	if !ok {
		return oidcendpoint.ErrSessionNotFound
	}

	if update.Code != nil {
		session.Code = *update.Code
	}

	if update.Permission != nil {
		session.Permission = append([]string(nil), update.Permission...)
	}

	if update.IDToken != nil {
		session.IDToken = *update.IDToken
	}

	return nil
}

func (s *MemoryStore) UpgradeToToken(_ context.Context, sid string, issueRefresh bool) (*oidcendpoint.AccessTokenUpgrade, error) {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	session, ok := s.Sessions[sid]
	if !ok {
		return nil, oidcendpoint.ErrSessionNotFound
	}

	lifespan := s.AccessTokenLifespan
	if lifespan == 0 {
		lifespan = time.Hour
	}

	session.AccessToken = oidcendpoint.RandomString(32)
	session.TokenType = "Bearer"
	session.ExpiresIn = int64(lifespan / time.Second)

	upgrade := &oidcendpoint.AccessTokenUpgrade{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
		Scope:       session.Scope.String(),
	}

	if session.Request != nil {
		upgrade.State = session.Request.State
	}

	return upgrade, nil
}

func (s *MemoryStore) IsSessionRevoked(_ context.Context, sid string) (bool, error) {
	s.sessionsMutex.RLock()
	defer s.sessionsMutex.RUnlock()

	session, ok := s.Sessions[sid]
	if !ok {
		return false, oidcendpoint.ErrSessionNotFound
	}

	return session.Revoked, nil
}

func (s *MemoryStore) RevokeSession(_ context.Context, sid string) error {
	s.sessionsMutex.Lock()
	defer s.sessionsMutex.Unlock()

	session, ok := s.Sessions[sid]
	if !ok {
		return oidcendpoint.ErrSessionNotFound
	}

	session.Revoked = true

	return nil
}

func (s *MemoryStore) SIDsBySubject(_ context.Context, subject string) ([]string, error) {
	s.sessionsMutex.RLock()
	defer s.sessionsMutex.RUnlock()

	return append([]string(nil), s.subjects[subject]...), nil
}

func (s *MemoryStore) LastAuthnEvent(_ context.Context, sid string) (*oidcendpoint.AuthnEvent, error) {
	s.sessionsMutex.RLock()
	defer s.sessionsMutex.RUnlock()

	session, ok := s.Sessions[sid]
	if !ok {
		return nil, oidcendpoint.ErrSessionNotFound
	}

	event := session.AuthnEvent

	return &event, nil
}

// copySession deep copies a session. The request is shared, it is immutable
// for the lifetime of the session.
func copySession(session *oidcendpoint.Session) *oidcendpoint.Session {
	value := *session
	value.Request = nil

	clone := deepcopy.Copy(&value).(*oidcendpoint.Session)
	clone.Request = session.Request

	return clone
}

var (
	_ oidcendpoint.SessionStore = (*MemoryStore)(nil)
	_ oidcendpoint.ClientStore  = (*MemoryStore)(nil)
)
