// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Authorizer decides which permissions a user grants a client. The decision
// runs after authentication and before the authorization response is
// assembled.
type Authorizer interface {
	Authorize(ctx context.Context, user string, clientID string) (permission []string, err error)
}

// ErrNotAuthorized is returned when the user has no grant for the client.
var ErrNotAuthorized = errors.New("not authorized")

// Implicit grants every authenticated user the same fixed permission.
type Implicit struct {
	Permission string
}

func (a *Implicit) Authorize(ctx context.Context, user string, clientID string) ([]string, error) {
	return []string{a.Permission}, nil
}

// AuthzHandling grants permissions from a table of per user, per client
// grants.
type AuthzHandling struct {
	mu     sync.RWMutex
	grants map[string]map[string][]string
}

// NewAuthzHandling returns an empty AuthzHandling.
func NewAuthzHandling() *AuthzHandling {
	return &AuthzHandling{grants: map[string]map[string][]string{}}
}

// Grant records the permissions the user grants the client, replacing any
// earlier grant.
func (a *AuthzHandling) Grant(user string, clientID string, permission ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.grants[user] == nil {
		a.grants[user] = map[string][]string{}
	}

	a.grants[user][clientID] = permission
}

func (a *AuthzHandling) Authorize(ctx context.Context, user string, clientID string) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	permission, ok := a.grants[user][clientID]
	if !ok {
		return nil, errors.WithStack(ErrNotAuthorized)
	}

	return append([]string(nil), permission...), nil
}

// NewAuthorizer builds an Authorizer by name, either "implicit" with the
// given permission or "authz_handling".
func NewAuthorizer(name string, permission string) (Authorizer, error) {
	switch name {
	case "implicit":
		return &Implicit{Permission: permission}, nil
	case "authz_handling":
		return NewAuthzHandling(), nil
	default:
		return nil, errors.Errorf("unknown authorizer %q", name)
	}
}
