// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/jschlyter/oidcendpoint/internal/errorsx"
)

var (
	// ErrNoSuchAuthentication is returned by AuthenticatedAs when no
	// authentication state exists for the request, for example when no
	// session cookie was presented.
	ErrNoSuchAuthentication = errors.New("no such authentication")

	// ErrAuthenticationTooOld is returned by AuthenticatedAs when the
	// authentication event is older than the requested maximum age.
	ErrAuthenticationTooOld = errors.New("authentication too old")

	// ErrTamperedAuthentication is returned when presented authentication
	// state fails its integrity check.
	ErrTamperedAuthentication = errors.New("authentication state tampered with")
)

// Identity describes an authenticated end user as reported by an
// authentication method.
type Identity struct {
	// UID is the user identifier.
	UID string

	// Salt is the per identity salt used when deriving pairwise subjects.
	Salt string

	// SID is the session id the identity was read from, empty when the
	// method did not resolve a session.
	SID string
}

// AuthnArgs carries everything an authentication method needs to render its
// challenge and to continue the authorization request afterwards.
type AuthnArgs struct {
	// ACR is the authentication context class reference the method was
	// selected for.
	ACR string

	// Query is the original authorization request, re-serialized so the
	// method can resume it after the user authenticated.
	Query url.Values

	// ReturnURI is the redirect URI the flow returns to.
	ReturnURI string

	// AsUser optionally proposes the subject that should authenticate.
	AsUser string

	PolicyURI         string
	LogoURI           string
	TermsOfServiceURI string

	UILocales Arguments
	ACRValues Arguments
}

// AuthnChallenge is the rendered challenge of an authentication method,
// returned to the transport layer verbatim.
type AuthnChallenge struct {
	Status int
	Header http.Header
	Body   string
}

// AuthenticationMethod is a way of authenticating an end user.
type AuthenticationMethod interface {
	// AuthenticatedAs inspects the presented cookie and authorization info
	// and returns the authenticated identity together with the time of the
	// authentication event. It returns ErrNoSuchAuthentication when there is
	// none, ErrAuthenticationTooOld when the event is older than maxAge
	// seconds (a maxAge of 0 disables the check) and
	// ErrTamperedAuthentication when the state fails validation.
	AuthenticatedAs(ctx context.Context, cookie string, authorization string, maxAge int64) (*Identity, time.Time, error)

	// Invoke renders the method's authentication challenge.
	Invoke(ctx context.Context, args AuthnArgs) (*AuthnChallenge, error)

	// Done reports whether this method's interaction is still outstanding
	// for the given request. A prompt=login request re-challenges while Done
	// is true and stops once the request carries the method's answer.
	Done(request *AuthorizationRequest) bool
}

// PickTier selects how strictly the broker compares ACR values.
type PickTier string

const (
	// PickExact only yields methods registered for exactly the given ACR.
	PickExact PickTier = "exact"

	// PickBetter yields methods registered above the given ACR's level.
	PickBetter PickTier = "better"

	// PickAny yields every registered method.
	PickAny PickTier = "any"
)

// MethodRef pairs an authentication method with the ACR it was picked for.
type MethodRef struct {
	Method AuthenticationMethod
	ACR    string
}

type brokerEntry struct {
	acr    string
	level  int
	method AuthenticationMethod
}

// AuthnBroker holds the registered authentication methods, each under an ACR
// value and a precedence level. Registration order breaks level ties.
type AuthnBroker struct {
	entries    []brokerEntry
	defaultACR string
}

// NewAuthnBroker returns a broker whose tier escalation starts from the given
// default ACR.
func NewAuthnBroker(defaultACR string) *AuthnBroker {
	return &AuthnBroker{defaultACR: defaultACR}
}

// Add registers a method under the given ACR with the given level. Higher
// levels are considered better authentication.
func (b *AuthnBroker) Add(acr string, level int, method AuthenticationMethod) {
	b.entries = append(b.entries, brokerEntry{acr: acr, level: level, method: method})
}

// DefaultACR returns the broker's default ACR value.
func (b *AuthnBroker) DefaultACR() string {
	return b.defaultACR
}

// Pick returns the methods qualifying for the given ACR under the given
// tier, best first.
func (b *AuthnBroker) Pick(acr string, tier PickTier) []MethodRef {
	var candidates []brokerEntry

	switch tier {
	case PickExact:
		for _, entry := range b.entries {
			if entry.acr == acr {
				candidates = append(candidates, entry)
			}
		}
	case PickBetter:
		reference := b.levelOf(acr)
		for _, entry := range b.entries {
			if entry.level > reference {
				candidates = append(candidates, entry)
			}
		}
	case PickAny:
		candidates = append(candidates, b.entries...)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].level > candidates[j].level
	})

	refs := make([]MethodRef, 0, len(candidates))
	for _, entry := range candidates {
		refs = append(refs, MethodRef{Method: entry.method, ACR: entry.acr})
	}

	return refs
}

// levelOf returns the highest level registered for the given ACR, or -1 when
// the ACR is unknown so a better pick can still match any registered method.
func (b *AuthnBroker) levelOf(acr string) int {
	level := -1
	for _, entry := range b.entries {
		if entry.acr == acr && entry.level > level {
			level = entry.level
		}
	}

	return level
}

// PickMethod selects the authentication method for the given request. When
// the request constrains the ACR, only an exact match qualifies. Otherwise
// the default ACR is tried exactly, then escalated to better and finally to
// any registered method. Exhaustion yields access_denied.
func (b *AuthnBroker) PickMethod(request *AuthorizationRequest) (MethodRef, error) {
	if acrs := request.ACRClaims(); len(acrs) > 0 {
		for _, acr := range acrs {
			if refs := b.Pick(acr, PickExact); len(refs) > 0 {
				return refs[0], nil
			}
		}

		return MethodRef{}, errorsx.WithStack(ErrAccessDenied.WithHint("No authentication method matches the required acr values."))
	}

	for _, tier := range []PickTier{PickExact, PickBetter, PickAny} {
		if refs := b.Pick(b.defaultACR, tier); len(refs) > 0 {
			return refs[0], nil
		}
	}

	return MethodRef{}, errorsx.WithStack(ErrAccessDenied.WithHint("No authentication method is available."))
}
