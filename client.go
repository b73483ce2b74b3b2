// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"

	"github.com/pkg/errors"
)

// ErrClientNotFound is returned by ClientStore implementations when a client
// id is not registered.
var ErrClientNotFound = errors.New("client not found")

// Client represents a relying party registered at the provider.
type Client interface {
	// GetID returns the client ID.
	GetID() (id string)

	// GetRedirectURIs returns the client's registered redirect URIs, each
	// split into its base and its query component.
	GetRedirectURIs() []RedirectURI

	// GetResponseTypes returns the client's registered response type
	// combinations. Each combination is an unordered set of response types
	// that the client may request together.
	GetResponseTypes() (types []Arguments)

	// GetScopes returns the scopes this client is allowed to request.
	GetScopes() (scopes Arguments)
}

// BrandedClient is a Client carrying the registration metadata that is shown
// to the end user on authentication screens.
type BrandedClient interface {
	GetPolicyURI() (uri string)
	GetLogoURI() (uri string)
	GetTermsOfServiceURI() (uri string)

	Client
}

// ClientStore looks up registered clients.
type ClientStore interface {
	// GetClient returns the client with the given id, or ErrClientNotFound
	// when no such client is registered.
	GetClient(ctx context.Context, id string) (Client, error)
}

// DefaultClient is a simple default implementation of the Client interface.
type DefaultClient struct {
	ID                string      `json:"id"`
	RedirectURIs      []string    `json:"redirect_uris"`
	ResponseTypes     []Arguments `json:"response_types"`
	Scopes            Arguments   `json:"scopes"`
	PolicyURI         string      `json:"policy_uri"`
	LogoURI           string      `json:"logo_uri"`
	TermsOfServiceURI string      `json:"tos_uri"`
}

func (c *DefaultClient) GetID() string {
	return c.ID
}

// GetRedirectURIs parses the registered redirect URIs. URIs that do not parse
// or carry a fragment are skipped, matching never succeeds against them.
func (c *DefaultClient) GetRedirectURIs() []RedirectURI {
	uris := make([]RedirectURI, 0, len(c.RedirectURIs))

	for _, raw := range c.RedirectURIs {
		uri, err := ParseRedirectURI(raw)
		if err != nil {
			continue
		}

		uris = append(uris, uri)
	}

	return uris
}

// GetResponseTypes returns the registered response type combinations,
// defaulting to the authorization code flow when none are registered.
func (c *DefaultClient) GetResponseTypes() []Arguments {
	if len(c.ResponseTypes) == 0 {
		return []Arguments{{"code"}}
	}

	return c.ResponseTypes
}

func (c *DefaultClient) GetScopes() Arguments {
	return c.Scopes
}

func (c *DefaultClient) GetPolicyURI() string {
	return c.PolicyURI
}

func (c *DefaultClient) GetLogoURI() string {
	return c.LogoURI
}

func (c *DefaultClient) GetTermsOfServiceURI() string {
	return c.TermsOfServiceURI
}
