// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jschlyter/oidcendpoint/internal/consts"
)

// RedirectURI is a registered redirect URI split into its base and its query
// component. The query component may be nil when none was registered.
type RedirectURI struct {
	Base  string
	Query url.Values
}

// String reassembles the registered URI.
func (r RedirectURI) String() string {
	if len(r.Query) == 0 {
		return r.Base
	}

	return r.Base + "?" + r.Query.Encode()
}

// RedirectURIError is returned when a supplied redirect URI matches none of
// the client's registered URIs.
type RedirectURIError struct {
	reason string
}

func (e *RedirectURIError) Error() string {
	return "RedirectURIError: " + e.reason
}

// ParameterError is returned when a required request parameter is missing or
// malformed.
type ParameterError struct {
	reason string
}

func (e *ParameterError) Error() string {
	return "ParameterError: " + e.reason
}

// URIError is returned when a supplied redirect URI is structurally illegal,
// for example when it carries a fragment component.
type URIError struct {
	reason string
}

func (e *URIError) Error() string {
	return "URIError: " + e.reason
}

// UnknownClient is returned when the client id is absent or not registered.
type UnknownClient struct {
	reason string
}

func (e *UnknownClient) Error() string {
	return "UnknownClient: " + e.reason
}

// ParseRedirectURI splits a raw redirect URI into its base and query parts.
// URIs carrying a fragment are rejected.
func ParseRedirectURI(raw string) (RedirectURI, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return RedirectURI{}, &URIError{reason: fmt.Sprintf("malformed uri: %v", err)}
	}

	if parsed.Fragment != "" {
		return RedirectURI{}, &URIError{reason: "contains fragment"}
	}

	var query url.Values
	if parsed.RawQuery != "" {
		if query, err = url.ParseQuery(parsed.RawQuery); err != nil {
			return RedirectURI{}, &URIError{reason: fmt.Sprintf("malformed query: %v", err)}
		}
	}

	base := strings.SplitN(raw, "?", 2)[0]

	return RedirectURI{Base: base, Query: query}, nil
}

// VerifyRedirectURI validates the request's redirect URI against the client's
// registered URIs. The base must be identical and the query components must
// be mutually subset equal, every key and value present on one side must be
// present on the other. The first registered URI that matches wins.
func VerifyRedirectURI(request *AuthorizationRequest, client Client) error {
	if request.ClientID == "" {
		return &UnknownClient{reason: "no client_id in request"}
	}

	unquoted, err := url.QueryUnescape(request.RedirectURI)
	if err != nil {
		return &URIError{reason: fmt.Sprintf("malformed uri: %v", err)}
	}

	candidate, err := ParseRedirectURI(unquoted)
	if err != nil {
		return err
	}

	for _, registered := range client.GetRedirectURIs() {
		if candidate.Base != registered.Base {
			continue
		}

		if queryContains(registered.Query, candidate.Query) && queryContains(candidate.Query, registered.Query) {
			return nil
		}
	}

	return &RedirectURIError{reason: "redirect_uri doesn't match any registered uris"}
}

// GetRedirectURI returns the verified redirect URI from the request. A
// request without a redirect_uri is rejected, redirect URIs are never
// inferred from the registration.
func GetRedirectURI(request *AuthorizationRequest, client Client) (string, error) {
	if request.RedirectURI == "" {
		return "", &ParameterError{reason: fmt.Sprintf("missing %q in authorization request", consts.FormParameterRedirectURI)}
	}

	if err := VerifyRedirectURI(request, client); err != nil {
		return "", err
	}

	return request.RedirectURI, nil
}

// queryContains returns true when every key and every value of want is
// present in have.
func queryContains(want, have url.Values) bool {
	for key, vals := range want {
		if _, ok := have[key]; !ok {
			return false
		}

		for _, val := range vals {
			if !StringInSlice(val, have[key]) {
				return false
			}
		}
	}

	return true
}
