// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"github.com/jschlyter/oidcendpoint/internal/errorsx"
)

// ValidateResponseTypes checks the requested response type combination
// against the client's registered combinations. A combination is allowed when
// it is set equal to one of the registered combinations, order and
// duplicates are ignored.
func ValidateResponseTypes(request *AuthorizationRequest, client Client) error {
	if len(request.ResponseTypes) == 0 {
		return errorsx.WithStack(ErrInvalidRequest.WithHint("The request is missing the 'response_type' parameter."))
	}

	for _, registered := range client.GetResponseTypes() {
		if registered.Matches(request.ResponseTypes...) {
			return nil
		}
	}

	return errorsx.WithStack(ErrInvalidRequest.WithHintf("The client is not registered for the response type '%s'.", request.ResponseTypes))
}
