// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"encoding/base64"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jschlyter/oidcendpoint/internal/consts"
	"github.com/jschlyter/oidcendpoint/internal/errorsx"
)

// requestObjectFetchLimit caps the size of fetched request objects.
const requestObjectFetchLimit = 1 << 20

// ResolveRequestObject merges a request object passed by value via 'request'
// or by reference via 'request_uri' into the request and returns the merged
// request. Requests without either parameter are returned unchanged.
//
// The object's client_id and response_type must match the query parameters
// when both are present. Members of the object take precedence over plain
// query parameters.
func ResolveRequestObject(ctx context.Context, request *AuthorizationRequest, config interface {
	HTTPClientProvider
}) (*AuthorizationRequest, error) {
	raw := request.Form.Get(consts.FormParameterRequest)

	if uri := request.Form.Get(consts.FormParameterRequestURI); raw == "" && uri != "" {
		resp, err := config.GetHTTPClient(ctx).Get(uri)
		if err != nil {
			return nil, errorsx.WithStack(ErrInvalidRequestURI.WithHintf("Unable to fetch the request object from '%s'.", uri).WithDebugError(err))
		}

		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, requestObjectFetchLimit))
		if err != nil {
			return nil, errorsx.WithStack(ErrInvalidRequestURI.WithHintf("Unable to read the request object from '%s'.", uri).WithDebugError(err))
		}

		raw = string(body)
	}

	if raw == "" {
		return request, nil
	}

	payload, err := requestObjectPayload(raw)
	if err != nil {
		return nil, err
	}

	form := request.ToValues()

	var invalid error

	gjson.ParseBytes(payload).ForEach(func(key, value gjson.Result) bool {
		name := key.String()

		switch name {
		case consts.FormParameterClientID, consts.FormParameterResponseType:
			if existing := form.Get(name); existing != "" && existing != value.String() {
				invalid = errorsx.WithStack(ErrInvalidRequestObject.WithHintf("The request object's '%s' does not match the request parameter.", name))

				return false
			}
		}

		if value.IsObject() || value.IsArray() {
			form.Set(name, value.Raw)
		} else {
			form.Set(name, value.String())
		}

		return true
	})

	if invalid != nil {
		return nil, invalid
	}

	form.Del(consts.FormParameterRequest)
	form.Del(consts.FormParameterRequestURI)

	return NewAuthorizationRequest(form), nil
}

// requestObjectPayload extracts the claims of a request object JWT without
// verifying its signature. Verification against the client's registered keys
// is the transport layer's concern.
func requestObjectPayload(token string) ([]byte, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object is not a well formed JWT."))
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object payload is not valid base64.").WithDebugError(err))
	}

	if !gjson.ValidBytes(payload) {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object payload is not valid JSON."))
	}

	return payload, nil
}
