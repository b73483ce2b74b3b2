// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jschlyter/oidcendpoint/internal/consts"
)

// AuthorizationRequest is a parsed authorization request. The Form holds the
// raw transport parameters, the typed fields are derived from it once at
// construction and are not written to afterwards.
type AuthorizationRequest struct {
	Form url.Values

	ClientID      string
	RedirectURI   string
	State         string
	Nonce         string
	ResponseMode  string
	ResponseTypes Arguments
	Scope         Arguments
	Prompt        Arguments
	ACRValues     Arguments
	UILocales     Arguments

	// ClaimsParameter is the raw JSON of the 'claims' request parameter, nil
	// when absent.
	ClaimsParameter []byte
}

// NewAuthorizationRequest builds an AuthorizationRequest from the decoded
// request parameters.
func NewAuthorizationRequest(form url.Values) *AuthorizationRequest {
	ar := &AuthorizationRequest{
		Form:          form,
		ClientID:      form.Get(consts.FormParameterClientID),
		RedirectURI:   form.Get(consts.FormParameterRedirectURI),
		State:         form.Get(consts.FormParameterState),
		Nonce:         form.Get(consts.FormParameterNonce),
		ResponseMode:  form.Get(consts.FormParameterResponseMode),
		ResponseTypes: splitSpaceDelimited(form.Get(consts.FormParameterResponseType)),
		Scope:         splitSpaceDelimited(form.Get(consts.FormParameterScope)),
		Prompt:        splitSpaceDelimited(form.Get(consts.FormParameterPrompt)),
		ACRValues:     splitSpaceDelimited(form.Get(consts.FormParameterAuthenticationContextClassReferenceValues)),
		UILocales:     splitSpaceDelimited(form.Get(consts.FormParameterUILocales)),
	}

	if raw := form.Get(consts.FormParameterClaims); raw != "" {
		ar.ClaimsParameter = []byte(raw)
	}

	return ar
}

// MaxAge returns the requested maximum authentication age in seconds, or 0
// when absent or unparseable.
func (r *AuthorizationRequest) MaxAge() int64 {
	raw := r.Form.Get(consts.FormParameterMaximumAge)
	if raw == "" {
		return 0
	}

	age, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || age < 0 {
		return 0
	}

	return age
}

// ACRClaims returns the ACR values the client requires for this request. The
// 'claims' parameter takes precedence over acr_values, with the single value
// form checked before the list form.
func (r *AuthorizationRequest) ACRClaims() []string {
	if len(r.ClaimsParameter) > 0 {
		if value := gjson.GetBytes(r.ClaimsParameter, consts.ClaimIDTokenAuthenticationContextPath+".value"); value.Exists() {
			return []string{value.String()}
		}

		if values := gjson.GetBytes(r.ClaimsParameter, consts.ClaimIDTokenAuthenticationContextPath+".values"); values.IsArray() {
			acrs := make([]string, 0, len(values.Array()))
			for _, v := range values.Array() {
				acrs = append(acrs, v.String())
			}

			return acrs
		}
	}

	return r.ACRValues
}

// ProposedSubject returns the subject proposed via the id_token_hint
// parameter, or an empty string. The hint's signature is not verified here,
// the value is only ever used to preselect an account and never to establish
// a session.
func (r *AuthorizationRequest) ProposedSubject() string {
	hint := r.Form.Get(consts.FormParameterIDTokenHint)
	if hint == "" {
		return ""
	}

	parts := strings.Split(hint, ".")
	if len(parts) != 3 {
		return ""
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ""
	}

	return gjson.GetBytes(payload, consts.ClaimSubject).String()
}

// ToValues returns a copy of the raw request parameters, suitable for
// serializing the request into an authentication method's continuation.
func (r *AuthorizationRequest) ToValues() url.Values {
	values := make(url.Values, len(r.Form))
	for k, v := range r.Form {
		values[k] = append([]string(nil), v...)
	}

	return values
}

func splitSpaceDelimited(raw string) Arguments {
	if raw == "" {
		return nil
	}

	return RemoveEmpty(strings.Split(raw, " "))
}
