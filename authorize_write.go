// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jschlyter/oidcendpoint/internal/consts"
)

// WriteAuthorizeResponse writes a finalized authorization response. Responses
// carrying a body (form posts, inline challenges and direct errors) are
// written as-is, everything else becomes a redirect to the return URI with
// the parameters encoded per the fragment encoding law.
func WriteAuthorizeResponse(ctx context.Context, rw http.ResponseWriter, response *AuthorizeResponse) {
	header := rw.Header()

	header.Set(consts.HeaderCacheControl, consts.CacheControlNoStore)
	header.Set(consts.HeaderPragma, consts.PragmaNoCache)

	for k := range response.Header {
		header.Set(k, response.Header.Get(k))
	}

	for _, cookie := range response.Cookies {
		http.SetCookie(rw, cookie)
	}

	if response.Body != "" || response.ReturnURI == "" {
		status := response.Status
		if status == 0 {
			status = http.StatusOK
		}

		rw.WriteHeader(status)
		_, _ = io.WriteString(rw, response.Body)

		return
	}

	redirectURI, err := url.Parse(response.ReturnURI)
	if err != nil {
		writeJSONError(rw, ErrServerError.WithWrap(err).WithDebugError(err), false)

		return
	}

	redirectURI.Fragment = ""

	var location string

	if response.FragmentEncoding {
		location = redirectURI.String() + "#" + response.Parameters.Encode()
	} else {
		form := response.Parameters

		for key, values := range redirectURI.Query() {
			for _, value := range values {
				form.Add(key, value)
			}
		}

		redirectURI.RawQuery = form.Encode()
		location = redirectURI.String()
	}

	header.Set(consts.HeaderLocation, location)
	rw.WriteHeader(http.StatusSeeOther)
}

// writeJSONError writes an error response directly, used when no trusted
// redirect URI is established.
func writeJSONError(rw http.ResponseWriter, rfc *RFC6749Error, exposeDebug bool) {
	rw.Header().Set(consts.HeaderContentType, consts.ContentTypeApplicationJSON)

	data, err := json.Marshal(rfc)
	if err != nil {
		if exposeDebug {
			errorMessage := EscapeJSONString(err.Error())
			http.Error(rw, fmt.Sprintf(`{"error":"server_error","error_description":"%s"}`, errorMessage), http.StatusInternalServerError)
		} else {
			http.Error(rw, `{"error":"server_error"}`, http.StatusInternalServerError)
		}

		return
	}

	rw.WriteHeader(rfc.CodeField)
	_, _ = rw.Write(data)
}
