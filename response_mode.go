// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/jschlyter/oidcendpoint/internal/consts"
	"github.com/jschlyter/oidcendpoint/internal/errorsx"
)

var DefaultFormPostTemplate = template.Must(template.New("form_post").Parse(`<html>
   <head>
      <title>Submit This Form</title>
   </head>
   <body onload="javascript:document.forms[0].submit()">
      <form method="post" action="{{ .RedirURL }}">
         {{ range $key,$value := .Parameters }}
            {{ range $parameter:= $value }}
		      <input type="hidden" name="{{ $key }}" value="{{ $parameter }}"/>
            {{ end }}
         {{ end }}
      </form>
   </body>
</html>`))

type FormPostResponseWriter func(wr io.Writer, template *template.Template, redirectURL string, parameters url.Values)

func DefaultFormPostResponseWriter(rw io.Writer, template *template.Template, redirectURL string, parameters url.Values) {
	_ = template.Execute(rw, struct {
		RedirURL   string
		Parameters url.Values
	}{
		RedirURL:   redirectURL,
		Parameters: parameters,
	})
}

func GetPostFormHTMLTemplate(ctx context.Context, c FormPostHTMLTemplateProvider) *template.Template {
	if t := c.GetFormPostHTMLTemplate(ctx); t != nil {
		return t
	}

	return DefaultFormPostTemplate
}

// ValidateResponseMode checks an explicitly requested response mode against
// the fragment encoding law. Form post is always legal, fragment is legal
// only for fragment encoded responses and query only for query encoded ones.
func ValidateResponseMode(responseMode string, fragmentEnc bool) error {
	switch responseMode {
	case consts.ResponseModeFormPost:
		return nil
	case consts.ResponseModeFragment:
		if !fragmentEnc {
			return errorsx.WithStack(ErrInvalidRequest.WithHint("The response mode 'fragment' is not legal for a query encoded response."))
		}

		return nil
	case consts.ResponseModeQuery:
		if fragmentEnc {
			return errorsx.WithStack(ErrInvalidRequest.WithHint("The response mode 'query' is not legal for a fragment encoded response."))
		}

		return nil
	default:
		return errorsx.WithStack(ErrInvalidRequest.WithHintf("The response mode '%s' is unknown.", responseMode))
	}
}

// ResponseModeEncoder renders an assembled response either as a redirect
// location or as an auto submitting HTML form.
type ResponseModeEncoder struct {
	Config interface {
		FormPostHTMLTemplateProvider
		FormPostResponseProvider
	}
}

// Encode validates the requested response mode and finalizes the response.
// When no mode is requested the encoding follows the fragment encoding law
// without further validation.
func (e *ResponseModeEncoder) Encode(ctx context.Context, response *AuthorizeResponse, responseMode string) error {
	if responseMode == "" {
		return nil
	}

	if err := ValidateResponseMode(responseMode, response.FragmentEncoding); err != nil {
		return err
	}

	if responseMode == consts.ResponseModeFormPost {
		var builder strings.Builder

		e.Config.GetFormPostResponseWriter(ctx)(&builder, GetPostFormHTMLTemplate(ctx, e.Config), response.ReturnURI, response.Parameters)

		response.Body = builder.String()
	}

	return nil
}
