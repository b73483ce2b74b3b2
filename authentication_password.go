// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/jschlyter/oidcendpoint/internal/consts"
	"github.com/jschlyter/oidcendpoint/internal/errorsx"
)

// DefaultLoginFormTemplate renders the login form of UserPasswordMethod.
var DefaultLoginFormTemplate = template.Must(template.New("login_form").Parse(`<html>
   <head>
       <title>Sign In</title>
   </head>
   <body>
       <form method="post" action="{{ .Action }}">
           <input type="hidden" name="query" value="{{ .Query }}"/>
           <input type="hidden" name="acr_values" value="{{ .ACR }}"/>
           <input type="text" name="login" value="{{ .User }}"/>
           <input type="password" name="password"/>
           <input type="submit" value="Sign In"/>
       </form>
   </body>
</html>`))

// UserPasswordMethod authenticates end users against a static table of bcrypt
// password digests. Completed logins are carried in the session cookie.
type UserPasswordMethod struct {
	// Action is the URI the rendered login form posts back to.
	Action string

	// Digests maps user ids to bcrypt password digests.
	Digests map[string]string

	Hasher Hasher
	Dealer CookieDealer

	Config interface {
		ClockConfigProvider
	}
}

// AuthenticatedAs reads the session cookie issued after a completed login.
func (a *UserPasswordMethod) AuthenticatedAs(ctx context.Context, cookie string, authorization string, maxAge int64) (*Identity, time.Time, error) {
	if cookie == "" {
		return nil, time.Time{}, errorsx.WithStack(ErrNoSuchAuthentication)
	}

	decoded, err := a.Dealer.DecodeSessionCookie(ctx, cookie)
	if err != nil {
		return nil, time.Time{}, err
	}

	authnTime := time.Unix(decoded.IssuedAt, 0).UTC()

	if maxAge > 0 && a.Config.GetClock(ctx).Now().After(authnTime.Add(time.Duration(maxAge)*time.Second)) {
		return nil, time.Time{}, errorsx.WithStack(ErrAuthenticationTooOld)
	}

	return &Identity{UID: decoded.UID, SID: decoded.SID}, authnTime, nil
}

// Verify compares the given password against the user's stored digest.
func (a *UserPasswordMethod) Verify(ctx context.Context, user, password string) error {
	digest, ok := a.Digests[user]
	if !ok {
		return errorsx.WithStack(ErrNoSuchAuthentication)
	}

	return a.Hasher.Compare(ctx, []byte(digest), []byte(password))
}

// Invoke renders the login form.
func (a *UserPasswordMethod) Invoke(ctx context.Context, args AuthnArgs) (*AuthnChallenge, error) {
	var builder strings.Builder

	data := struct {
		Action string
		Query  string
		ACR    string
		User   string
	}{
		Action: a.Action,
		Query:  args.Query.Encode(),
		ACR:    args.ACR,
		User:   args.AsUser,
	}

	if err := DefaultLoginFormTemplate.Execute(&builder, data); err != nil {
		return nil, errorsx.WithStack(err)
	}

	header := http.Header{}
	header.Set(consts.HeaderContentType, consts.ContentTypeTextHTML)

	return &AuthnChallenge{
		Status: http.StatusOK,
		Header: header,
		Body:   builder.String(),
	}, nil
}

// Done reports that a login is still outstanding until the request carries
// the login form's answer.
func (a *UserPasswordMethod) Done(request *AuthorizationRequest) bool {
	return request.Form.Get(consts.FormParameterUserPasswordAnswer) == ""
}

var _ AuthenticationMethod = (*UserPasswordMethod)(nil)
