// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package internal

import (
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	xoauth2 "golang.org/x/oauth2"
)

// ParseFormPostResponse parses the self-submitting HTML document produced by
// the form_post response mode and returns the authorization response
// parameters carried in its hidden input fields. The form action must match
// redirectURL or an error is returned.
func ParseFormPostResponse(redirectURL string, resp io.ReadCloser) (code, state, iDToken string, token xoauth2.Token, cparam url.Values, errResp map[string]string, err error) {
	token = xoauth2.Token{}
	errResp = map[string]string{}
	cparam = url.Values{}

	doc, err := html.Parse(resp)
	if err != nil {
		return "", "", "", token, cparam, errResp, err
	}

	form := findForm(doc)
	if form == nil {
		return "", "", "", token, cparam, errResp, errors.New("form element not found in response")
	}

	if action := attrValue(form, "action"); action != redirectURL {
		return "", "", "", token, cparam, errResp, errors.Errorf("form action '%s' does not match redirect url '%s'", action, redirectURL)
	}

	for _, input := range findInputs(form) {
		name, value := attrValue(input, "name"), attrValue(input, "value")
		switch name {
		case "code":
			code = value
		case "state":
			state = value
		case "id_token":
			iDToken = value
		case "access_token":
			token.AccessToken = value
		case "token_type":
			token.TokenType = value
		case "expires_in":
			expires, cerr := strconv.Atoi(value)
			if cerr != nil {
				return "", "", "", token, cparam, errResp, cerr
			}
			token.Expiry = time.Now().UTC().Add(time.Duration(expires) * time.Second)
		case "error", "error_description", "error_hint":
			errResp[name] = value
		default:
			cparam.Add(name, value)
		}
	}

	return code, state, iDToken, token, cparam, errResp, nil
}

func findForm(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "form" {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if form := findForm(c); form != nil {
			return form
		}
	}

	return nil
}

func findInputs(form *html.Node) (inputs []*html.Node) {
	for c := form.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "input" {
			inputs = append(inputs, c)
		}

		inputs = append(inputs, findInputs(c)...)
	}

	return inputs
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}

	return ""
}
