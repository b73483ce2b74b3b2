// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"html/template"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/jschlyter/oidcendpoint/i18n"
)

// MinParameterEntropy is the default minimum entropy of the state parameter.
const MinParameterEntropy = 8

const (
	defaultSessionCookieName      = "oidc_session"
	defaultSessionStateCookieName = "oidc_session_mgmt"
)

// Config holds the configuration of the authorization endpoint and implements
// every provider interface of Configurator.
type Config struct {
	// Issuer is the issuer identifier of this provider. It is bound into
	// every success response for mix-up mitigation and into minted ID
	// tokens.
	Issuer string

	// IDTokenLifespan sets the default id token lifetime. Defaults to one hour.
	IDTokenLifespan time.Duration

	// AllowedPromptValues sets which OpenID Connect prompt values the server supports.
	// Defaults to []string{"login", "none", "consent", "select_account"}.
	AllowedPromptValues []string

	// MinParameterEntropy controls the minimum size of the state parameter. Defaults to MinParameterEntropy.
	MinParameterEntropy int

	// GlobalSecret is the secret the session cookies are authenticated with.
	GlobalSecret []byte

	// SendDebugMessagesToClients if set to true, includes error debug messages in response payloads. Be aware
	// that sensitive data may be exposed, depending on your implementation. Proceed with caution!
	SendDebugMessagesToClients bool

	// HashCost sets the cost of the password hashing cost. Defaults to 12.
	HashCost int

	// HTTPClient is the HTTP client used to fetch request objects by reference.
	HTTPClient *retryablehttp.Client

	// MessageCatalog is the catalog of messages used for i18n.
	MessageCatalog i18n.MessageCatalog

	// FormPostHTMLTemplate sets html template for rendering the authorization response when the request has
	// response_mode=form_post.
	FormPostHTMLTemplate *template.Template

	// FormPostResponseWriter is the FormPostResponseWriter used for writing the form post response type.
	FormPostResponseWriter FormPostResponseWriter

	// CheckSessionIFrame is the URL of the session management iframe. When
	// set, success responses carry a session_state parameter.
	CheckSessionIFrame string

	// SessionCookieName is the name of the session cookie. Defaults to "oidc_session".
	SessionCookieName string

	// SessionStateCookieName is the name of the cookie read by the check
	// session iframe. Defaults to "oidc_session_mgmt".
	SessionStateCookieName string

	// Logger is the structured logger of the endpoint. Defaults to a no-op logger.
	Logger *zerolog.Logger

	// Clock provides the time source. Defaults to the system clock.
	Clock ClockProvider
}

func (c *Config) GetIssuer(ctx context.Context) string {
	return c.Issuer
}

// GetIDTokenLifespan returns how long an id token should be valid. Defaults to one hour.
func (c *Config) GetIDTokenLifespan(_ context.Context) time.Duration {
	if c.IDTokenLifespan == 0 {
		return time.Hour
	}

	return c.IDTokenLifespan
}

func (c *Config) GetAllowedPrompts(_ context.Context) []string {
	if len(c.AllowedPromptValues) == 0 {
		return []string{"login", "none", "consent", "select_account"}
	}

	return c.AllowedPromptValues
}

// GetMinParameterEntropy returns MinParameterEntropy if set. Defaults to oidcendpoint.MinParameterEntropy.
func (c *Config) GetMinParameterEntropy(_ context.Context) int {
	if c.MinParameterEntropy == 0 {
		return MinParameterEntropy
	}

	return c.MinParameterEntropy
}

func (c *Config) GetGlobalSecret(ctx context.Context) ([]byte, error) {
	return c.GlobalSecret, nil
}

func (c *Config) GetSendDebugMessagesToClients(ctx context.Context) bool {
	return c.SendDebugMessagesToClients
}

func (c *Config) GetBCryptCost(ctx context.Context) int {
	return c.HashCost
}

func (c *Config) GetHTTPClient(ctx context.Context) *retryablehttp.Client {
	if c.HTTPClient == nil {
		return retryablehttp.NewClient()
	}

	return c.HTTPClient
}

func (c *Config) GetMessageCatalog(ctx context.Context) i18n.MessageCatalog {
	return c.MessageCatalog
}

func (c *Config) GetFormPostHTMLTemplate(ctx context.Context) *template.Template {
	if c.FormPostHTMLTemplate == nil {
		return DefaultFormPostTemplate
	}

	return c.FormPostHTMLTemplate
}

func (c *Config) GetFormPostResponseWriter(ctx context.Context) FormPostResponseWriter {
	if c.FormPostResponseWriter == nil {
		c.FormPostResponseWriter = DefaultFormPostResponseWriter
	}

	return c.FormPostResponseWriter
}

func (c *Config) GetCheckSessionIFrame(ctx context.Context) string {
	return c.CheckSessionIFrame
}

func (c *Config) GetSessionCookieName(ctx context.Context) string {
	if c.SessionCookieName == "" {
		return defaultSessionCookieName
	}

	return c.SessionCookieName
}

func (c *Config) GetSessionStateCookieName(ctx context.Context) string {
	if c.SessionStateCookieName == "" {
		return defaultSessionStateCookieName
	}

	return c.SessionStateCookieName
}

func (c *Config) GetLogger(ctx context.Context) zerolog.Logger {
	if c.Logger == nil {
		logger := zerolog.Nop()
		c.Logger = &logger
	}

	return *c.Logger
}

func (c *Config) GetClock(ctx context.Context) ClockProvider {
	if c.Clock == nil {
		c.Clock = NewRealClock()
	}

	return c.Clock
}

var (
	_ Configurator = (*Config)(nil)
)
