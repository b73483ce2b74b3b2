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

// IssuerProvider returns the provider for configuring the issuer identifier.
type IssuerProvider interface {
	// GetIssuer returns the issuer identifier of this provider.
	GetIssuer(ctx context.Context) (issuer string)
}

// IDTokenLifespanProvider returns the provider for configuring the ID token lifespan.
type IDTokenLifespanProvider interface {
	// GetIDTokenLifespan returns the ID token lifespan.
	GetIDTokenLifespan(ctx context.Context) time.Duration
}

// AllowedPromptsProvider returns the provider for configuring the allowed prompts.
type AllowedPromptsProvider interface {
	// GetAllowedPrompts returns the allowed prompts.
	GetAllowedPrompts(ctx context.Context) (prompts []string)
}

// MinParameterEntropyProvider returns the provider for configuring the minimum parameter entropy.
type MinParameterEntropyProvider interface {
	// GetMinParameterEntropy returns the minimum parameter entropy.
	GetMinParameterEntropy(_ context.Context) (min int)
}

// GlobalSecretProvider returns the provider for configuring the global secret.
type GlobalSecretProvider interface {
	// GetGlobalSecret returns the global secret.
	GetGlobalSecret(ctx context.Context) (secret []byte, err error)
}

// SendDebugMessagesToClientsProvider returns the provider for configuring the send debug messages to clients.
type SendDebugMessagesToClientsProvider interface {
	// GetSendDebugMessagesToClients returns the send debug messages to clients.
	GetSendDebugMessagesToClients(ctx context.Context) (send bool)
}

// HTTPClientProvider returns the provider for configuring the HTTP client.
type HTTPClientProvider interface {
	// GetHTTPClient returns the HTTP client provider.
	GetHTTPClient(ctx context.Context) (client *retryablehttp.Client)
}

// MessageCatalogProvider returns the provider for configuring the message catalog.
type MessageCatalogProvider interface {
	// GetMessageCatalog returns the message catalog.
	GetMessageCatalog(ctx context.Context) (catalog i18n.MessageCatalog)
}

// FormPostHTMLTemplateProvider returns the provider for configuring the form post HTML template.
type FormPostHTMLTemplateProvider interface {
	// GetFormPostHTMLTemplate returns the form post HTML template.
	GetFormPostHTMLTemplate(ctx context.Context) (tmpl *template.Template)
}

// FormPostResponseProvider provides a writer interface for writing the form post responses.
type FormPostResponseProvider interface {
	// GetFormPostResponseWriter returns a FormPostResponseWriter which should be utilized for writing the
	// form post response type.
	GetFormPostResponseWriter(ctx context.Context) FormPostResponseWriter
}

// BCryptCostProvider returns the provider for configuring the bcrypt cost.
type BCryptCostProvider interface {
	// GetBCryptCost returns the bcrypt cost.
	GetBCryptCost(ctx context.Context) (cost int)
}

// ClockConfigProvider is the configuration provider for clock functionality.
type ClockConfigProvider interface {
	// GetClock returns the configured ClockProvider.
	GetClock(ctx context.Context) ClockProvider
}

// CheckSessionIFrameProvider returns the provider for configuring the session management iframe.
type CheckSessionIFrameProvider interface {
	// GetCheckSessionIFrame returns the URL of the check session iframe, or
	// an empty string when session management is disabled.
	GetCheckSessionIFrame(ctx context.Context) (uri string)
}

// SessionCookieNamesProvider returns the provider for configuring the session cookie names.
type SessionCookieNamesProvider interface {
	// GetSessionCookieName returns the name of the session cookie.
	GetSessionCookieName(ctx context.Context) (name string)

	// GetSessionStateCookieName returns the name of the session state cookie
	// read by the check session iframe.
	GetSessionStateCookieName(ctx context.Context) (name string)
}

// LoggerProvider returns the provider for configuring the logger.
type LoggerProvider interface {
	// GetLogger returns the logger.
	GetLogger(ctx context.Context) zerolog.Logger
}

// Configurator is the combined configuration surface of the authorization
// endpoint and its collaborators.
type Configurator interface {
	IssuerProvider
	IDTokenLifespanProvider
	AllowedPromptsProvider
	MinParameterEntropyProvider
	GlobalSecretProvider
	SendDebugMessagesToClientsProvider
	HTTPClientProvider
	MessageCatalogProvider
	FormPostHTMLTemplateProvider
	FormPostResponseProvider
	BCryptCostProvider
	ClockConfigProvider
	CheckSessionIFrameProvider
	SessionCookieNamesProvider
	LoggerProvider
}
