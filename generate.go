// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/hash.go github.com/jschlyter/oidcendpoint Hasher
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/session_store.go github.com/jschlyter/oidcendpoint SessionStore
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/client_store.go github.com/jschlyter/oidcendpoint ClientStore
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/authentication_method.go github.com/jschlyter/oidcendpoint AuthenticationMethod
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/authorizer.go github.com/jschlyter/oidcendpoint Authorizer
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/id_token_strategy.go github.com/jschlyter/oidcendpoint IDTokenStrategy
//go:generate go run go.uber.org/mock/mockgen -package internal -destination internal/cookie_dealer.go github.com/jschlyter/oidcendpoint CookieDealer
