// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
)

// ComputeSessionState derives the session_state value for front channel
// session monitoring. The relying party reproduces the hash from the salt
// appended after the dot, so the salt must be fresh per computation and is
// always part of the final string.
func ComputeSessionState(state, salt, clientID, redirectURI string) string {
	origin := rpOrigin(redirectURI)

	sum := sha256.Sum256([]byte(clientID + " " + origin + " " + state + " " + salt))

	return hex.EncodeToString(sum[:]) + "." + salt
}

// rpOrigin reduces a redirect URI to its origin, scheme plus host and port.
func rpOrigin(redirectURI string) string {
	parsed, err := url.Parse(redirectURI)
	if err != nil {
		return ""
	}

	return parsed.Scheme + "://" + parsed.Host
}
