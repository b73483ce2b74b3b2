// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
)

// StringInSlice returns true if needle exists in haystack using a case-sensitive comparison.
func StringInSlice(needle string, haystack []string) bool {
	for _, b := range haystack {
		if b == needle {
			return true
		}
	}

	return false
}

// StringInSliceFold returns true if needle exists in haystack using a case-insensitive comparison.
func StringInSliceFold(needle string, haystack []string) bool {
	for _, b := range haystack {
		if strings.EqualFold(b, needle) {
			return true
		}
	}

	return false
}

// RemoveEmpty returns a copy of args without empty or whitespace-only items.
func RemoveEmpty(args []string) (ret []string) {
	for _, v := range args {
		v = strings.TrimSpace(v)
		if v != "" {
			ret = append(ret, v)
		}
	}

	return
}

// RandomString returns a URL-safe random string with n bytes of entropy.
func RandomString(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on the supported platforms.
		panic(err)
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

// EscapeJSONString does a poor man's JSON encoding. Escaping is not a complete
// implementation but rather just replaces the double quote and backslash so
// the result can be embedded in a JSON string value.
func EscapeJSONString(str string) string {
	str = strings.ReplaceAll(str, "\\", "\\\\")

	return strings.ReplaceAll(str, "\"", "\\\"")
}
