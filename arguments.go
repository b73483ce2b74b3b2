// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import "strings"

// Arguments is a list of string values, typically the space-delimited parts of
// a request parameter such as response_type or scope.
type Arguments []string

// Matches performs an exact (unordered) set comparison between the arguments
// and the given items. Duplicates are collapsed on both sides.
func (r Arguments) Matches(items ...string) bool {
	found := make(map[string]bool)
	for _, item := range items {
		if !StringInSlice(item, r) {
			return false
		}
		found[item] = true
	}

	return len(found) == len(r.Unique())
}

// Has returns true if all given items are contained in the arguments.
func (r Arguments) Has(items ...string) bool {
	for _, item := range items {
		if !StringInSlice(item, r) {
			return false
		}
	}

	return true
}

// HasOneOf returns true if at least one of the given items is contained in the
// arguments.
func (r Arguments) HasOneOf(items ...string) bool {
	for _, item := range items {
		if StringInSlice(item, r) {
			return true
		}
	}

	return false
}

// ExactOne returns true if the arguments hold exactly the one given item.
func (r Arguments) ExactOne(name string) bool {
	return len(r) == 1 && r[0] == name
}

// Unique returns the arguments with duplicates removed, preserving order of
// first occurrence.
func (r Arguments) Unique() Arguments {
	ret := make(Arguments, 0, len(r))
	for _, item := range r {
		if !StringInSlice(item, ret) {
			ret = append(ret, item)
		}
	}

	return ret
}

// String returns the arguments joined by a single space.
func (r Arguments) String() string {
	return strings.Join(r, " ")
}
