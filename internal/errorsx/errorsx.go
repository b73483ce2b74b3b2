// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package errorsx

import (
	"github.com/pkg/errors"
)

// StackTracer is implemented by errors carrying a pkg/errors stack trace.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// WithStack wraps err with a stack trace unless it already carries one.
func WithStack(err error) error {
	if _, ok := err.(StackTracer); ok {
		return err
	}

	return errors.WithStack(err)
}

// DebugCarrier is implemented by errors exposing debug information.
type DebugCarrier interface {
	Debug() string
}

// ReasonCarrier is implemented by errors exposing a human readable reason.
type ReasonCarrier interface {
	Reason() string
}

// StatusCarrier is implemented by errors exposing an HTTP status text.
type StatusCarrier interface {
	Status() string
}

// StatusCodeCarrier is implemented by errors exposing an HTTP status code.
type StatusCodeCarrier interface {
	StatusCode() int
}
