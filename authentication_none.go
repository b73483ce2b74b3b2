// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// NoAuthn is an AuthenticationMethod that treats every request as already
// authenticated as a fixed user. It is meant for test setups and for
// deployments where authentication happens entirely upstream.
type NoAuthn struct {
	User string

	Config interface {
		ClockConfigProvider
	}
}

func (a *NoAuthn) AuthenticatedAs(ctx context.Context, cookie string, authorization string, maxAge int64) (*Identity, time.Time, error) {
	return &Identity{UID: a.User}, a.Config.GetClock(ctx).Now(), nil
}

func (a *NoAuthn) Invoke(ctx context.Context, args AuthnArgs) (*AuthnChallenge, error) {
	return nil, errors.New("NoAuthn does not support interactive authentication")
}

// Done always reports false, the method has no interaction that could be
// outstanding and must never be re-challenged.
func (a *NoAuthn) Done(request *AuthorizationRequest) bool {
	return false
}

var _ AuthenticationMethod = (*NoAuthn)(nil)
