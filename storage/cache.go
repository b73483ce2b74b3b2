// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"

	"github.com/jschlyter/oidcendpoint"
)

// CachedClientStore caches client lookups in front of a slower upstream
// store, typically one backed by a database or a remote registry. Negative
// lookups are not cached so freshly registered clients are picked up
// immediately.
type CachedClientStore struct {
	upstream oidcendpoint.ClientStore
	cache    *ristretto.Cache
	ttl      time.Duration
}

// NewCachedClientStore returns a CachedClientStore holding entries for the
// given time to live.
func NewCachedClientStore(upstream oidcendpoint.ClientStore, ttl time.Duration) (*CachedClientStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000,
		MaxCost:     1000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &CachedClientStore{upstream: upstream, cache: cache, ttl: ttl}, nil
}

func (s *CachedClientStore) GetClient(ctx context.Context, id string) (oidcendpoint.Client, error) {
	if cached, ok := s.cache.Get(id); ok {
		return cached.(oidcendpoint.Client), nil
	}

	client, err := s.upstream.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetWithTTL(id, client, 1, s.ttl)

	return client, nil
}

// Wait blocks until buffered writes have been applied to the cache.
func (s *CachedClientStore) Wait() {
	s.cache.Wait()
}

var _ oidcendpoint.ClientStore = (*CachedClientStore)(nil)
