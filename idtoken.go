// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oidcendpoint

import (
	"bytes"
	"context"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"github.com/go-jose/go-jose/v3"
	"github.com/pkg/errors"

	"github.com/jschlyter/oidcendpoint/internal/consts"
	"github.com/jschlyter/oidcendpoint/internal/errorsx"
)

// IDTokenRequest carries everything needed to mint an ID token for an
// authorization response.
type IDTokenRequest struct {
	Session *Session
	Request *AuthorizationRequest

	// Code, when set, is hashed into the c_hash claim.
	Code string

	// AccessToken, when set, is hashed into the at_hash claim.
	AccessToken string

	// UserClaims requests that the user's claims are embedded in the token.
	// This is done when the ID token is the only artifact of the response.
	UserClaims bool
}

// IDTokenStrategy mints ID tokens.
type IDTokenStrategy interface {
	MintIDToken(ctx context.Context, request IDTokenRequest) (token string, err error)
}

// UserClaimsSource resolves the claims of a user for embedding into ID
// tokens.
type UserClaimsSource interface {
	UserClaims(ctx context.Context, uid string) (claims map[string]any, err error)
}

// DefaultIDTokenStrategy mints RS256 signed ID tokens.
type DefaultIDTokenStrategy struct {
	Key   *rsa.PrivateKey
	KeyID string

	// Claims optionally resolves user claims, nil disables claim embedding.
	Claims UserClaimsSource

	Config interface {
		IssuerProvider
		IDTokenLifespanProvider
		ClockConfigProvider
	}
}

func (s *DefaultIDTokenStrategy) MintIDToken(ctx context.Context, request IDTokenRequest) (string, error) {
	if s.Key == nil {
		return "", errorsx.WithStack(errors.New("no suitable signing key configured"))
	}

	now := s.Config.GetClock(ctx).Now()

	claims := map[string]any{
		consts.ClaimIssuer:         s.Config.GetIssuer(ctx),
		consts.ClaimSubject:        request.Session.UID,
		consts.ClaimAudience:       []string{request.Session.ClientID},
		consts.ClaimIssuedAt:       now.Unix(),
		consts.ClaimExpirationTime: now.Add(s.Config.GetIDTokenLifespan(ctx)).Unix(),
	}

	if !request.Session.AuthnEvent.AuthnTime.IsZero() {
		claims[consts.ClaimAuthenticationTime] = request.Session.AuthnEvent.AuthnTime.Unix()
	}

	if acr := request.Session.AuthnEvent.ACR; acr != "" {
		claims[consts.ClaimAuthenticationContextClassRef] = acr
	}

	if nonce := request.Request.Nonce; nonce != "" {
		claims[consts.ClaimNonce] = nonce
	}

	if request.Code != "" {
		claims[consts.ClaimCodeHash] = LeftmostHash(request.Code)
	}

	if request.AccessToken != "" {
		claims[consts.ClaimAccessTokenHash] = LeftmostHash(request.AccessToken)
	}

	if request.UserClaims && s.Claims != nil {
		userinfo, err := s.Claims.UserClaims(ctx, request.Session.UID)
		if err != nil {
			return "", errorsx.WithStack(err)
		}

		for name, value := range userinfo {
			if _, reserved := claims[name]; !reserved {
				claims[name] = value
			}
		}
	}

	signer, err := jose.NewSigner(jose.SigningKey{
		Algorithm: jose.RS256,
		Key:       jose.JSONWebKey{Key: s.Key, KeyID: s.KeyID},
	}, (&jose.SignerOptions{}).WithType("JWT"))
	if err != nil {
		return "", errorsx.WithStack(err)
	}

	payload, err := marshalClaims(claims)
	if err != nil {
		return "", err
	}

	object, err := signer.Sign(payload)
	if err != nil {
		return "", errorsx.WithStack(err)
	}

	token, err := object.CompactSerialize()
	if err != nil {
		return "", errorsx.WithStack(err)
	}

	return token, nil
}

func marshalClaims(claims map[string]any) ([]byte, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return nil, errorsx.WithStack(err)
	}

	return payload, nil
}

// LeftmostHash computes an OpenID Connect token hash, the base64url encoded
// left half of the SHA-256 digest, as used for c_hash and at_hash with
// RS256.
func LeftmostHash(token string) string {
	h := sha256.New()

	if _, err := h.Write([]byte(token)); err != nil {
		// The sha256.Digest function Write always returns nil for err, the panic should never happen.
		panic(err)
	}

	hashBuf := bytes.NewBuffer(h.Sum([]byte{}))

	return base64.RawURLEncoding.EncodeToString(hashBuf.Bytes()[:hashBuf.Len()/2])
}

var _ IDTokenStrategy = (*DefaultIDTokenStrategy)(nil)
