// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth implements the bundled authorization collaborator of the
// request pipeline: HS256 bearer tokens carrying the caller's user id ("sub")
// and organization id ("org"), and an HTTP middleware that verifies them.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-typed-routes/internal/config"
	"github.com/MKhiriev/go-typed-routes/models"
)

// Authenticator issues and verifies JWT tokens.
type Authenticator struct {
	signKey  string
	issuer   string
	duration time.Duration

	now func() time.Time
}

// NewAuthenticator builds an Authenticator from the auth configuration.
func NewAuthenticator(cfg config.Auth) *Authenticator {
	return &Authenticator{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      time.Now,
	}
}

// Issue creates a signed HMAC-SHA256 token for id.
//
// The token includes the following claims:
//   - iss: the configured issuer
//   - sub: the user ID encoded as a string
//   - org: the organization ID, when set
//   - iat / exp: issue time and issue time plus the configured duration
func (a *Authenticator) Issue(id models.Identity) (models.Token, error) {
	if a.issuer == "" || a.duration <= 0 || a.signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := a.now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   strconv.FormatInt(id.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		OrganizationID: id.OrganizationID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:          token,
		SignedString:   signed,
		UserID:         id.UserID,
		OrganizationID: id.OrganizationID,
	}, nil
}

// Parse verifies tokenString (signature, algorithm, issuer, expiry) and
// extracts the caller identity. Expired tokens return ErrTokenIsExpired,
// anything else ErrInvalidToken wrapping the cause.
func (a *Authenticator) Parse(tokenString string) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(a.signKey), nil
	},
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims.Token = token
	claims.UserID = userID
	claims.SignedString = tokenString
	return *claims, nil
}
