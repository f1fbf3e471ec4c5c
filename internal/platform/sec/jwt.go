// Copyright (c) 2026 Inkwell CMS. All rights reserved.

// Package sec provides cryptographic primitives, token management, and the
// role/ownership authorization policy.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the TokenProvider interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure classes. Handlers map both to HTTP 401 but with
// distinct client-facing messages.
var (
	// ErrTokenExpired marks a structurally valid token whose exp claim has passed.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenInvalid marks a token with a bad signature, wrong algorithm, or
	// malformed payload.
	ErrTokenInvalid = errors.New("sec: invalid token")
)

// AuthClaims represents the payload embedded inside a JWT Access Token.
//
// # Why custom claims?
//
// By embedding the full principal snapshot (identity, role, picture) directly
// inside the JWT, handlers can evaluate ownership and role policy WITHOUT
// querying the database on every single API request. Claim names are
// abbreviated to keep the JWT payload small.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID      string `json:"uid"`
	DisplayName string `json:"dnm"`
	Username    string `json:"unm"`
	Email       string `json:"eml"`
	RoleID      int    `json:"rid"`
	Role        string `json:"rol"`
	PictureRef  string `json:"pic,omitempty"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The signing secret is injected at construction time (never read from
// ambient/global state) so tests can run with a deterministic key.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a new TokenService signing with the given secret.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: signing secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Generate creates a new signed access token embedding the principal snapshot.
//
// The expiry is set to now + the configured TTL. Token construction is pure:
// no state is recorded server-side.
func (service *TokenService) Generate(userID, displayName, username, email string, role UserRole, pictureRef string) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		UserID:      userID,
		DisplayName: displayName,
		Username:    username,
		Email:       email,
		RoleID:      role.ID(),
		Role:        string(role),
		PictureRef:  pictureRef,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// # Returns
//   - *AuthClaims on success.
//   - [ErrTokenExpired] when the signature is valid but the exp claim has passed.
//   - [ErrTokenInvalid] for every other failure (bad signature, wrong alg, garbage).
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
