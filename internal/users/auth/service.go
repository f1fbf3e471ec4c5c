// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for minting signed access tokens.
type TokenProvider interface {
	// Generate creates a signed JWT string embedding the user's identity snapshot.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - displayName: The public display name of the account.
	//   - username: The unique login name of the account.
	//   - email: The email address of the account.
	//   - role: The authorization role of the account.
	//   - pictureRef: The profile picture reference (may be empty).
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	Generate(userID, displayName, username, email string, role sec.UserRole, pictureRef string) (string, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to credential checking
// or token issuance must be reviewed by the security team.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new authentication [Service] with its dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession represents a successfully established stateless session.
type LoginSession struct {
	Token string
	User  *User
}

/*
Login validates user credentials and issues a signed access token.

Description: Resolves the principal by username and performs constant-time
password comparison. Unknown usernames and wrong passwords both produce the
same generic Unauthorized err so that the endpoint cannot be used to probe
which usernames exist.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready token plus the resolved principal
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// ── 1. Resolve the principal ──
	// A lookup miss is deliberately indistinguishable from a bad password.
	user, err := service.userRepository.FindByUsername(context, input.Username)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 2. Verify the password ──
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 3. Mint the stateless access token ──
	token, err := service.tokenProvider.Generate(
		user.ID, user.DisplayName, user.Username, user.Email, user.Role, user.PictureRef,
	)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_sign_failed: %w", err)
	}

	return &LoginSession{Token: token, User: user}, nil
}

/*
Refresh re-issues a fresh access token for an already-authenticated principal.

Description: Re-reads the account from storage so the new token reflects the
current role and profile rather than the snapshot embedded in the presented
token. An account deleted since the old token was minted yields NotFound,
which closes the window in which a stale token could be traded for a new one.

Parameters:
  - context: context.Context
  - userID: string (taken from the verified claims of the current token)

Returns:
  - string: Newly signed access token with a full validity window
  - err: NotFound when the account no longer exists, or signing failures
*/
func (service *Service) Refresh(context context.Context, userID string) (string, error) {

	// Re-resolve the principal. The presented token is NOT trusted for
	// role or profile data here.
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return "", err
	}

	token, err := service.tokenProvider.Generate(
		user.ID, user.DisplayName, user.Username, user.Email, user.Role, user.PictureRef,
	)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_sign_failed: %w", err)
	}

	return token, nil
}

/*
ResolvePrincipal loads the full account behind a verified token.

Description: Backs the "who am I" endpoint. The token claims carry only an
identity snapshot; this returns the live database row.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *User: Hydrated entity
  - err: NotFound or storage failures
*/
func (service *Service) ResolvePrincipal(context context.Context, userID string) (*User, error) {
	return service.userRepository.FindByID(context, userID)
}
