// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/internal/users/auth"
)

// fakeUserRepository is an in-memory UserRepository keyed by ID and username.
type fakeUserRepository struct {
	users map[string]*auth.User
}

func newFakeUserRepository(users ...*auth.User) *fakeUserRepository {
	repository := &fakeUserRepository{users: map[string]*auth.User{}}
	for _, user := range users {
		repository.users[user.ID] = user
	}
	return repository
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func testAccount(t *testing.T) *auth.User {
	t.Helper()

	hash, err := sec.HashPassword("Sunrise42")
	require.NoError(t, err)

	return &auth.User{
		ID:           "user-1",
		DisplayName:  "Quill Penner",
		Username:     "quill",
		Email:        "quill@inkwell.blog",
		PasswordHash: hash,
		Role:         sec.RoleAuthor,
	}
}

func testTokenService(t *testing.T) *sec.TokenService {
	t.Helper()

	tokens, err := sec.NewTokenService("test-secret", "inkwell.blog", time.Hour)
	require.NoError(t, err)
	return tokens
}

/*
TestService_Login verifies that valid credentials yield a verifiable token
carrying the principal's current identity snapshot.
*/
func TestService_Login(t *testing.T) {
	tokens := testTokenService(t)
	service := auth.NewService(newFakeUserRepository(testAccount(t)), tokens)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Username: "quill",
		Password: "Sunrise42",
	})
	require.NoError(t, err)
	require.NotNil(t, session.User)
	assert.Equal(t, "user-1", session.User.ID)

	claims, err := tokens.VerifyToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, string(sec.RoleAuthor), claims.Role)
}

/*
TestService_Login_BadCredentials verifies that unknown usernames and wrong
passwords are indistinguishable to the caller.
*/
func TestService_Login_BadCredentials(t *testing.T) {
	service := auth.NewService(newFakeUserRepository(testAccount(t)), testTokenService(t))

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown_username", "nobody", "Sunrise42"},
		{"wrong_password", "quill", "Sunset99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), auth.LoginInput{
				Username: tt.username,
				Password: tt.password,
			})
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "UNAUTHORIZED", ae.Code)
			assert.Equal(t, "Invalid login credentials", ae.Message)
		})
	}
}

/*
TestService_Refresh verifies that a refreshed token reflects the account's
current role rather than the snapshot in the presented token.
*/
func TestService_Refresh(t *testing.T) {
	account := testAccount(t)
	repository := newFakeUserRepository(account)
	tokens := testTokenService(t)
	service := auth.NewService(repository, tokens)

	// Promote the account after the original token would have been minted.
	account.Role = sec.RoleEditor

	refreshed, err := service.Refresh(context.Background(), account.ID)
	require.NoError(t, err)

	claims, err := tokens.VerifyToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, string(sec.RoleEditor), claims.Role)
}

/*
TestService_Refresh_DeletedAccount verifies that a token for a removed account
cannot be traded for a fresh one.
*/
func TestService_Refresh_DeletedAccount(t *testing.T) {
	service := auth.NewService(newFakeUserRepository(), testTokenService(t))

	_, err := service.Refresh(context.Background(), "gone")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
