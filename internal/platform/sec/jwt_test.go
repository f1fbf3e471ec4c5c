// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-cms/inkwell/internal/platform/sec"
)

/*
TestTokenService_RoundTrip verifies that a generated token carries the full
principal snapshot back through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "inkwell.blog", time.Hour)
	require.NoError(t, err)

	token, err := service.Generate("user-1", "Quill Penner", "quill", "quill@inkwell.blog", sec.RoleAuthor, "avatars/quill.png")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Quill Penner", claims.DisplayName)
	assert.Equal(t, "quill", claims.Username)
	assert.Equal(t, "quill@inkwell.blog", claims.Email)
	assert.Equal(t, string(sec.RoleAuthor), claims.Role)
	assert.Equal(t, sec.RoleAuthor.ID(), claims.RoleID)
	assert.Equal(t, "avatars/quill.png", claims.PictureRef)
	assert.Equal(t, "inkwell.blog", claims.Issuer)
}

/*
TestTokenService_Expired verifies that an expired token maps to the dedicated
expiry error rather than the generic invalid one.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "inkwell.blog", -time.Minute)
	require.NoError(t, err)

	token, err := service.Generate("user-1", "Quill Penner", "quill", "quill@inkwell.blog", sec.RoleAuthor, "")
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_WrongSecret verifies that a token signed with another secret
is rejected as invalid.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	signer, err := sec.NewTokenService("secret-a", "inkwell.blog", time.Hour)
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-b", "inkwell.blog", time.Hour)
	require.NoError(t, err)

	token, err := signer.Generate("user-1", "Quill Penner", "quill", "quill@inkwell.blog", sec.RoleSubscriber, "")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestTokenService_Garbage verifies that non-token input is rejected as invalid.
*/
func TestTokenService_Garbage(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "inkwell.blog", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty_string", ""},
		{"not_a_jwt", "hello-world"},
		{"truncated_jwt", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.ErrorIs(t, err, sec.ErrTokenInvalid)
		})
	}
}

/*
TestNewTokenService_EmptySecret verifies that construction refuses an empty
signing secret.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "inkwell.blog", time.Hour)
	assert.Error(t, err)
}
