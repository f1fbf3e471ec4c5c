// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/internal/users/auth"
	"github.com/inkwell-cms/inkwell/internal/users/user"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
	"github.com/inkwell-cms/inkwell/pkg/pointer"
)

// fakeRepository is an in-memory Repository used to exercise the service
// logic without a database.
type fakeRepository struct {
	accounts map[string]*auth.User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{accounts: map[string]*auth.User{}}
}

func (f *fakeRepository) List(_ context.Context, _ pagination.Params) ([]auth.User, int, error) {
	var all []auth.User
	for _, account := range f.accounts {
		all = append(all, *account)
	}
	return all, len(all), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	clone := *account
	return &clone, nil
}

func (f *fakeRepository) Create(_ context.Context, account *auth.User) error {
	for _, existing := range f.accounts {
		if existing.Username == account.Username {
			return apperr.Conflict("Resource already exists")
		}
	}
	clone := *account
	f.accounts[account.ID] = &clone
	return nil
}

func (f *fakeRepository) Update(_ context.Context, account *auth.User) error {
	if _, ok := f.accounts[account.ID]; !ok {
		return apperr.NotFound("User")
	}
	clone := *account
	f.accounts[account.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.accounts[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(f.accounts, id)
	return nil
}

func claimsFor(userID string, role sec.UserRole) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, RoleID: role.ID(), Role: string(role)}
}

/*
TestService_Register verifies that new accounts start at the lowest tier with
a hashed (never plain-text) password.
*/
func TestService_Register(t *testing.T) {
	repository := newFakeRepository()
	service := user.NewService(repository)

	account, err := service.Register(context.Background(), user.RegisterInput{
		DisplayName: "Quill Penner",
		Username:    "quill",
		Password:    "Sunrise42",
		Email:       "quill@inkwell.blog",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, sec.RoleSubscriber, account.Role)
	assert.NotEqual(t, "Sunrise42", account.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("Sunrise42", account.PasswordHash))
}

/*
TestService_Register_DuplicateUsername verifies the Conflict propagation from
the storage layer.
*/
func TestService_Register_DuplicateUsername(t *testing.T) {
	repository := newFakeRepository()
	service := user.NewService(repository)

	_, err := service.Register(context.Background(), user.RegisterInput{
		DisplayName: "Quill Penner", Username: "quill", Password: "Sunrise42", Email: "quill@inkwell.blog",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), user.RegisterInput{
		DisplayName: "Other Quill", Username: "quill", Password: "Sunrise42", Email: "other@inkwell.blog",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestService_Update_Ownership verifies the self/ADMIN/deny update policy.
*/
func TestService_Update_Ownership(t *testing.T) {
	repository := newFakeRepository()
	service := user.NewService(repository)

	account, err := service.Register(context.Background(), user.RegisterInput{
		DisplayName: "Quill Penner", Username: "quill", Password: "Sunrise42", Email: "quill@inkwell.blog",
	})
	require.NoError(t, err)

	// Self-update is allowed.
	updated, err := service.Update(context.Background(), claimsFor(account.ID, sec.RoleSubscriber), account.ID, user.UpdateInput{
		DisplayName: pointer.To("Quill P."),
	})
	require.NoError(t, err)
	assert.Equal(t, "Quill P.", updated.DisplayName)

	// A foreign editor is denied: the delete overlay does not extend to updates.
	_, err = service.Update(context.Background(), claimsFor("someone-else", sec.RoleEditor), account.ID, user.UpdateInput{
		DisplayName: pointer.To("Hijacked"),
	})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// A foreign admin is allowed.
	_, err = service.Update(context.Background(), claimsFor("someone-else", sec.RoleAdmin), account.ID, user.UpdateInput{
		DisplayName: pointer.To("Renamed by admin"),
	})
	assert.NoError(t, err)
}

/*
TestService_Update_RoleAssignment verifies that only ADMIN may change a role,
even on their own account, and that unknown roles are rejected.
*/
func TestService_Update_RoleAssignment(t *testing.T) {
	repository := newFakeRepository()
	service := user.NewService(repository)

	account, err := service.Register(context.Background(), user.RegisterInput{
		DisplayName: "Quill Penner", Username: "quill", Password: "Sunrise42", Email: "quill@inkwell.blog",
	})
	require.NoError(t, err)

	// Self-promotion is denied even though self-update is otherwise allowed.
	_, err = service.Update(context.Background(), claimsFor(account.ID, sec.RoleSubscriber), account.ID, user.UpdateInput{
		Role: pointer.To("ADMIN"),
	})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// An admin may promote.
	updated, err := service.Update(context.Background(), claimsFor("root", sec.RoleAdmin), account.ID, user.UpdateInput{
		Role: pointer.To("EDITOR"),
	})
	require.NoError(t, err)
	assert.Equal(t, sec.RoleEditor, updated.Role)

	// Unknown roles are a validation failure, not a silent default.
	_, err = service.Update(context.Background(), claimsFor("root", sec.RoleAdmin), account.ID, user.UpdateInput{
		Role: pointer.To("OVERLORD"),
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_Update_NotFound verifies that a missing target yields NotFound
before any authorization verdict.
*/
func TestService_Update_NotFound(t *testing.T) {
	service := user.NewService(newFakeRepository())

	_, err := service.Update(context.Background(), claimsFor("u1", sec.RoleSubscriber), "ghost", user.UpdateInput{
		DisplayName: pointer.To("Nobody"),
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_Delete verifies the self-or-ADMIN account removal policy: the
content-deletion overlay held by editors does not reach member accounts.
*/
func TestService_Delete(t *testing.T) {
	repository := newFakeRepository()
	service := user.NewService(repository)

	account, err := service.Register(context.Background(), user.RegisterInput{
		DisplayName: "Quill Penner", Username: "quill", Password: "Sunrise42", Email: "quill@inkwell.blog",
	})
	require.NoError(t, err)

	// A foreign author is denied.
	err = service.Delete(context.Background(), claimsFor("someone-else", sec.RoleAuthor), account.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// A foreign editor is denied too: accounts are not content.
	err = service.Delete(context.Background(), claimsFor("someone-else", sec.RoleEditor), account.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// The owner may remove their own account.
	require.NoError(t, service.Delete(context.Background(), claimsFor(account.ID, sec.RoleSubscriber), account.ID))

	// Deleting again yields NotFound.
	err = service.Delete(context.Background(), claimsFor("root", sec.RoleAdmin), account.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_Delete_AdminOnForeign verifies that an administrator may remove
any account.
*/
func TestService_Delete_AdminOnForeign(t *testing.T) {
	repository := newFakeRepository()
	service := user.NewService(repository)

	account, err := service.Register(context.Background(), user.RegisterInput{
		DisplayName: "Quill Penner", Username: "quill", Password: "Sunrise42", Email: "quill@inkwell.blog",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), claimsFor("root", sec.RoleAdmin), account.ID))
}
