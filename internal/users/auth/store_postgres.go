// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// userColumns is the canonical projection shared by every account lookup.
const userColumns = `
	id, displayname, username, email, passwordhash, biography, pictureref, roleid, createdat, updatedat`

/*
FindByID retrieves a user record by their unique ID.

Description: Standard primary-key lookup used for token refresh and principal
introspection.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := `SELECT` + userColumns + `
		FROM users.account
		WHERE id = $1`

	user, err := scanUserRow(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_id_failed: %w", err)
	}

	return user, nil
}

/*
FindByUsername retrieves a user record by their unique username.

Description: Lookup by username for the credential exchange flow.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	query := `SELECT` + userColumns + `
		FROM users.account
		WHERE username = $1`

	user, err := scanUserRow(repository.pool.QueryRow(context, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_username_failed: %w", err)
	}

	return user, nil
}

// scanUserRow hydrates a User from the canonical column projection.
// The role is persisted as a numeric identifier and mapped back to its
// symbolic form at this boundary.
func scanUserRow(row pgx.Row) (*User, error) {
	var (
		user   User
		roleID int
	)

	err := row.Scan(
		&user.ID,
		&user.DisplayName,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Biography,
		&user.PictureRef,
		&roleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = sec.RoleFromID(roleID)
	if !user.Role.IsValid() {
		return nil, fmt.Errorf("postgres_user_repo_unknown_role_id: %d", roleID)
	}

	return &user, nil
}
