// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/dberr"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/internal/users/auth"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Account Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the account Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const accountColumns = `
	id, displayname, username, email, passwordhash, biography, pictureref, roleid, createdat, updatedat`

/*
List returns one page of accounts ordered by creation time, plus the total count.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []auth.User: Page of hydrated accounts
  - int: Total account count
  - error: Retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, params pagination.Params) ([]auth.User, int, error) {
	query := `SELECT` + accountColumns + `
		FROM users.account
		ORDER BY createdat ` + params.OrderSQL() + `
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "user_repo_list")
	}
	defer rows.Close()

	var accounts []auth.User
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "user_repo_list_scan")
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "user_repo_list_rows")
	}

	var total int
	if err := repository.pool.QueryRow(context, `SELECT COUNT(*) FROM users.account`).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "user_repo_count")
	}

	return accounts, total, nil
}

/*
FindByID retrieves a user record by their unique ID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *auth.User: Loaded account entity
  - error: apperr.NotFound or storage failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	query := `SELECT` + accountColumns + `
		FROM users.account
		WHERE id = $1`

	account, err := scanAccount(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "user_repo_find_by_id")
	}

	return account, nil
}

/*
Create persists a new account row.

Parameters:
  - context: context.Context
  - user: *auth.User (Entity to persist)

Returns:
  - error: Conflict on unique violations, or storage failures
*/
func (repository *PostgresRepository) Create(context context.Context, user *auth.User) error {
	const query = `
		INSERT INTO users.account (
			id, displayname, username, email, passwordhash, biography, pictureref, roleid, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.DisplayName,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Biography,
		user.PictureRef,
		user.Role.ID(),
		user.CreatedAt,
		user.UpdatedAt,
	)

	return dberr.Wrap(err, "user_repo_create")
}

/*
Update persists the mutable fields of an existing account.

Parameters:
  - context: context.Context
  - user: *auth.User (Hydrated entity with changes)

Returns:
  - error: apperr.NotFound when no row matched, Conflict, or storage failures
*/
func (repository *PostgresRepository) Update(context context.Context, user *auth.User) error {
	const query = `
		UPDATE users.account
		SET displayname = $2,
		    username    = $3,
		    email       = $4,
		    passwordhash = $5,
		    biography   = $6,
		    pictureref  = $7,
		    roleid      = $8,
		    updatedat   = $9
		WHERE id = $1`

	user.UpdatedAt = time.Now()

	tag, err := repository.pool.Exec(context, query,
		user.ID,
		user.DisplayName,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Biography,
		user.PictureRef,
		user.Role.ID(),
		user.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "user_repo_update")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

/*
Delete permanently removes an account row.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound when no row matched, or storage failures
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.pool.Exec(context, `DELETE FROM users.account WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "user_repo_delete")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

// scanAccount hydrates an account from the canonical column projection.
func scanAccount(row pgx.Row) (*auth.User, error) {
	var (
		account auth.User
		roleID  int
	)

	err := row.Scan(
		&account.ID,
		&account.DisplayName,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.Biography,
		&account.PictureRef,
		&roleID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Role = sec.RoleFromID(roleID)
	if !account.Role.IsValid() {
		return nil, fmt.Errorf("user_repo_unknown_role_id: %d", roleID)
	}

	return &account, nil
}
