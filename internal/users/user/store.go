// Copyright (c) 2026 Inkwell CMS. All rights reserved.

/*
Package user handles account management: registration, profile listing and
retrieval, profile updates, and account removal.

# Architecture

  - Entities: This package depends on the auth package for the User entity.
  - Authorization: Ownership and role checks are delegated to [sec] policies.
  - Storage: PostgreSQL via the domain-defined [Repository] contract.
*/
package user

import (
	"context"

	"github.com/inkwell-cms/inkwell/internal/users/auth"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Repository Contracts

// Repository defines the persistence contract for account management.
type Repository interface {
	/*
		List returns a page of accounts ordered by creation time, plus the
		total number of accounts for pagination metadata.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params

		Returns:
		  - []auth.User: Page of hydrated accounts
		  - int: Total account count
		  - error: Retrieval failures
	*/
	List(context context.Context, params pagination.Params) ([]auth.User, int, error)

	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		Create persists a brand-new account.

		Parameters:
		  - context: context.Context
		  - user: *auth.User

		Returns:
		  - error: Conflict on duplicate username/email, or storage failures
	*/
	Create(context context.Context, user *auth.User) error

	/*
		Update persists changes to the mutable fields of an existing account.

		Parameters:
		  - context: context.Context
		  - user: *auth.User (Hydrated entity with changes)

		Returns:
		  - error: apperr.NotFound, Conflict, or storage failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		Delete permanently removes an account.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound when no row matched, or storage failures
	*/
	Delete(context context.Context, id string) error
}
