// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package auth

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract the authentication flows need.
//
// It is intentionally narrower than the full account repository in the user
// package: authentication only resolves principals, it never mutates them.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)
}
