// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package category

import (
	"context"

	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Repository Contracts

// Repository defines the persistence contract for categories.
type Repository interface {
	/*
		List returns a page of categories ordered by name, plus the total count.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params

		Returns:
		  - []Category: Page of categories
		  - int: Total count
		  - error: Retrieval failures
	*/
	List(context context.Context, params pagination.Params) ([]Category, int, error)

	/*
		FindByID retrieves one category.

		Parameters:
		  - context: context.Context
		  - id: int

		Returns:
		  - *Category: Hydrated entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id int) (*Category, error)

	/*
		FindBySlug retrieves one category by its slug.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Category: Hydrated entity
		  - error: apperr.NotFound or storage failures
	*/
	FindBySlug(context context.Context, slug string) (*Category, error)

	/*
		Create persists a new category.

		Parameters:
		  - context: context.Context
		  - category: *Category

		Returns:
		  - error: Conflict on duplicate slug, or storage failures
	*/
	Create(context context.Context, category *Category) error

	/*
		Update persists name and slug changes.

		Parameters:
		  - context: context.Context
		  - category: *Category

		Returns:
		  - error: apperr.NotFound, Conflict, or storage failures
	*/
	Update(context context.Context, category *Category) error

	/*
		Delete removes a category. Post assignments cascade at the schema level;
		posts themselves are untouched.

		Parameters:
		  - context: context.Context
		  - id: int

		Returns:
		  - error: apperr.NotFound when no row matched, or storage failures
	*/
	Delete(context context.Context, id int) error
}
