// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package comment

import (
	"context"

	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Listing Filters

// ListFilter narrows a comment listing. Zero values mean "no constraint".
type ListFilter struct {
	PostID string
	Status string
}

// # Repository Contracts

// Repository defines the persistence contract for comments.
type Repository interface {
	/*
		List returns a filtered page of comments ordered by creation time,
		plus the total number of matching comments.

		Parameters:
		  - context: context.Context
		  - filter: ListFilter
		  - params: pagination.Params

		Returns:
		  - []Comment: Page of comments
		  - int: Total matching count
		  - error: Retrieval failures
	*/
	List(context context.Context, filter ListFilter, params pagination.Params) ([]Comment, int, error)

	/*
		FindByID retrieves one comment.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Comment: Hydrated entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Comment, error)

	/*
		Create persists a new comment.

		Parameters:
		  - context: context.Context
		  - comment: *Comment

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, comment *Comment) error

	/*
		Update persists content and status changes to an existing comment.

		Parameters:
		  - context: context.Context
		  - comment: *Comment

		Returns:
		  - error: apperr.NotFound when no row matched, or storage failures
	*/
	Update(context context.Context, comment *Comment) error

	/*
		Delete removes a comment and detaches its direct replies in one
		transaction: children survive as top-level comments rather than
		being orphaned or cascading away.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound when no row matched, or storage failures
	*/
	Delete(context context.Context, id string) error
}
