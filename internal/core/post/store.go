// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package post

import (
	"context"

	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Listing Filters

// ListFilter narrows a post listing. Zero values mean "no constraint".
type ListFilter struct {
	AuthorID   string
	CategoryID int
	TagID      int
	Status     string
}

// # Repository Contracts

// Repository defines the persistence contract for posts.
type Repository interface {
	/*
		List returns a filtered page of posts ordered by creation time, plus
		the total number of matching posts.

		Parameters:
		  - context: context.Context
		  - filter: ListFilter
		  - params: pagination.Params

		Returns:
		  - []Post: Page of hydrated posts (taxonomy included)
		  - int: Total matching count
		  - error: Retrieval failures
	*/
	List(context context.Context, filter ListFilter, params pagination.Params) ([]Post, int, error)

	/*
		FindByID retrieves one post with its taxonomy and comment count.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Post: Hydrated entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Post, error)

	/*
		Create persists a new post and its taxonomy assignments atomically.

		Parameters:
		  - context: context.Context
		  - post: *Post
		  - categoryIDs: []int
		  - tagIDs: []int

		Returns:
		  - error: Conflict on duplicate slug, or storage failures
	*/
	Create(context context.Context, post *Post, categoryIDs, tagIDs []int) error

	/*
		Update persists post changes and replaces its taxonomy assignments
		atomically.

		Parameters:
		  - context: context.Context
		  - post: *Post
		  - categoryIDs: []int (nil leaves assignments untouched)
		  - tagIDs: []int (nil leaves assignments untouched)

		Returns:
		  - error: apperr.NotFound, Conflict, or storage failures
	*/
	Update(context context.Context, post *Post, categoryIDs, tagIDs []int) error

	/*
		Delete permanently removes a post. Taxonomy assignments and comments
		cascade at the schema level.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound when no row matched, or storage failures
	*/
	Delete(context context.Context, id string) error
}

// # Cache Contracts

// Cache defines the read-through cache contract for published posts.
type Cache interface {
	// Get returns the cached post, or a miss error.
	Get(context context.Context, id string) (*Post, error)

	// Set stores the post under its ID for the cache TTL.
	Set(context context.Context, post *Post) error

	// Invalidate drops the cached entry after a mutation.
	Invalidate(context context.Context, id string) error
}
