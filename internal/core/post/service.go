// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package post

import (
	"context"
	"fmt"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/render"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
	"github.com/inkwell-cms/inkwell/pkg/pointer"
	"github.com/inkwell-cms/inkwell/pkg/slug"
	"github.com/inkwell-cms/inkwell/pkg/uuid"
)

// # Definitions & Constructors

// Service implements the article use cases.
type Service struct {
	repository Repository
	cache      Cache
}

// NewService constructs a new post [Service].
func NewService(repository Repository, cache Cache) *Service {
	return &Service{repository: repository, cache: cache}
}

// # Listing & Retrieval

/*
List returns a filtered page of posts with the total matching count.

Description: Anonymous callers and callers below EDITOR tier only ever see
published posts, except that authors always see their own drafts when
filtering by their own ID.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims (nil for anonymous requests)
  - filter: ListFilter
  - params: pagination.Params

Returns:
  - []Post: Page of posts
  - int: Total matching count
  - err: Retrieval failures
*/
func (service *Service) List(context context.Context, caller *sec.AuthClaims, filter ListFilter, params pagination.Params) ([]Post, int, error) {

	// Draft visibility is an authorization concern, not a filter preference.
	if !canSeeDrafts(caller, filter.AuthorID) {
		filter.Status = StatusPublished
	}

	return service.repository.List(context, filter, params)
}

/*
Get returns a single post by ID.

Description: Published posts are served through the read-through cache.
Drafts are only visible to their author and staff at EDITOR tier or above;
for everyone else a draft behaves as if it did not exist.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims (nil for anonymous requests)
  - id: string

Returns:
  - *Post: Hydrated entity
  - err: NotFound or storage failures
*/
func (service *Service) Get(context context.Context, caller *sec.AuthClaims, id string) (*Post, error) {

	// ── 1. Cache lookup ──
	// Only published posts are ever cached, so a hit needs no visibility check.
	if cached, err := service.cache.Get(context, id); err == nil && cached != nil {
		return cached, nil
	}

	// ── 2. Storage lookup ──
	article, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// ── 3. Draft visibility ──
	// A hidden draft is indistinguishable from a missing post.
	if article.Status == StatusDraft && !canSeeDrafts(caller, article.UserID) {
		return nil, apperr.NotFound("Post")
	}

	// ── 4. Cache fill ──
	// Best-effort: a cache failure must never fail the read.
	if article.Status == StatusPublished {
		_ = service.cache.Set(context, article)
	}

	return article, nil
}

// # Creation Flow

// CreateInput holds the data required to draft a new post.
type CreateInput struct {
	Title       string
	Content     string
	Status      string
	CategoryIDs []int
	TagIDs      []int
}

/*
Create drafts and persists a new post owned by the caller.

Description: The slug is derived from the title, the Markdown source is
rendered and sanitized once at write time, and taxonomy assignments are
persisted atomically with the post. Publishing (as opposed to drafting)
requires the AUTHOR tier or above.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - input: CreateInput (already field-validated by the transport layer)

Returns:
  - *Post: Created entity
  - err: Forbidden, Conflict on duplicate slug, or storage failures
*/
func (service *Service) Create(context context.Context, caller *sec.AuthClaims, input CreateInput) (*Post, error) {

	// ── 1. Gate publication ──
	status := input.Status
	if status == "" {
		status = StatusDraft
	}
	if status == StatusPublished && !sec.UserRole(caller.Role).AtLeast(sec.RoleAuthor) {
		return nil, apperr.Forbidden("Author role required to publish")
	}

	// ── 2. Render once at write time ──
	contentHTML, err := render.Markdown(input.Content)
	if err != nil {
		return nil, fmt.Errorf("post_service_render_failed: %w", err)
	}

	article := &Post{
		ID:          uuid.New(),
		UserID:      caller.UserID,
		Title:       input.Title,
		Slug:        slug.From(input.Title),
		Content:     input.Content,
		ContentHTML: contentHTML,
		Status:      status,
	}

	// ── 3. Persist post and taxonomy atomically ──
	if err := service.repository.Create(context, article, input.CategoryIDs, input.TagIDs); err != nil {
		return nil, err
	}

	// Re-read so the response carries the hydrated taxonomy projections.
	return service.repository.FindByID(context, article.ID)
}

// # Update Flow

// UpdateInput carries the optional changes for a post.
//
// Nil fields are left untouched. The post ID and owner come from the URL and
// storage respectively, never from the payload.
type UpdateInput struct {
	Title       *string
	Content     *string
	Status      *string
	CategoryIDs []int // nil leaves assignments untouched
	TagIDs      []int // nil leaves assignments untouched
}

/*
Update applies a partial change to a post.

Description: The caller must own the post or hold the ADMIN role. A title
change regenerates the slug; a content change re-renders the HTML. Moving a
post to published requires the AUTHOR tier or above.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - postID: string
  - input: UpdateInput

Returns:
  - *Post: Updated entity
  - err: NotFound, Forbidden, Conflict, or storage failures
*/
func (service *Service) Update(context context.Context, caller *sec.AuthClaims, postID string, input UpdateInput) (*Post, error) {

	// ── 1. Load & authorize ──
	article, err := service.repository.FindByID(context, postID)
	if err != nil {
		return nil, err
	}
	if err := sec.CanMutate(caller, article.UserID); err != nil {
		return nil, err
	}

	// ── 2. Merge the optional fields ──
	if input.Title != nil {
		article.Title = pointer.Val(input.Title)
		article.Slug = slug.From(article.Title)
	}
	if input.Content != nil {
		article.Content = pointer.Val(input.Content)

		contentHTML, err := render.Markdown(article.Content)
		if err != nil {
			return nil, fmt.Errorf("post_service_render_failed: %w", err)
		}
		article.ContentHTML = contentHTML
	}
	if input.Status != nil {
		status := pointer.Val(input.Status)
		if status == StatusPublished && article.Status != StatusPublished &&
			!sec.UserRole(caller.Role).AtLeast(sec.RoleAuthor) {
			return nil, apperr.Forbidden("Author role required to publish")
		}
		article.Status = status
	}

	// ── 3. Persist & invalidate ──
	if err := service.repository.Update(context, article, input.CategoryIDs, input.TagIDs); err != nil {
		return nil, err
	}
	_ = service.cache.Invalidate(context, article.ID)

	return service.repository.FindByID(context, article.ID)
}

// # Removal Flow

/*
Delete permanently removes a post.

Description: Allowed for the post owner or any principal at EDITOR tier or
above. Comments and taxonomy assignments cascade at the schema level.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - postID: string

Returns:
  - err: NotFound, Forbidden, or storage failures
*/
func (service *Service) Delete(context context.Context, caller *sec.AuthClaims, postID string) error {

	// Ownership must be resolved before the policy check.
	article, err := service.repository.FindByID(context, postID)
	if err != nil {
		return err
	}
	if err := sec.CanDelete(caller, article.UserID); err != nil {
		return err
	}

	if err := service.repository.Delete(context, postID); err != nil {
		return err
	}
	_ = service.cache.Invalidate(context, postID)

	return nil
}

// canSeeDrafts reports whether the caller may see drafts owned by authorID.
func canSeeDrafts(caller *sec.AuthClaims, authorID string) bool {
	if caller == nil {
		return false
	}
	if sec.UserRole(caller.Role).AtLeast(sec.RoleEditor) {
		return true
	}
	return authorID != "" && caller.UserID == authorID
}
