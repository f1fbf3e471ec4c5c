// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package comment

import (
	"context"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/render"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
	"github.com/inkwell-cms/inkwell/pkg/uuid"
)

// # Definitions & Constructors

// Service implements the discussion use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new comment [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// # Listing & Retrieval

/*
List returns a filtered page of comments with the total matching count.

Description: Callers below EDITOR tier only see approved comments; moderators
may additionally filter by status to work the pending queue.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims (nil for anonymous requests)
  - filter: ListFilter
  - params: pagination.Params

Returns:
  - []Comment: Page of comments
  - int: Total matching count
  - err: Retrieval failures
*/
func (service *Service) List(context context.Context, caller *sec.AuthClaims, filter ListFilter, params pagination.Params) ([]Comment, int, error) {

	// Pending comments are a moderation artifact, not public content.
	if caller == nil || !sec.UserRole(caller.Role).AtLeast(sec.RoleEditor) {
		filter.Status = StatusApproved
	}

	return service.repository.List(context, filter, params)
}

/*
Get returns a single comment by ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Comment: Hydrated entity
  - err: NotFound or storage failures
*/
func (service *Service) Get(context context.Context, id string) (*Comment, error) {
	return service.repository.FindByID(context, id)
}

// # Creation Flow

// CreateInput holds the data required to post a comment.
type CreateInput struct {
	PostID   string
	ParentID *string
	Content  string
}

/*
Create persists a new pending comment owned by the caller.

Description: Content is sanitized at write time. A reply must reference a
parent on the same post; cross-post replies are rejected as validation
failures.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - input: CreateInput

Returns:
  - *Comment: Created entity
  - err: Validation, NotFound (unknown parent), or storage failures
*/
func (service *Service) Create(context context.Context, caller *sec.AuthClaims, input CreateInput) (*Comment, error) {

	// ── 1. Validate the reply target ──
	if input.ParentID != nil {
		parent, err := service.repository.FindByID(context, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != input.PostID {
			return nil, apperr.ValidationError("Parent comment belongs to a different post", apperr.FieldError{
				Field:   FieldParent,
				Message: "must reference a comment on the same post",
			})
		}
	}

	// ── 2. Persist ──
	entry := &Comment{
		ID:       uuid.New(),
		PostID:   input.PostID,
		UserID:   caller.UserID,
		ParentID: input.ParentID,
		Content:  render.SanitizeUGC(input.Content),
		Status:   StatusPending,
	}

	if err := service.repository.Create(context, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// # Update Flow

/*
Update rewrites the content of an existing comment.

Description: The caller must own the comment or hold the ADMIN role. The new
content passes through the same sanitizer as on creation. Moderation status
is untouched; approval has its own flow.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - commentID: string
  - content: string

Returns:
  - *Comment: Updated entity
  - err: NotFound, Forbidden, or storage failures
*/
func (service *Service) Update(context context.Context, caller *sec.AuthClaims, commentID, content string) (*Comment, error) {
	entry, err := service.repository.FindByID(context, commentID)
	if err != nil {
		return nil, err
	}
	if err := sec.CanMutate(caller, entry.UserID); err != nil {
		return nil, err
	}

	entry.Content = render.SanitizeUGC(content)

	if err := service.repository.Update(context, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// # Moderation Flow

/*
Approve marks a pending comment as publicly visible.

Description: Restricted to the EDITOR tier and above. Approving an already
approved comment is a harmless no-op.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - commentID: string

Returns:
  - *Comment: Updated entity
  - err: NotFound, Forbidden, or storage failures
*/
func (service *Service) Approve(context context.Context, caller *sec.AuthClaims, commentID string) (*Comment, error) {
	if err := sec.CanModerate(caller); err != nil {
		return nil, err
	}

	entry, err := service.repository.FindByID(context, commentID)
	if err != nil {
		return nil, err
	}

	entry.Status = StatusApproved

	if err := service.repository.Update(context, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// # Removal Flow

/*
Delete removes a comment, detaching its replies.

Description: Allowed for the comment owner or any principal at EDITOR tier or
above. Direct replies are promoted to top-level comments in the same
transaction as the delete.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - commentID: string

Returns:
  - err: NotFound, Forbidden, or storage failures
*/
func (service *Service) Delete(context context.Context, caller *sec.AuthClaims, commentID string) error {
	entry, err := service.repository.FindByID(context, commentID)
	if err != nil {
		return err
	}
	if err := sec.CanDelete(caller, entry.UserID); err != nil {
		return err
	}

	return service.repository.Delete(context, commentID)
}
