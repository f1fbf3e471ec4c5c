// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package page

import (
	"context"
	"fmt"

	"github.com/inkwell-cms/inkwell/internal/platform/render"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
	"github.com/inkwell-cms/inkwell/pkg/pointer"
	"github.com/inkwell-cms/inkwell/pkg/slug"
)

// # Definitions & Constructors

// Service implements the static-page use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new page [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// # Listing & Retrieval

// List returns a page of entries with the total count.
func (service *Service) List(context context.Context, params pagination.Params) ([]Page, int, error) {
	return service.repository.List(context, params)
}

// Get returns a single page by ID.
func (service *Service) Get(context context.Context, id int) (*Page, error) {
	return service.repository.FindByID(context, id)
}

// GetBySlug returns a single page by its slug.
func (service *Service) GetBySlug(context context.Context, pageSlug string) (*Page, error) {
	return service.repository.FindBySlug(context, pageSlug)
}

// # Mutation Flows

// CreateInput holds the data required to add a page.
type CreateInput struct {
	Title   string
	Content string
}

/*
Create persists a new static page.

Description: Restricted to the EDITOR tier and above. The slug is derived
from the title and the Markdown source is rendered at write time.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - input: CreateInput

Returns:
  - *Page: Created entity
  - err: Forbidden, Conflict on duplicate slug, or storage failures
*/
func (service *Service) Create(context context.Context, caller *sec.AuthClaims, input CreateInput) (*Page, error) {
	if err := sec.CanModerate(caller); err != nil {
		return nil, err
	}

	contentHTML, err := render.Markdown(input.Content)
	if err != nil {
		return nil, fmt.Errorf("page_service_render_failed: %w", err)
	}

	entry := &Page{
		Title:       input.Title,
		Slug:        slug.From(input.Title),
		Content:     input.Content,
		ContentHTML: contentHTML,
	}

	if err := service.repository.Create(context, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateInput carries the optional changes for a page. Nil fields are left
// untouched.
type UpdateInput struct {
	Title   *string
	Content *string
}

/*
Update applies a partial change to a page.

Description: Restricted to the EDITOR tier and above. A title change
regenerates the slug; a content change re-renders the HTML.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - id: int
  - input: UpdateInput

Returns:
  - *Page: Updated entity
  - err: NotFound, Forbidden, Conflict, or storage failures
*/
func (service *Service) Update(context context.Context, caller *sec.AuthClaims, id int, input UpdateInput) (*Page, error) {
	if err := sec.CanModerate(caller); err != nil {
		return nil, err
	}

	entry, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		entry.Title = pointer.Val(input.Title)
		entry.Slug = slug.From(entry.Title)
	}
	if input.Content != nil {
		entry.Content = pointer.Val(input.Content)

		contentHTML, err := render.Markdown(entry.Content)
		if err != nil {
			return nil, fmt.Errorf("page_service_render_failed: %w", err)
		}
		entry.ContentHTML = contentHTML
	}

	if err := service.repository.Update(context, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

/*
Delete removes a static page.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - id: int

Returns:
  - err: NotFound, Forbidden, or storage failures
*/
func (service *Service) Delete(context context.Context, caller *sec.AuthClaims, id int) error {
	if err := sec.CanModerate(caller); err != nil {
		return err
	}

	return service.repository.Delete(context, id)
}
