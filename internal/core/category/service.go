// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package category

import (
	"context"

	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
	"github.com/inkwell-cms/inkwell/pkg/slug"
)

// # Definitions & Constructors

// Service implements the category use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new category [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// # Listing & Retrieval

// List returns a page of categories with the total count.
func (service *Service) List(context context.Context, params pagination.Params) ([]Category, int, error) {
	return service.repository.List(context, params)
}

// Get returns a single category by ID.
func (service *Service) Get(context context.Context, id int) (*Category, error) {
	return service.repository.FindByID(context, id)
}

// GetBySlug returns a single category by its slug.
func (service *Service) GetBySlug(context context.Context, categorySlug string) (*Category, error) {
	return service.repository.FindBySlug(context, categorySlug)
}

// # Mutation Flows

/*
Create persists a new category.

Description: Restricted to the EDITOR tier and above. The slug is derived
from the name; a duplicate slug surfaces as a Conflict.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - name: string

Returns:
  - *Category: Created entity
  - err: Forbidden, Conflict, or storage failures
*/
func (service *Service) Create(context context.Context, caller *sec.AuthClaims, name string) (*Category, error) {
	if err := sec.CanModerate(caller); err != nil {
		return nil, err
	}

	entry := &Category{
		Name: name,
		Slug: slug.From(name),
	}

	if err := service.repository.Create(context, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

/*
Update renames a category, regenerating its slug.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - id: int
  - name: string

Returns:
  - *Category: Updated entity
  - err: NotFound, Forbidden, Conflict, or storage failures
*/
func (service *Service) Update(context context.Context, caller *sec.AuthClaims, id int, name string) (*Category, error) {
	if err := sec.CanModerate(caller); err != nil {
		return nil, err
	}

	entry, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	entry.Name = name
	entry.Slug = slug.From(name)

	if err := service.repository.Update(context, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

/*
Delete removes a category. Posts keep existing; only the assignments go.

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
