// Copyright (c) 2026 Inkwell CMS. All rights reserved.

/*
Package page implements static site pages (about, contact, policies).

Pages are site-wide content rather than member content: they carry no owner
and no moderation state, and every mutation is gated on the EDITOR tier.
Like posts, the Markdown source is rendered once at write time.
*/
package page

import (
	"context"
	"time"

	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Domain Entities

// Page represents one static site page.
type Page struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`      // Markdown source, the canonical form.
	ContentHTML string    `json:"content_html"` // Rendered and sanitized at write time.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldTitle   = "title"
	FieldContent = "content"
)

// # Repository Contracts

// Repository defines the persistence contract for pages.
type Repository interface {
	// List returns a page of entries ordered by title, plus the total count.
	List(context context.Context, params pagination.Params) ([]Page, int, error)

	// FindByID retrieves one page, or apperr.NotFound.
	FindByID(context context.Context, id int) (*Page, error)

	// FindBySlug retrieves one page by its slug, or apperr.NotFound.
	FindBySlug(context context.Context, slug string) (*Page, error)

	// Create persists a new page; duplicate slugs surface as Conflict.
	Create(context context.Context, page *Page) error

	// Update persists changes; apperr.NotFound when no row matched.
	Update(context context.Context, page *Page) error

	// Delete removes a page; apperr.NotFound when no row matched.
	Delete(context context.Context, id int) error
}
