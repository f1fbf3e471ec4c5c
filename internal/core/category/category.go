// Copyright (c) 2026 Inkwell CMS. All rights reserved.

/*
Package category implements the primary content taxonomy.

Categories are a site-wide vocabulary: they are not owned by any single
principal, so every mutation is gated on the EDITOR tier rather than on
ownership.
*/
package category

import "time"

// # Domain Entities

// Category represents one entry in the primary taxonomy.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldName = "name"
	FieldSlug = "slug"
)
