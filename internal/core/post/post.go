// Copyright (c) 2026 Inkwell CMS. All rights reserved.

/*
Package post implements the article domain of the Inkwell platform.

It covers the full lifecycle of a post: drafting, Markdown rendering,
publication, taxonomy assignment (categories and tags), and removal.

# Architecture

  - Entities: Post plus the lightweight TermRef taxonomy projection.
  - Rendering: Markdown source is rendered and sanitized once at write time;
    readers always receive pre-rendered HTML.
  - Caching: Published posts are served through a Redis read-through cache.
*/
package post

import "time"

// # Publication States

const (
	// StatusDraft marks a post as visible to its author and staff only.
	StatusDraft = "draft"
	// StatusPublished marks a post as publicly visible.
	StatusPublished = "published"
)

// # Domain Entities

// Post represents a single article.
type Post struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Content      string    `json:"content"`      // Markdown source, the canonical form.
	ContentHTML  string    `json:"content_html"` // Rendered and sanitized at write time.
	Status       string    `json:"status"`
	Categories   []TermRef `json:"categories"`
	Tags         []TermRef `json:"tags"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TermRef is the compact taxonomy projection embedded in post payloads.
type TermRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// # Field Identifiers

const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldStatus  = "status"
)
