// Copyright (c) 2026 Inkwell CMS. All rights reserved.

/*
Package comment implements threaded reader discussions on posts.

Comments form a single-level reply tree via an optional parent reference.
Every new comment starts in the pending state and becomes publicly visible
only after staff approval.
*/
package comment

import "time"

// # Moderation States

const (
	// StatusPending marks a comment as awaiting moderation.
	StatusPending = "pending"
	// StatusApproved marks a comment as publicly visible.
	StatusApproved = "approved"
)

// # Domain Entities

// Comment represents a single reader comment on a post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	ParentID  *string   `json:"parent_id"` // nil for top-level comments.
	Content   string    `json:"content"`   // Sanitized at write time.
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldContent = "content"
	FieldPostID  = "post_id"
	FieldParent  = "parent_id"
	FieldStatus  = "status"
)
