// Package tag implements the secondary, free-form content taxonomy.
package tag

import "time"

// Tag is a flat label attachable to any number of posts.
type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const FieldName = "name"
