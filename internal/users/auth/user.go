// Copyright (c) 2026 Inkwell CMS. All rights reserved.

/*
Package auth implements the user identity layer of the Inkwell platform.

It defines the core domain entity (User) and the logic for credential
verification and stateless token issuance.

# Architecture

This layer is the "Truth" of the system. The User entity defined here has no
external dependencies beyond the security primitives and encapsulates all
business rules related to identity.
*/
package auth

import (
	"time"

	"github.com/inkwell-cms/inkwell/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Inkwell platform.
type User struct {
	ID           string       `json:"id"`
	DisplayName  string       `json:"display_name"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Biography    string       `json:"biography,omitempty"`
	PictureRef   string       `json:"picture,omitempty"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldDisplayName     = "display_name"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldEmail           = "email"
	FieldBiography       = "biography"
	FieldPicture         = "picture"
	FieldRole            = "role"
)
