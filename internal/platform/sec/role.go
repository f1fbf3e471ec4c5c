// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package sec

// # User Roles

// UserRole represents the authorization tier granted to a principal.
//
// The set is closed: every principal holds exactly one of these at all times.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "ADMIN"

	// Can manage all site content and moderate comments
	RoleEditor UserRole = "EDITOR"

	// Can publish and manage their own posts
	RoleAuthor UserRole = "AUTHOR"

	// Can write draft posts on their own account
	RoleContributor UserRole = "CONTRIBUTOR"

	// Default role for newly registered users, read-mostly
	RoleSubscriber UserRole = "SUBSCRIBER"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// IsValid reports whether r belongs to the closed role set.
func (r UserRole) IsValid() bool {
	return r.level() > 0
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-50) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 50
	case RoleEditor:
		return 40
	case RoleAuthor:
		return 30
	case RoleContributor:
		return 20
	case RoleSubscriber:
		return 10
	default:
		return 0
	}
}

// # Persistence Boundary Mapping

// Roles are a single string enum internally; numeric ids exist only for the
// relational collaborator and the compact `rid` token claim.

// ID returns the numeric role id used at the persistence boundary.
func (r UserRole) ID() int {
	switch r {
	case RoleAdmin:
		return 1
	case RoleEditor:
		return 2
	case RoleAuthor:
		return 3
	case RoleContributor:
		return 4
	case RoleSubscriber:
		return 5
	default:
		return 0
	}
}

// RoleFromID resolves a numeric role id back to the enum.
// Unknown ids collapse to the empty (invalid) role.
func RoleFromID(id int) UserRole {
	switch id {
	case 1:
		return RoleAdmin
	case 2:
		return RoleEditor
	case 3:
		return RoleAuthor
	case 4:
		return RoleContributor
	case 5:
		return RoleSubscriber
	default:
		return UserRole("")
	}
}
