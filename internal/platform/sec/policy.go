// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package sec

import "github.com/inkwell-cms/inkwell/internal/platform/apperr"

// # Mutation Policy
//
// Pure ownership/role checks shared by every resource orchestrator. Rules are
// evaluated in a fixed order: self-mutation first, then elevated role, then
// deny. The functions never touch persistence; ownership is resolved by the
// caller before the check.

// CanMutate authorizes an update on a resource owned by targetOwnerID.
//
// # Rules (in order)
//  1. Self-mutation is always permitted (field validation still applies).
//  2. ADMIN may mutate any resource.
//  3. Everyone else is denied.
func CanMutate(caller *AuthClaims, targetOwnerID string) error {
	if caller.UserID == targetOwnerID {
		return nil
	}
	if UserRole(caller.Role) == RoleAdmin {
		return nil
	}
	return apperr.Forbidden("You do not have permission to modify this resource")
}

// CanDelete authorizes deletion of content owned by targetOwnerID.
//
// Deletion by non-owners carries a wider overlay than updates: EDITOR may
// remove any post or comment, not just ADMIN. Accounts are not content;
// use [CanDeleteAccount] for those.
func CanDelete(caller *AuthClaims, targetOwnerID string) error {
	if caller.UserID == targetOwnerID {
		return nil
	}
	if UserRole(caller.Role).AtLeast(RoleEditor) {
		return nil
	}
	return apperr.Forbidden("You do not have permission to delete this resource")
}

// CanDeleteAccount authorizes deletion of the account identified by targetID.
//
// The EDITOR content overlay does not apply here: removing a member is the
// same self-or-ADMIN rule as updating one.
func CanDeleteAccount(caller *AuthClaims, targetID string) error {
	if caller.UserID == targetID {
		return nil
	}
	if UserRole(caller.Role) == RoleAdmin {
		return nil
	}
	return apperr.Forbidden("You do not have permission to delete this account")
}

// CanAssignRole authorizes a role reassignment in an update payload.
//
// Only ADMIN may change a role, regardless of self/other ownership: a user
// cannot promote their own account.
func CanAssignRole(caller *AuthClaims) error {
	if UserRole(caller.Role) == RoleAdmin {
		return nil
	}
	return apperr.Forbidden("Only administrators can assign roles")
}

// CanModerate authorizes comment status changes and site-taxonomy mutations
// (categories, tags, pages), which are not owned by any single principal.
func CanModerate(caller *AuthClaims) error {
	if UserRole(caller.Role).AtLeast(RoleEditor) {
		return nil
	}
	return apperr.Forbidden("Editor role required")
}
