// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-cms/inkwell/internal/platform/sec"
)

func claimsFor(userID string, role sec.UserRole) *sec.AuthClaims {
	return &sec.AuthClaims{
		UserID: userID,
		RoleID: role.ID(),
		Role:   string(role),
	}
}

/*
TestCanMutate covers the update policy: self always, ADMIN always, everyone
else denied — including EDITOR, whose elevated powers do not extend to
updates of foreign resources.
*/
func TestCanMutate(t *testing.T) {
	tests := []struct {
		name      string
		caller    *sec.AuthClaims
		ownerID   string
		isAllowed bool
	}{
		{"owner_subscriber", claimsFor("u1", sec.RoleSubscriber), "u1", true},
		{"owner_admin", claimsFor("u1", sec.RoleAdmin), "u1", true},
		{"admin_on_foreign", claimsFor("u1", sec.RoleAdmin), "u2", true},
		{"editor_on_foreign", claimsFor("u1", sec.RoleEditor), "u2", false},
		{"author_on_foreign", claimsFor("u1", sec.RoleAuthor), "u2", false},
		{"subscriber_on_foreign", claimsFor("u1", sec.RoleSubscriber), "u2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sec.CanMutate(tt.caller, tt.ownerID)
			if tt.isAllowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestCanDelete covers the removal policy: self always, EDITOR tier and above
for foreign content, everyone else denied.
*/
func TestCanDelete(t *testing.T) {
	tests := []struct {
		name      string
		caller    *sec.AuthClaims
		ownerID   string
		isAllowed bool
	}{
		{"owner_subscriber", claimsFor("u1", sec.RoleSubscriber), "u1", true},
		{"admin_on_foreign", claimsFor("u1", sec.RoleAdmin), "u2", true},
		{"editor_on_foreign", claimsFor("u1", sec.RoleEditor), "u2", true},
		{"author_on_foreign", claimsFor("u1", sec.RoleAuthor), "u2", false},
		{"contributor_on_foreign", claimsFor("u1", sec.RoleContributor), "u2", false},
		{"subscriber_on_foreign", claimsFor("u1", sec.RoleSubscriber), "u2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sec.CanDelete(tt.caller, tt.ownerID)
			if tt.isAllowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestCanDeleteAccount covers account removal: self or ADMIN only. The EDITOR
content overlay must not apply to member accounts.
*/
func TestCanDeleteAccount(t *testing.T) {
	tests := []struct {
		name      string
		caller    *sec.AuthClaims
		targetID  string
		isAllowed bool
	}{
		{"owner_subscriber", claimsFor("u1", sec.RoleSubscriber), "u1", true},
		{"admin_on_foreign", claimsFor("u1", sec.RoleAdmin), "u2", true},
		{"editor_on_foreign", claimsFor("u1", sec.RoleEditor), "u2", false},
		{"author_on_foreign", claimsFor("u1", sec.RoleAuthor), "u2", false},
		{"subscriber_on_foreign", claimsFor("u1", sec.RoleSubscriber), "u2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sec.CanDeleteAccount(tt.caller, tt.targetID)
			if tt.isAllowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestCanAssignRole covers the role-assignment gate: ADMIN only, regardless of
ownership — a user cannot promote their own account.
*/
func TestCanAssignRole(t *testing.T) {
	assert.NoError(t, sec.CanAssignRole(claimsFor("u1", sec.RoleAdmin)))
	assert.Error(t, sec.CanAssignRole(claimsFor("u1", sec.RoleEditor)))
	assert.Error(t, sec.CanAssignRole(claimsFor("u1", sec.RoleAuthor)))
	assert.Error(t, sec.CanAssignRole(claimsFor("u1", sec.RoleSubscriber)))
}

/*
TestCanModerate covers the moderation gate used by taxonomy mutations and
comment approval: EDITOR tier and above.
*/
func TestCanModerate(t *testing.T) {
	assert.NoError(t, sec.CanModerate(claimsFor("u1", sec.RoleAdmin)))
	assert.NoError(t, sec.CanModerate(claimsFor("u1", sec.RoleEditor)))
	assert.Error(t, sec.CanModerate(claimsFor("u1", sec.RoleAuthor)))
	assert.Error(t, sec.CanModerate(claimsFor("u1", sec.RoleContributor)))
	assert.Error(t, sec.CanModerate(claimsFor("u1", sec.RoleSubscriber)))
}

/*
TestUserRole_Hierarchy covers the ordering of the closed role set and the
numeric persistence mapping.
*/
func TestUserRole_Hierarchy(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleEditor))
	assert.True(t, sec.RoleEditor.AtLeast(sec.RoleEditor))
	assert.False(t, sec.RoleAuthor.AtLeast(sec.RoleEditor))
	assert.False(t, sec.RoleSubscriber.AtLeast(sec.RoleContributor))

	assert.False(t, sec.UserRole("MODERATOR").IsValid())
	assert.True(t, sec.RoleContributor.IsValid())

	// Round-trip every role through its numeric id.
	roles := []sec.UserRole{sec.RoleAdmin, sec.RoleEditor, sec.RoleAuthor, sec.RoleContributor, sec.RoleSubscriber}
	for _, role := range roles {
		assert.Equal(t, role, sec.RoleFromID(role.ID()))
	}
	assert.False(t, sec.RoleFromID(99).IsValid())
}
