// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package comment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-cms/inkwell/internal/core/comment"
	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// fakeRepository is an in-memory Repository used to exercise the service
// logic without a database. It records the last filter passed to List so
// tests can assert on the visibility override.
type fakeRepository struct {
	comments   map[string]*comment.Comment
	lastFilter comment.ListFilter
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{comments: map[string]*comment.Comment{}}
}

func (f *fakeRepository) List(_ context.Context, filter comment.ListFilter, _ pagination.Params) ([]comment.Comment, int, error) {
	f.lastFilter = filter

	var matched []comment.Comment
	for _, entry := range f.comments {
		if filter.Status != "" && entry.Status != filter.Status {
			continue
		}
		matched = append(matched, *entry)
	}
	return matched, len(matched), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*comment.Comment, error) {
	entry, ok := f.comments[id]
	if !ok {
		return nil, apperr.NotFound("Comment")
	}
	clone := *entry
	return &clone, nil
}

func (f *fakeRepository) Create(_ context.Context, entry *comment.Comment) error {
	clone := *entry
	f.comments[entry.ID] = &clone
	return nil
}

func (f *fakeRepository) Update(_ context.Context, entry *comment.Comment) error {
	if _, ok := f.comments[entry.ID]; !ok {
		return apperr.NotFound("Comment")
	}
	clone := *entry
	f.comments[entry.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.comments[id]; !ok {
		return apperr.NotFound("Comment")
	}
	delete(f.comments, id)
	return nil
}

func claimsFor(userID string, role sec.UserRole) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, RoleID: role.ID(), Role: string(role)}
}

/*
TestService_Create verifies that new comments start pending, belong to the
caller, and have their content sanitized at write time.
*/
func TestService_Create(t *testing.T) {
	repository := newFakeRepository()
	service := comment.NewService(repository)

	entry, err := service.Create(context.Background(), claimsFor("u1", sec.RoleSubscriber), comment.CreateInput{
		PostID:  "post-1",
		Content: "Great read! <script>alert(1)</script>",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "u1", entry.UserID)
	assert.Equal(t, comment.StatusPending, entry.Status)
	assert.NotContains(t, entry.Content, "<script")
	assert.Contains(t, entry.Content, "Great read!")
}

/*
TestService_Create_CrossPostParent verifies that a reply referencing a parent
on a different post is rejected as a validation failure.
*/
func TestService_Create_CrossPostParent(t *testing.T) {
	repository := newFakeRepository()
	service := comment.NewService(repository)

	parent, err := service.Create(context.Background(), claimsFor("u1", sec.RoleSubscriber), comment.CreateInput{
		PostID:  "post-1",
		Content: "First!",
	})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), claimsFor("u2", sec.RoleSubscriber), comment.CreateInput{
		PostID:   "post-2",
		ParentID: &parent.ID,
		Content:  "Replying across posts",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	// A reply on the same post is accepted.
	reply, err := service.Create(context.Background(), claimsFor("u2", sec.RoleSubscriber), comment.CreateInput{
		PostID:   "post-1",
		ParentID: &parent.ID,
		Content:  "Replying in place",
	})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

/*
TestService_Create_UnknownParent verifies that a reply to a missing parent
yields NotFound.
*/
func TestService_Create_UnknownParent(t *testing.T) {
	service := comment.NewService(newFakeRepository())

	ghost := "ghost-comment"
	_, err := service.Create(context.Background(), claimsFor("u1", sec.RoleSubscriber), comment.CreateInput{
		PostID:   "post-1",
		ParentID: &ghost,
		Content:  "Replying to nothing",
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_List_Visibility verifies that anonymous and low-tier callers are
forced onto the approved-only view while moderators keep their filter.
*/
func TestService_List_Visibility(t *testing.T) {
	repository := newFakeRepository()
	service := comment.NewService(repository)

	// Anonymous callers never see the pending queue.
	_, _, err := service.List(context.Background(), nil, comment.ListFilter{Status: comment.StatusPending}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, comment.StatusApproved, repository.lastFilter.Status)

	// Neither do subscribers.
	_, _, err = service.List(context.Background(), claimsFor("u1", sec.RoleSubscriber), comment.ListFilter{Status: comment.StatusPending}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, comment.StatusApproved, repository.lastFilter.Status)

	// Editors may work the pending queue.
	_, _, err = service.List(context.Background(), claimsFor("mod", sec.RoleEditor), comment.ListFilter{Status: comment.StatusPending}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, comment.StatusPending, repository.lastFilter.Status)
}

/*
TestService_Approve verifies the moderation gate and the status transition.
*/
func TestService_Approve(t *testing.T) {
	repository := newFakeRepository()
	service := comment.NewService(repository)

	entry, err := service.Create(context.Background(), claimsFor("u1", sec.RoleSubscriber), comment.CreateInput{
		PostID:  "post-1",
		Content: "Awaiting moderation",
	})
	require.NoError(t, err)

	// The author cannot approve their own comment.
	_, err = service.Approve(context.Background(), claimsFor("u1", sec.RoleSubscriber), entry.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// An editor can.
	approved, err := service.Approve(context.Background(), claimsFor("mod", sec.RoleEditor), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, comment.StatusApproved, approved.Status)

	// Approving again is a harmless no-op.
	approved, err = service.Approve(context.Background(), claimsFor("mod", sec.RoleEditor), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, comment.StatusApproved, approved.Status)
}

/*
TestService_Update verifies the ownership policy and the re-sanitization of
edited content.
*/
func TestService_Update(t *testing.T) {
	repository := newFakeRepository()
	service := comment.NewService(repository)

	entry, err := service.Create(context.Background(), claimsFor("u1", sec.RoleSubscriber), comment.CreateInput{
		PostID:  "post-1",
		Content: "Original",
	})
	require.NoError(t, err)

	// A foreign editor is denied; editing is owner-or-admin only.
	_, err = service.Update(context.Background(), claimsFor("mod", sec.RoleEditor), entry.ID, "Moderator edit")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// The owner may edit, and the edit is sanitized.
	updated, err := service.Update(context.Background(), claimsFor("u1", sec.RoleSubscriber), entry.ID, `Edited <img src=x onerror="alert(1)">`)
	require.NoError(t, err)
	assert.Contains(t, updated.Content, "Edited")
	assert.NotContains(t, updated.Content, "onerror")
}

/*
TestService_Delete verifies the owner/EDITOR-overlay removal policy.
*/
func TestService_Delete(t *testing.T) {
	repository := newFakeRepository()
	service := comment.NewService(repository)

	entry, err := service.Create(context.Background(), claimsFor("u1", sec.RoleSubscriber), comment.CreateInput{
		PostID:  "post-1",
		Content: "Soon to be gone",
	})
	require.NoError(t, err)

	// A foreign author is denied.
	err = service.Delete(context.Background(), claimsFor("u2", sec.RoleAuthor), entry.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// An editor may remove any comment.
	require.NoError(t, service.Delete(context.Background(), claimsFor("mod", sec.RoleEditor), entry.ID))

	_, err = service.Get(context.Background(), entry.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
