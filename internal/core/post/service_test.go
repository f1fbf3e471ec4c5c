// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package post_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-cms/inkwell/internal/core/post"
	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// fakeRepository is an in-memory Repository used to exercise the service
// logic without a database. It records the last filter passed to List so
// tests can assert on the visibility override.
type fakeRepository struct {
	posts      map[string]*post.Post
	lastFilter post.ListFilter
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{posts: map[string]*post.Post{}}
}

func (f *fakeRepository) List(_ context.Context, filter post.ListFilter, _ pagination.Params) ([]post.Post, int, error) {
	f.lastFilter = filter

	var matched []post.Post
	for _, article := range f.posts {
		if filter.Status != "" && article.Status != filter.Status {
			continue
		}
		matched = append(matched, *article)
	}
	return matched, len(matched), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*post.Post, error) {
	article, ok := f.posts[id]
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	clone := *article
	return &clone, nil
}

func (f *fakeRepository) Create(_ context.Context, article *post.Post, _ []int, _ []int) error {
	clone := *article
	f.posts[article.ID] = &clone
	return nil
}

func (f *fakeRepository) Update(_ context.Context, article *post.Post, _ []int, _ []int) error {
	if _, ok := f.posts[article.ID]; !ok {
		return apperr.NotFound("Post")
	}
	clone := *article
	f.posts[article.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return apperr.NotFound("Post")
	}
	delete(f.posts, id)
	return nil
}

// fakeCache is an in-memory Cache recording fills and invalidations.
type fakeCache struct {
	entries map[string]*post.Post
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*post.Post{}}
}

func (f *fakeCache) Get(_ context.Context, id string) (*post.Post, error) {
	article, ok := f.entries[id]
	if !ok {
		return nil, nil
	}
	clone := *article
	return &clone, nil
}

func (f *fakeCache) Set(_ context.Context, article *post.Post) error {
	clone := *article
	f.entries[article.ID] = &clone
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, id string) error {
	delete(f.entries, id)
	return nil
}

func claimsFor(userID string, role sec.UserRole) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, RoleID: role.ID(), Role: string(role)}
}

/*
TestService_Create verifies slugging, write-time rendering, and the default
draft status.
*/
func TestService_Create(t *testing.T) {
	service := post.NewService(newFakeRepository(), newFakeCache())

	article, err := service.Create(context.Background(), claimsFor("u1", sec.RoleContributor), post.CreateInput{
		Title:   "Hello, Inkwell!",
		Content: "A **bold** start.",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", article.UserID)
	assert.Equal(t, "hello-inkwell", article.Slug)
	assert.Equal(t, post.StatusDraft, article.Status)
	assert.Equal(t, "A **bold** start.", article.Content)
	assert.Contains(t, article.ContentHTML, "<strong>bold</strong>")
}

/*
TestService_Create_PublishGate verifies that publishing requires the AUTHOR
tier while drafting does not.
*/
func TestService_Create_PublishGate(t *testing.T) {
	service := post.NewService(newFakeRepository(), newFakeCache())

	// A contributor may draft but not publish.
	_, err := service.Create(context.Background(), claimsFor("u1", sec.RoleContributor), post.CreateInput{
		Title: "Too Eager", Content: "body", Status: post.StatusPublished,
	})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// An author may publish directly.
	article, err := service.Create(context.Background(), claimsFor("u2", sec.RoleAuthor), post.CreateInput{
		Title: "Shipped", Content: "body", Status: post.StatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, post.StatusPublished, article.Status)
}

/*
TestService_Get_DraftVisibility verifies that a draft behaves as missing for
everyone but its author and staff at EDITOR tier or above.
*/
func TestService_Get_DraftVisibility(t *testing.T) {
	service := post.NewService(newFakeRepository(), newFakeCache())

	draft, err := service.Create(context.Background(), claimsFor("u1", sec.RoleContributor), post.CreateInput{
		Title: "Work in Progress", Content: "body",
	})
	require.NoError(t, err)

	// Anonymous callers get NotFound, not Forbidden.
	_, err = service.Get(context.Background(), nil, draft.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	// So do other low-tier members.
	_, err = service.Get(context.Background(), claimsFor("u2", sec.RoleAuthor), draft.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	// The author sees their own draft.
	found, err := service.Get(context.Background(), claimsFor("u1", sec.RoleContributor), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, found.ID)

	// Editors see every draft.
	_, err = service.Get(context.Background(), claimsFor("mod", sec.RoleEditor), draft.ID)
	assert.NoError(t, err)
}

/*
TestService_Get_CacheFill verifies that a published read fills the cache and
that subsequent reads are served from it.
*/
func TestService_Get_CacheFill(t *testing.T) {
	repository := newFakeRepository()
	cache := newFakeCache()
	service := post.NewService(repository, cache)

	article, err := service.Create(context.Background(), claimsFor("u1", sec.RoleAuthor), post.CreateInput{
		Title: "Cached", Content: "body", Status: post.StatusPublished,
	})
	require.NoError(t, err)

	// First read goes to storage and fills the cache.
	_, err = service.Get(context.Background(), nil, article.ID)
	require.NoError(t, err)
	assert.Contains(t, cache.entries, article.ID)

	// Second read is served from the cache even if storage loses the row.
	delete(repository.posts, article.ID)
	found, err := service.Get(context.Background(), nil, article.ID)
	require.NoError(t, err)
	assert.Equal(t, article.ID, found.ID)
}

/*
TestService_Update verifies ownership, slug regeneration, re-rendering, and
cache invalidation on mutation.
*/
func TestService_Update(t *testing.T) {
	repository := newFakeRepository()
	cache := newFakeCache()
	service := post.NewService(repository, cache)

	article, err := service.Create(context.Background(), claimsFor("u1", sec.RoleAuthor), post.CreateInput{
		Title: "Before", Content: "old", Status: post.StatusPublished,
	})
	require.NoError(t, err)

	// Warm the cache.
	_, err = service.Get(context.Background(), nil, article.ID)
	require.NoError(t, err)
	require.Contains(t, cache.entries, article.ID)

	// A foreign editor is denied; editing is owner-or-admin only.
	newTitle := "Hijacked"
	_, err = service.Update(context.Background(), claimsFor("mod", sec.RoleEditor), article.ID, post.UpdateInput{Title: &newTitle})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// The owner's edit regenerates the slug, re-renders, and evicts the cache.
	title := "After the Rewrite"
	content := "new *emphasis*"
	updated, err := service.Update(context.Background(), claimsFor("u1", sec.RoleAuthor), article.ID, post.UpdateInput{
		Title:   &title,
		Content: &content,
	})
	require.NoError(t, err)
	assert.Equal(t, "after-the-rewrite", updated.Slug)
	assert.Contains(t, updated.ContentHTML, "<em>emphasis</em>")
	assert.NotContains(t, cache.entries, article.ID)
}

/*
TestService_Update_PublishGate verifies that moving a draft to published is
gated at the AUTHOR tier, while already-published posts stay editable.
*/
func TestService_Update_PublishGate(t *testing.T) {
	service := post.NewService(newFakeRepository(), newFakeCache())

	draft, err := service.Create(context.Background(), claimsFor("u1", sec.RoleContributor), post.CreateInput{
		Title: "Draft", Content: "body",
	})
	require.NoError(t, err)

	published := post.StatusPublished
	_, err = service.Update(context.Background(), claimsFor("u1", sec.RoleContributor), draft.ID, post.UpdateInput{
		Status: &published,
	})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}

/*
TestService_Delete verifies the owner/EDITOR-overlay removal policy and the
cache eviction.
*/
func TestService_Delete(t *testing.T) {
	repository := newFakeRepository()
	cache := newFakeCache()
	service := post.NewService(repository, cache)

	article, err := service.Create(context.Background(), claimsFor("u1", sec.RoleAuthor), post.CreateInput{
		Title: "Doomed", Content: "body", Status: post.StatusPublished,
	})
	require.NoError(t, err)

	_, err = service.Get(context.Background(), nil, article.ID)
	require.NoError(t, err)
	require.Contains(t, cache.entries, article.ID)

	// A foreign author is denied.
	err = service.Delete(context.Background(), claimsFor("u2", sec.RoleAuthor), article.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// An editor may remove any post, and the cache entry goes with it.
	require.NoError(t, service.Delete(context.Background(), claimsFor("mod", sec.RoleEditor), article.ID))
	assert.NotContains(t, cache.entries, article.ID)

	_, err = service.Get(context.Background(), nil, article.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_List_DraftVisibility verifies the status override applied for
non-privileged listings.
*/
func TestService_List_DraftVisibility(t *testing.T) {
	repository := newFakeRepository()
	service := post.NewService(repository, newFakeCache())

	// Anonymous listings are forced onto published-only.
	_, _, err := service.List(context.Background(), nil, post.ListFilter{Status: post.StatusDraft}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, post.StatusPublished, repository.lastFilter.Status)

	// An author filtering their own posts keeps the draft view.
	_, _, err = service.List(context.Background(), claimsFor("u1", sec.RoleAuthor), post.ListFilter{AuthorID: "u1", Status: post.StatusDraft}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, post.StatusDraft, repository.lastFilter.Status)

	// The same author filtering someone else's posts does not.
	_, _, err = service.List(context.Background(), claimsFor("u1", sec.RoleAuthor), post.ListFilter{AuthorID: "u2", Status: post.StatusDraft}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, post.StatusPublished, repository.lastFilter.Status)

	// Editors keep whatever filter they asked for.
	_, _, err = service.List(context.Background(), claimsFor("mod", sec.RoleEditor), post.ListFilter{Status: post.StatusDraft}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, post.StatusDraft, repository.lastFilter.Status)
}
