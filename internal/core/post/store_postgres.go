// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package post

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/dberr"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Post Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the post Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// postColumns is the canonical projection for post rows. The comment count is
// computed inline; taxonomy is hydrated in a second pass.
const postColumns = `
	p.id, p.userid, p.title, p.slug, p.content, p.contenthtml, p.status, p.createdat, p.updatedat,
	(SELECT COUNT(*) FROM content.comment c WHERE c.postid = p.id) AS commentcount`

/*
List returns a filtered page of posts plus the total matching count.

Description: Filters compose as AND constraints. Category and tag filters
join through the assignment tables; taxonomy projections are hydrated in a
single batched second query to avoid per-row round trips.

Parameters:
  - context: context.Context
  - filter: ListFilter
  - params: pagination.Params

Returns:
  - []Post: Page of hydrated posts
  - int: Total matching count
  - error: Retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, filter ListFilter, params pagination.Params) ([]Post, int, error) {

	// ── 1. Compose the WHERE clause ──
	where := " WHERE 1=1"
	args := []interface{}{}

	if filter.AuthorID != "" {
		args = append(args, filter.AuthorID)
		where += fmt.Sprintf(" AND p.userid = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND p.status = $%d", len(args))
	}
	if filter.CategoryID != 0 {
		args = append(args, filter.CategoryID)
		where += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM content.post_category pc WHERE pc.postid = p.id AND pc.categoryid = $%d)", len(args))
	}
	if filter.TagID != 0 {
		args = append(args, filter.TagID)
		where += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM content.post_tag pt WHERE pt.postid = p.id AND pt.tagid = $%d)", len(args))
	}

	// ── 2. Count the full result set ──
	var total int
	countQuery := `SELECT COUNT(*) FROM content.post p` + where
	if err := repository.pool.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "post_repo_count")
	}

	// ── 3. Fetch the page ──
	args = append(args, params.Limit, params.Offset())
	pageQuery := `SELECT` + postColumns + `
		FROM content.post p` + where + `
		ORDER BY p.createdat ` + params.OrderSQL() + fmt.Sprintf(`
		LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := repository.pool.Query(context, pageQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "post_repo_list")
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var article Post
		if err := scanPost(rows, &article); err != nil {
			return nil, 0, dberr.Wrap(err, "post_repo_list_scan")
		}
		posts = append(posts, article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "post_repo_list_rows")
	}

	// ── 4. Hydrate taxonomy in one batch ──
	if err := repository.attachTerms(context, posts); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

/*
FindByID retrieves one post with its taxonomy and comment count.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Post: Hydrated entity
  - error: apperr.NotFound or storage failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Post, error) {
	query := `SELECT` + postColumns + `
		FROM content.post p
		WHERE p.id = $1`

	var article Post
	if err := scanPost(repository.pool.QueryRow(context, query, id), &article); err != nil {
		return nil, dberr.Wrap(err, "post_repo_find_by_id")
	}

	hydrated := []Post{article}
	if err := repository.attachTerms(context, hydrated); err != nil {
		return nil, err
	}

	return &hydrated[0], nil
}

/*
Create persists a new post and its taxonomy assignments in one transaction.

Parameters:
  - context: context.Context
  - post: *Post (Entity to persist)
  - categoryIDs: []int
  - tagIDs: []int

Returns:
  - error: Conflict on duplicate slug, or storage failures
*/
func (repository *PostgresRepository) Create(context context.Context, post *Post, categoryIDs, tagIDs []int) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "post_repo_create_begin")
	}
	defer func() { _ = transaction.Rollback(context) }()

	const query = `
		INSERT INTO content.post (
			id, userid, title, slug, content, contenthtml, status, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err = transaction.Exec(context, query,
		post.ID,
		post.UserID,
		post.Title,
		post.Slug,
		post.Content,
		post.ContentHTML,
		post.Status,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "post_repo_create")
	}

	if err := replaceTerms(context, transaction, post.ID, "content.post_category", "categoryid", categoryIDs); err != nil {
		return err
	}
	if err := replaceTerms(context, transaction, post.ID, "content.post_tag", "tagid", tagIDs); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), "post_repo_create_commit")
}

/*
Update persists post changes and replaces taxonomy assignments atomically.

Description: A nil categoryIDs/tagIDs slice leaves the respective assignments
untouched; an empty non-nil slice clears them.

Parameters:
  - context: context.Context
  - post: *Post (Hydrated entity with changes)
  - categoryIDs: []int
  - tagIDs: []int

Returns:
  - error: apperr.NotFound, Conflict, or storage failures
*/
func (repository *PostgresRepository) Update(context context.Context, post *Post, categoryIDs, tagIDs []int) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "post_repo_update_begin")
	}
	defer func() { _ = transaction.Rollback(context) }()

	const query = `
		UPDATE content.post
		SET title = $2,
		    slug = $3,
		    content = $4,
		    contenthtml = $5,
		    status = $6,
		    updatedat = $7
		WHERE id = $1`

	post.UpdatedAt = time.Now()

	tag, err := transaction.Exec(context, query,
		post.ID,
		post.Title,
		post.Slug,
		post.Content,
		post.ContentHTML,
		post.Status,
		post.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "post_repo_update")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}

	if categoryIDs != nil {
		if err := replaceTerms(context, transaction, post.ID, "content.post_category", "categoryid", categoryIDs); err != nil {
			return err
		}
	}
	if tagIDs != nil {
		if err := replaceTerms(context, transaction, post.ID, "content.post_tag", "tagid", tagIDs); err != nil {
			return err
		}
	}

	return dberr.Wrap(transaction.Commit(context), "post_repo_update_commit")
}

/*
Delete permanently removes a post row.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound when no row matched, or storage failures
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	tag, err := repository.pool.Exec(context, `DELETE FROM content.post WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "post_repo_delete")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}

	return nil
}

// # Internals

// scanPost hydrates a post from the canonical column projection.
func scanPost(row pgx.Row, article *Post) error {
	return row.Scan(
		&article.ID,
		&article.UserID,
		&article.Title,
		&article.Slug,
		&article.Content,
		&article.ContentHTML,
		&article.Status,
		&article.CreatedAt,
		&article.UpdatedAt,
		&article.CommentCount,
	)
}

// attachTerms hydrates category and tag projections for a batch of posts
// using two grouped queries instead of per-post round trips.
func (repository *PostgresRepository) attachTerms(context context.Context, posts []Post) error {
	if len(posts) == 0 {
		return nil
	}

	index := make(map[string]*Post, len(posts))
	ids := make([]string, 0, len(posts))
	for i := range posts {
		posts[i].Categories = []TermRef{}
		posts[i].Tags = []TermRef{}
		index[posts[i].ID] = &posts[i]
		ids = append(ids, posts[i].ID)
	}

	const categoryQuery = `
		SELECT pc.postid, c.id, c.name, c.slug
		FROM content.post_category pc
		JOIN content.category c ON c.id = pc.categoryid
		WHERE pc.postid = ANY($1)`

	if err := repository.collectTerms(context, categoryQuery, ids, index, false); err != nil {
		return err
	}

	const tagQuery = `
		SELECT pt.postid, t.id, t.name, t.slug
		FROM content.post_tag pt
		JOIN content.tag t ON t.id = pt.tagid
		WHERE pt.postid = ANY($1)`

	return repository.collectTerms(context, tagQuery, ids, index, true)
}

// collectTerms runs one grouped taxonomy query and appends the projections to
// the indexed posts.
func (repository *PostgresRepository) collectTerms(context context.Context, query string, ids []string, index map[string]*Post, isTag bool) error {
	rows, err := repository.pool.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "post_repo_terms")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID string
			term   TermRef
		)
		if err := rows.Scan(&postID, &term.ID, &term.Name, &term.Slug); err != nil {
			return dberr.Wrap(err, "post_repo_terms_scan")
		}

		if target, ok := index[postID]; ok {
			if isTag {
				target.Tags = append(target.Tags, term)
			} else {
				target.Categories = append(target.Categories, term)
			}
		}
	}

	return dberr.Wrap(rows.Err(), "post_repo_terms_rows")
}

// replaceTerms swaps the full taxonomy assignment set for a post inside the
// given transaction.
func replaceTerms(context context.Context, transaction pgx.Tx, postID, table, column string, termIDs []int) error {
	if _, err := transaction.Exec(context, `DELETE FROM `+table+` WHERE postid = $1`, postID); err != nil {
		return dberr.Wrap(err, "post_repo_terms_clear")
	}

	for _, termID := range termIDs {
		insert := `INSERT INTO ` + table + ` (postid, ` + column + `) VALUES ($1, $2)`
		if _, err := transaction.Exec(context, insert, postID, termID); err != nil {
			return dberr.Wrap(err, "post_repo_terms_insert")
		}
	}

	return nil
}
