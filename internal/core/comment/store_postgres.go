// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package comment

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

// # Comment Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the comment Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const commentColumns = `
	id, postid, userid, parentid, content, status, createdat, updatedat`

/*
List returns a filtered page of comments plus the total matching count.

Parameters:
  - context: context.Context
  - filter: ListFilter
  - params: pagination.Params

Returns:
  - []Comment: Page of comments
  - int: Total matching count
  - error: Retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, filter ListFilter, params pagination.Params) ([]Comment, int, error) {

	where := " WHERE 1=1"
	args := []interface{}{}

	if filter.PostID != "" {
		args = append(args, filter.PostID)
		where += fmt.Sprintf(" AND postid = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM content.comment` + where
	if err := repository.pool.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "comment_repo_count")
	}

	args = append(args, params.Limit, params.Offset())
	pageQuery := `SELECT` + commentColumns + `
		FROM content.comment` + where + `
		ORDER BY createdat ` + params.OrderSQL() + fmt.Sprintf(`
		LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := repository.pool.Query(context, pageQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "comment_repo_list")
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var entry Comment
		if err := scanComment(rows, &entry); err != nil {
			return nil, 0, dberr.Wrap(err, "comment_repo_list_scan")
		}
		comments = append(comments, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "comment_repo_list_rows")
	}

	return comments, total, nil
}

/*
FindByID retrieves one comment row.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Comment: Hydrated entity
  - error: apperr.NotFound or storage failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Comment, error) {
	query := `SELECT` + commentColumns + `
		FROM content.comment
		WHERE id = $1`

	var entry Comment
	if err := scanComment(repository.pool.QueryRow(context, query, id), &entry); err != nil {
		return nil, dberr.Wrap(err, "comment_repo_find_by_id")
	}

	return &entry, nil
}

/*
Create persists a new comment row.

Parameters:
  - context: context.Context
  - comment: *Comment (Entity to persist)

Returns:
  - error: Storage failures (foreign-key violations included)
*/
func (repository *PostgresRepository) Create(context context.Context, comment *Comment) error {
	const query = `
		INSERT INTO content.comment (
			id, postid, userid, parentid, content, status, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		comment.ID,
		comment.PostID,
		comment.UserID,
		comment.ParentID,
		comment.Content,
		comment.Status,
		comment.CreatedAt,
		comment.UpdatedAt,
	)

	return dberr.Wrap(err, "comment_repo_create")
}

/*
Update persists content and status changes to an existing comment.

Parameters:
  - context: context.Context
  - comment: *Comment (Hydrated entity with changes)

Returns:
  - error: apperr.NotFound when no row matched, or storage failures
*/
func (repository *PostgresRepository) Update(context context.Context, comment *Comment) error {
	const query = `
		UPDATE content.comment
		SET content = $2,
		    status = $3,
		    updatedat = $4
		WHERE id = $1`

	comment.UpdatedAt = time.Now()

	tag, err := repository.pool.Exec(context, query,
		comment.ID,
		comment.Content,
		comment.Status,
		comment.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "comment_repo_update")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Comment")
	}

	return nil
}

/*
Delete removes a comment and promotes its direct replies to top level.

Description: Both statements run in one transaction so a reply can never
point at a deleted parent, even momentarily.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound when no row matched, or storage failures
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "comment_repo_delete_begin")
	}
	defer func() { _ = transaction.Rollback(context) }()

	if _, err := transaction.Exec(context, `UPDATE content.comment SET parentid = NULL WHERE parentid = $1`, id); err != nil {
		return dberr.Wrap(err, "comment_repo_detach_replies")
	}

	tag, err := transaction.Exec(context, `DELETE FROM content.comment WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "comment_repo_delete")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Comment")
	}

	return dberr.Wrap(transaction.Commit(context), "comment_repo_delete_commit")
}

// scanComment hydrates a comment from the canonical column projection.
func scanComment(row pgx.Row, entry *Comment) error {
	return row.Scan(
		&entry.ID,
		&entry.PostID,
		&entry.UserID,
		&entry.ParentID,
		&entry.Content,
		&entry.Status,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
}
