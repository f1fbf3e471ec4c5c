// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package page

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/dberr"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Page Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the page Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const pageColumns = `id, title, slug, content, contenthtml, createdat, updatedat`

// List returns one page of entries ordered by title, plus the total count.
func (repository *PostgresRepository) List(context context.Context, params pagination.Params) ([]Page, int, error) {
	query := `
		SELECT ` + pageColumns + `
		FROM content.page
		ORDER BY title ` + params.OrderSQL() + `
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "page_repo_list")
	}
	defer rows.Close()

	var pages []Page
	for rows.Next() {
		var entry Page
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Slug, &entry.Content, &entry.ContentHTML, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "page_repo_list_scan")
		}
		pages = append(pages, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "page_repo_list_rows")
	}

	var total int
	if err := repository.pool.QueryRow(context, `SELECT COUNT(*) FROM content.page`).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "page_repo_count")
	}

	return pages, total, nil
}

// FindByID retrieves one page row.
func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Page, error) {
	query := `SELECT ` + pageColumns + ` FROM content.page WHERE id = $1`

	var entry Page
	err := repository.pool.QueryRow(context, query, id).
		Scan(&entry.ID, &entry.Title, &entry.Slug, &entry.Content, &entry.ContentHTML, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "page_repo_find_by_id")
	}

	return &entry, nil
}

// FindBySlug retrieves one page row by its slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Page, error) {
	query := `SELECT ` + pageColumns + ` FROM content.page WHERE slug = $1`

	var entry Page
	err := repository.pool.QueryRow(context, query, slug).
		Scan(&entry.ID, &entry.Title, &entry.Slug, &entry.Content, &entry.ContentHTML, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "page_repo_find_by_slug")
	}

	return &entry, nil
}

// Create persists a new page row, hydrating its generated ID.
func (repository *PostgresRepository) Create(context context.Context, page *Page) error {
	const query = `
		INSERT INTO content.page (title, slug, content, contenthtml, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	page.CreatedAt = now
	page.UpdatedAt = now

	err := repository.pool.QueryRow(context, query,
		page.Title,
		page.Slug,
		page.Content,
		page.ContentHTML,
		page.CreatedAt,
		page.UpdatedAt,
	).Scan(&page.ID)

	return dberr.Wrap(err, "page_repo_create")
}

// Update persists changes to an existing page row.
func (repository *PostgresRepository) Update(context context.Context, page *Page) error {
	const query = `
		UPDATE content.page
		SET title = $2, slug = $3, content = $4, contenthtml = $5, updatedat = $6
		WHERE id = $1`

	page.UpdatedAt = time.Now()

	tag, err := repository.pool.Exec(context, query,
		page.ID,
		page.Title,
		page.Slug,
		page.Content,
		page.ContentHTML,
		page.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "page_repo_update")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Page")
	}

	return nil
}

// Delete removes a page row.
func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	tag, err := repository.pool.Exec(context, `DELETE FROM content.page WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "page_repo_delete")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Page")
	}

	return nil
}
