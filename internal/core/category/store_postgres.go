// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package category

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/dberr"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Category Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the category Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
List returns one page of categories ordered by name, plus the total count.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []Category: Page of categories
  - int: Total count
  - error: Retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, params pagination.Params) ([]Category, int, error) {
	query := `
		SELECT id, name, slug, createdat, updatedat
		FROM content.category
		ORDER BY name ` + params.OrderSQL() + `
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "category_repo_list")
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var entry Category
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Slug, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "category_repo_list_scan")
		}
		categories = append(categories, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "category_repo_list_rows")
	}

	var total int
	if err := repository.pool.QueryRow(context, `SELECT COUNT(*) FROM content.category`).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "category_repo_count")
	}

	return categories, total, nil
}

// FindByID retrieves one category row.
func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Category, error) {
	const query = `
		SELECT id, name, slug, createdat, updatedat
		FROM content.category
		WHERE id = $1`

	var entry Category
	err := repository.pool.QueryRow(context, query, id).
		Scan(&entry.ID, &entry.Name, &entry.Slug, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "category_repo_find_by_id")
	}

	return &entry, nil
}

// FindBySlug retrieves one category row by its slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Category, error) {
	const query = `
		SELECT id, name, slug, createdat, updatedat
		FROM content.category
		WHERE slug = $1`

	var entry Category
	err := repository.pool.QueryRow(context, query, slug).
		Scan(&entry.ID, &entry.Name, &entry.Slug, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "category_repo_find_by_slug")
	}

	return &entry, nil
}

// Create persists a new category row, hydrating its generated ID.
func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	const query = `
		INSERT INTO content.category (name, slug, createdat, updatedat)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	err := repository.pool.QueryRow(context, query,
		category.Name,
		category.Slug,
		category.CreatedAt,
		category.UpdatedAt,
	).Scan(&category.ID)

	return dberr.Wrap(err, "category_repo_create")
}

// Update persists name and slug changes to an existing category row.
func (repository *PostgresRepository) Update(context context.Context, category *Category) error {
	const query = `
		UPDATE content.category
		SET name = $2, slug = $3, updatedat = $4
		WHERE id = $1`

	category.UpdatedAt = time.Now()

	tag, err := repository.pool.Exec(context, query,
		category.ID,
		category.Name,
		category.Slug,
		category.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "category_repo_update")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}

	return nil
}

// Delete removes a category row. Assignments cascade at the schema level.
func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	tag, err := repository.pool.Exec(context, `DELETE FROM content.category WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "category_repo_delete")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Category")
	}

	return nil
}
