package tag

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/dberr"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repo *PostgresRepository) List(context context.Context, params pagination.Params) ([]Tag, int, error) {
	query := `
		SELECT id, name, slug, createdat, updatedat
		FROM content.tag
		ORDER BY name ` + params.OrderSQL() + `
		LIMIT $1 OFFSET $2`

	rows, err := repo.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "tag_repo_list")
	}
	defer rows.Close()

	var tags []Tag
	for rows.Next() {
		var entry Tag
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Slug, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "tag_repo_list_scan")
		}
		tags = append(tags, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "tag_repo_list_rows")
	}

	var total int
	if err := repo.pool.QueryRow(context, `SELECT COUNT(*) FROM content.tag`).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "tag_repo_count")
	}

	return tags, total, nil
}

func (repo *PostgresRepository) FindByID(context context.Context, id int) (*Tag, error) {
	const query = `
		SELECT id, name, slug, createdat, updatedat
		FROM content.tag
		WHERE id = $1`

	var entry Tag
	err := repo.pool.QueryRow(context, query, id).
		Scan(&entry.ID, &entry.Name, &entry.Slug, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "tag_repo_find_by_id")
	}

	return &entry, nil
}

func (repo *PostgresRepository) FindBySlug(context context.Context, slug string) (*Tag, error) {
	const query = `
		SELECT id, name, slug, createdat, updatedat
		FROM content.tag
		WHERE slug = $1`

	var entry Tag
	err := repo.pool.QueryRow(context, query, slug).
		Scan(&entry.ID, &entry.Name, &entry.Slug, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "tag_repo_find_by_slug")
	}

	return &entry, nil
}

func (repo *PostgresRepository) Create(context context.Context, tag *Tag) error {
	const query = `
		INSERT INTO content.tag (name, slug, createdat, updatedat)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	now := time.Now()
	tag.CreatedAt = now
	tag.UpdatedAt = now

	err := repo.pool.QueryRow(context, query, tag.Name, tag.Slug, tag.CreatedAt, tag.UpdatedAt).Scan(&tag.ID)
	return dberr.Wrap(err, "tag_repo_create")
}

func (repo *PostgresRepository) Update(context context.Context, tag *Tag) error {
	const query = `
		UPDATE content.tag
		SET name = $2, slug = $3, updatedat = $4
		WHERE id = $1`

	tag.UpdatedAt = time.Now()

	commandTag, err := repo.pool.Exec(context, query, tag.ID, tag.Name, tag.Slug, tag.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "tag_repo_update")
	}
	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Tag")
	}

	return nil
}

func (repo *PostgresRepository) Delete(context context.Context, id int) error {
	commandTag, err := repo.pool.Exec(context, `DELETE FROM content.tag WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "tag_repo_delete")
	}
	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound("Tag")
	}

	return nil
}
