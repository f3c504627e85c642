package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/lavka-tech/storefront-backend/pkg/e"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// Create вставляет категорию. Занятый slug отображается в e.ErrSlugTaken.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name, slug, description, image_key, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, slug, description, image_key, is_active, created_at, updated_at;
	`

	model := c.conv.ToModel(category)
	err := c.pool.QueryRow(ctx, query,
		model.Name, model.Slug, model.Description, model.ImageKey, model.IsActive,
	).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Description,
		&model.ImageKey, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSlugTaken)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, image_key = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, slug, description, image_key, is_active, created_at, updated_at;
	`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query,
		category.ID, category.Name, category.Slug, category.Description,
		category.ImageKey, category.IsActive,
	).Scan(
		&model.ID, &model.Name, &model.Slug, &model.Description,
		&model.ImageKey, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSlugTaken)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Archive скрывает категорию с витрины, не удаляя запись.
func (c *CategoryRepo) Archive(ctx context.Context, id int64) error {
	query := `
		UPDATE categories
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1;
	`

	result, err := c.pool.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	return nil
}

func (c *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, slug, description, image_key, is_active, created_at, updated_at
		FROM categories
		WHERE id = $1;
	`

	var model converter.CategoryModel
	err := c.pool.QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.Name, &model.Slug, &model.Description,
			&model.ImageKey, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// List возвращает категории по имени; activeOnly скрывает архивные.
func (c *CategoryRepo) List(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, description, image_key, is_active, created_at, updated_at
		FROM categories
		WHERE NOT $1 OR is_active
		ORDER BY name;
	`

	rows, err := c.pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Slug, &model.Description,
			&model.ImageKey, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
