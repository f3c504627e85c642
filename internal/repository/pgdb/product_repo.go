package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/tr"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `id, name, description, price, compare_price, category_id,
		image_keys, inventory, sku, is_active, created_at, updated_at`

// Create вставляет продукт. Занятый SKU отображается в e.ErrSKUTaken.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, description, price, compare_price, category_id, image_keys, inventory, sku, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + productColumns + `;
	`

	model := p.conv.ToModel(product)
	err := p.pool.QueryRow(ctx, query,
		model.Name, model.Description, model.Price, model.ComparePrice,
		model.CategoryID, model.ImageKeys, model.Inventory, model.SKU, model.IsActive,
	).Scan(scanProductFields(model)...)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSKUTaken)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, compare_price = $5,
			category_id = $6, image_keys = $7, inventory = $8, is_active = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns + `;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.ComparePrice,
		product.CategoryID, product.ImageKeys, product.Inventory, product.IsActive,
	).Scan(scanProductFields(&model)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Archive скрывает продукт с витрины, не удаляя запись.
func (p *ProductRepo) Archive(ctx context.Context, id int64) error {
	query := `
		UPDATE products
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1;
	`

	result, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).Scan(scanProductFields(&model)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// List возвращает страницу продуктов по фильтру витрины.
func (p *ProductRepo) List(ctx context.Context, filter *usecase.ListProductsReq) ([]domain.Product, error) {
	var order string
	switch filter.Sort {
	case usecase.SortPriceAsc:
		order = "price ASC, id ASC"
	case usecase.SortPriceDesc:
		order = "price DESC, id ASC"
	default:
		order = "created_at DESC, id DESC"
	}

	query := fmt.Sprintf(`
		SELECT `+productColumns+`
		FROM products
		WHERE (NOT $1 OR is_active)
		  AND ($2::BIGINT IS NULL OR category_id = $2)
		ORDER BY %s
		LIMIT $3 OFFSET $4;
	`, order)

	rows, err := p.pool.Query(ctx, query, filter.ActiveOnly, filter.CategoryID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(scanProductFields(&model)...); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// GetProductsInfo возвращает информацию о продуктах по их идентификаторам, включая название категории.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.name, pr.price, cat.name
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = ANY($1)
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var product usecase.ProductInfo
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.CategoryName); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	return result, nil
}

// DecrementInventory списывает остаток продукта в рамках транзакции из контекста.
// Условие inventory >= $2 не даёт уйти в минус: ноль затронутых строк при
// существующем продукте означает нехватку остатка.
func (p *ProductRepo) DecrementInventory(ctx context.Context, productID int64, quantity int) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET inventory = inventory - $2, updated_at = NOW()
		WHERE id = $1 AND is_active AND inventory >= $2;
	`

	result, err := tx.Exec(ctx, query, productID, quantity)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1 AND is_active);`, productID).
			Scan(&exists); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		if !exists {
			return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return e.Wrap(whereami.WhereAmI(), e.ErrInsufficientStock)
	}

	return nil
}

// scanProductFields возвращает приёмники Scan в порядке productColumns.
func scanProductFields(model *converter.ProductModel) []any {
	return []any{
		&model.ID, &model.Name, &model.Description, &model.Price, &model.ComparePrice,
		&model.CategoryID, &model.ImageKeys, &model.Inventory, &model.SKU,
		&model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	}
}
