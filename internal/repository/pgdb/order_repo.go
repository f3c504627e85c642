package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/tr"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
// Заказ — агрегат из двух таблиц (orders и order_items) со встроенным
// снапшотом адреса доставки, поэтому модели строк собираются вручную.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// querier покрывает pgxpool.Pool и pgx.Tx для чтения позиций заказов.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const orderColumns = `id, profile_id, order_number, status, total_price,
		ship_recipient, ship_line1, ship_line2, ship_city, ship_region,
		ship_postal_code, ship_country, notes, created_at, updated_at`

// Create вставляет заказ и его позиции в рамках транзакции из контекста.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (
			profile_id, order_number, status, total_price,
			ship_recipient, ship_line1, ship_line2, ship_city, ship_region,
			ship_postal_code, ship_country, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at;
	`

	created := *order
	err = tx.QueryRow(ctx, query,
		order.ProfileID, order.OrderNumber, order.Status, order.TotalPrice,
		order.Shipping.Recipient, order.Shipping.Line1, order.Shipping.Line2,
		order.Shipping.City, order.Shipping.Region, order.Shipping.PostalCode,
		order.Shipping.Country, order.Notes,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	created.Items = make([]domain.OrderItem, len(order.Items))
	for i, item := range order.Items {
		item.OrderID = created.ID
		if err := tx.QueryRow(ctx, itemQuery,
			item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice,
		).Scan(&item.ID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		created.Items[i] = item
	}

	return &created, nil
}

func (o *OrderRepo) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1;`

	var order domain.Order
	err := o.pool.QueryRow(ctx, query, orderNumber).Scan(scanOrderFields(&order)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsByOrder, err := o.loadItems(ctx, o.pool, []int64{order.ID})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	order.Items = itemsByOrder[order.ID]

	return &order, nil
}

// List возвращает страницу заказов с позициями, новые первыми.
func (o *OrderRepo) List(ctx context.Context, req *usecase.ListOrdersReq) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE ($1::BIGINT IS NULL OR profile_id = $1)
		  AND ($2::TEXT IS NULL OR status = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4;
	`

	rows, err := o.pool.Query(ctx, query, req.ProfileID, req.Status, req.Limit, req.Offset)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(scanOrderFields(&order)...); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(ids) == 0 {
		return orders, nil
	}

	itemsByOrder, err := o.loadItems(ctx, o.pool, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}

	return orders, nil
}

// UpdateStatus меняет статус заказа в рамках транзакции из контекста.
func (o *OrderRepo) UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE order_number = $1
		RETURNING ` + orderColumns + `;
	`

	var order domain.Order
	err = tx.QueryRow(ctx, query, orderNumber, status).Scan(scanOrderFields(&order)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsByOrder, err := o.loadItems(ctx, tx, []int64{order.ID})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	order.Items = itemsByOrder[order.ID]

	return &order, nil
}

func (o *OrderRepo) loadItems(ctx context.Context, q querier, orderIDs []int64) (map[int64][]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, unit_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id;
	`

	rows, err := q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.UnitPrice,
		); err != nil {
			return nil, err
		}

		result[item.OrderID] = append(result[item.OrderID], item)
	}

	return result, rows.Err()
}

func scanOrderFields(order *domain.Order) []any {
	return []any{
		&order.ID, &order.ProfileID, &order.OrderNumber, &order.Status, &order.TotalPrice,
		&order.Shipping.Recipient, &order.Shipping.Line1, &order.Shipping.Line2,
		&order.Shipping.City, &order.Shipping.Region, &order.Shipping.PostalCode,
		&order.Shipping.Country, &order.Notes, &order.CreatedAt, &order.UpdatedAt,
	}
}
