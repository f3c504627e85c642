package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/e"
)

// StatsRepo собирает агрегаты магазина для админ-панели.
type StatsRepo struct {
	pool *pgxpool.Pool
}

func NewStatsRepo(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// Dashboard возвращает счётчики каталога и заказов одним запросом
// плюс разбивку заказов по статусам. Выручка не учитывает отменённые заказы.
func (s *StatsRepo) Dashboard(ctx context.Context) (*usecase.DashboardRes, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products WHERE is_active),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM profiles WHERE role = 'customer'),
			(SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE status <> 'cancelled');
	`

	res := &usecase.DashboardRes{
		OrdersByStatus: make(map[domain.OrderStatus]int64),
	}
	err := s.pool.QueryRow(ctx, query).
		Scan(&res.Products, &res.Orders, &res.Customers, &res.Revenue)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	rows, err := s.pool.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status;`)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.OrderStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		res.OrdersByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return res, nil
}
