package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/lavka-tech/storefront-backend/pkg/e"
)

// AddressRepo реализует репозиторий адресов доставки поверх PostgreSQL.
type AddressRepo struct {
	pool *pgxpool.Pool
	conv converter.AddressConverter
}

func NewAddressRepo(pool *pgxpool.Pool, conv converter.AddressConverter) *AddressRepo {
	return &AddressRepo{
		pool: pool,
		conv: conv,
	}
}

const addressColumns = `id, profile_id, label, recipient, line1, line2, city,
		region, postal_code, country, is_default, created_at, updated_at`

func (a *AddressRepo) Create(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	query := `
		INSERT INTO addresses (profile_id, label, recipient, line1, line2, city, region, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + addressColumns + `;
	`

	model := a.conv.ToModel(address)
	err := a.pool.QueryRow(ctx, query,
		model.ProfileID, model.Label, model.Recipient, model.Line1, model.Line2,
		model.City, model.Region, model.PostalCode, model.Country,
	).Scan(scanAddressFields(model)...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(model), nil
}

func (a *AddressRepo) Update(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	query := `
		UPDATE addresses
		SET label = $2, recipient = $3, line1 = $4, line2 = $5, city = $6,
			region = $7, postal_code = $8, country = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + addressColumns + `;
	`

	var model converter.AddressModel
	err := a.pool.QueryRow(ctx, query,
		address.ID, address.Label, address.Recipient, address.Line1, address.Line2,
		address.City, address.Region, address.PostalCode, address.Country,
	).Scan(scanAddressFields(&model)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrAddressNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(&model), nil
}

func (a *AddressRepo) Delete(ctx context.Context, id int64) error {
	result, err := a.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrAddressNotFound)
	}

	return nil
}

func (a *AddressRepo) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1;`

	var model converter.AddressModel
	err := a.pool.QueryRow(ctx, query, id).Scan(scanAddressFields(&model)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrAddressNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(&model), nil
}

// ListByProfile возвращает адреса владельца, адрес по умолчанию первым.
func (a *AddressRepo) ListByProfile(ctx context.Context, profileID int64) ([]domain.Address, error) {
	query := `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE profile_id = $1
		ORDER BY is_default DESC, created_at DESC;
	`

	rows, err := a.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Address, 0)
	for rows.Next() {
		var model converter.AddressModel
		if err := rows.Scan(scanAddressFields(&model)...); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *a.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// SetDefault атомарно делает адрес единственным адресом по умолчанию:
// снятие флага с остальных и установка на целевой идут одной транзакцией,
// промежуточное состояние снаружи не наблюдается.
func (a *AddressRepo) SetDefault(ctx context.Context, profileID, addressID int64) error {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `
		UPDATE addresses
		SET is_default = FALSE, updated_at = NOW()
		WHERE profile_id = $1 AND is_default AND id <> $2;
	`, profileID, addressID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	var result pgconn.CommandTag
	result, err = tx.Exec(ctx, `
		UPDATE addresses
		SET is_default = TRUE, updated_at = NOW()
		WHERE profile_id = $1 AND id = $2;
	`, profileID, addressID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		err = e.ErrAddressNotFound
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func scanAddressFields(model *converter.AddressModel) []any {
	return []any{
		&model.ID, &model.ProfileID, &model.Label, &model.Recipient,
		&model.Line1, &model.Line2, &model.City, &model.Region,
		&model.PostalCode, &model.Country, &model.IsDefault,
		&model.CreatedAt, &model.UpdatedAt,
	}
}
