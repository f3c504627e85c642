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

// ProfileRepo реализует репозиторий профилей поверх PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
	conv converter.ProfileConverter
}

func NewProfileRepo(pool *pgxpool.Pool, conv converter.ProfileConverter) *ProfileRepo {
	return &ProfileRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет профиль. Занятый email отображается в e.ErrEmailTaken.
func (p *ProfileRepo) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (email, password_hash, full_name, avatar_url, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password_hash, full_name, avatar_url, role, created_at, updated_at;
	`

	model := p.conv.ToModel(profile)
	err := p.pool.QueryRow(ctx, query,
		model.Email, model.PasswordHash, model.FullName, model.AvatarURL, model.Role,
	).Scan(
		&model.ID, &model.Email, &model.PasswordHash, &model.FullName,
		&model.AvatarURL, &model.Role, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailTaken)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProfileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	query := `
		SELECT id, email, password_hash, full_name, avatar_url, role, created_at, updated_at
		FROM profiles
		WHERE id = $1;
	`

	return p.scanOne(ctx, query, id)
}

func (p *ProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `
		SELECT id, email, password_hash, full_name, avatar_url, role, created_at, updated_at
		FROM profiles
		WHERE email = $1;
	`

	return p.scanOne(ctx, query, email)
}

// Update перезаписывает изменяемые поля профиля. Email и роль не меняются.
func (p *ProfileRepo) Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		UPDATE profiles
		SET full_name = $2, avatar_url = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, email, password_hash, full_name, avatar_url, role, created_at, updated_at;
	`

	var model converter.ProfileModel
	err := p.pool.QueryRow(ctx, query, profile.ID, profile.FullName, profile.AvatarURL).
		Scan(
			&model.ID, &model.Email, &model.PasswordHash, &model.FullName,
			&model.AvatarURL, &model.Role, &model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProfileNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProfileRepo) scanOne(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	var model converter.ProfileModel
	err := p.pool.QueryRow(ctx, query, arg).
		Scan(
			&model.ID, &model.Email, &model.PasswordHash, &model.FullName,
			&model.AvatarURL, &model.Role, &model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProfileNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}
