package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	"github.com/lavka-tech/storefront-backend/internal/cfg"
	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/internal/repository/redis/converter"
	"github.com/lavka-tech/storefront-backend/pkg/clients"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	r "github.com/redis/go-redis/v9"
)

// CartRepo хранит снапшот корзины в Redis: полный JSON-список позиций
// под ключом владельца. Каждая запись перезаписывает снапшот целиком.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.CartCfg
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter, cfg *cfg.CartCfg) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
	}
}

// Get читает снапшот корзины. Отсутствующий ключ — пустая корзина без ошибки;
// повреждённый JSON — ошибка, решение о деградации принимает вызывающий.
func (c *CartRepo) Get(ctx context.Context, owner string) ([]domain.CartItem, error) {
	data, err := c.client.Client.Get(ctx, c.cartKey(owner)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.CartItemRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrDomain(models), nil
}

// Save перезаписывает снапшот корзины целиком.
func (c *CartRepo) Save(ctx context.Context, owner string, items []domain.CartItem) error {
	models := c.conv.ToArrRedisModel(items)
	if models == nil {
		models = []converter.CartItemRedisModel{}
	}

	data, err := json.Marshal(models)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.cartKey(owner), data, c.cfg.TTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Delete удаляет снапшот корзины. Отсутствующий ключ — no-op.
func (c *CartRepo) Delete(ctx context.Context, owner string) error {
	if err := c.client.Client.Del(ctx, c.cartKey(owner)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) cartKey(owner string) string {
	return fmt.Sprintf("cart:%s", owner)
}
