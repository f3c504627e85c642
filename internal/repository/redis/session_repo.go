package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/lavka-tech/storefront-backend/pkg/clients"
	"github.com/lavka-tech/storefront-backend/pkg/e"
)

// SessionRepo хранит живые сессии в Redis: session:<id> -> profile_id.
// Удаление ключа отзывает все токены сессии. TTL совпадает со сроком жизни токена,
// поэтому протухшие сессии не требуют отдельной уборки.
type SessionRepo struct {
	client *clients.RedisClient
	ttl    time.Duration
}

func NewSessionRepo(client *clients.RedisClient, ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		client: client,
		ttl:    ttl,
	}
}

func (s *SessionRepo) Create(ctx context.Context, sessionID string, profileID int64) error {
	if err := s.client.Client.Set(ctx, s.sessionKey(sessionID), profileID, s.ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *SessionRepo) Get(ctx context.Context, sessionID string) (int64, error) {
	val, err := s.client.Client.Get(ctx, s.sessionKey(sessionID)).Result()
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	profileID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return profileID, nil
}

func (s *SessionRepo) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Client.Del(ctx, s.sessionKey(sessionID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *SessionRepo) sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
