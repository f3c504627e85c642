package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lavka-tech/storefront-backend/pkg/e"
)

// Claims — полезная нагрузка токена доступа.
// SessionID сверяется с Redis, поэтому выход из аккаунта отзывает токен фактически.
type Claims struct {
	ProfileID int64  `json:"profile_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет JWT-токены доступа (HS256).
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue выпускает подписанный токен для профиля и сессии.
func (m *Manager) Issue(profileID int64, role string, sessionID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ProfileID: profileID,
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse проверяет подпись и срок действия токена, возвращая его claims.
// Любая ошибка разбора сводится к e.ErrUnauthorized.
func (m *Manager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, e.ErrUnauthorized
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, e.ErrUnauthorized
	}

	return claims, nil
}

// TTL возвращает срок жизни выпускаемых токенов.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
