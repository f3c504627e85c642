package auth

import (
	"github.com/jimlawless/whereami"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher реализует хэширование паролей через bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

func (b *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return string(hash), nil
}

// Compare возвращает ошибку при несовпадении пароля с хэшем.
func (b *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
