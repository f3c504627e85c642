package usecase

import (
	"context"

	"github.com/lavka-tech/storefront-backend/pkg/token"
)

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// PasswordHasher скрывает алгоритм хэширования паролей.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenManager выпускает и проверяет токены доступа.
type TokenManager interface {
	Issue(profileID int64, role string, sessionID string) (string, error)
	Parse(raw string) (*token.Claims, error)
}
