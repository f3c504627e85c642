package usecase

import (
	"context"

	"github.com/lavka-tech/storefront-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Archive(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Category, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Archive(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, filter *ListProductsReq) ([]domain.Product, error)
	GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error)
	// DecrementInventory уменьшает остаток в рамках транзакции из контекста.
	// Возвращает e.ErrInsufficientStock, если остатка не хватает.
	DecrementInventory(ctx context.Context, productID int64, quantity int) error
}

type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) (*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) (*domain.Address, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	ListByProfile(ctx context.Context, profileID int64) ([]domain.Address, error)
	// SetDefault атомарно (в одной транзакции) снимает флаг с остальных адресов
	// владельца и выставляет его на указанный адрес.
	SetDefault(ctx context.Context, profileID, addressID int64) error
}

type OrderRepository interface {
	// Create вставляет заказ и его позиции в рамках транзакции из контекста.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	List(ctx context.Context, req *ListOrdersReq) ([]domain.Order, error)
	// UpdateStatus меняет статус в рамках транзакции из контекста.
	UpdateStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) (*domain.Order, error)
}

// CartRepository хранит снапшот корзины: полный список позиций под фиксированным ключом.
type CartRepository interface {
	Get(ctx context.Context, owner string) ([]domain.CartItem, error)
	Save(ctx context.Context, owner string, items []domain.CartItem) error
	Delete(ctx context.Context, owner string) error
}

type SessionRepository interface {
	Create(ctx context.Context, sessionID string, profileID int64) error
	Get(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type StatsRepository interface {
	Dashboard(ctx context.Context) (*DashboardRes, error)
}
