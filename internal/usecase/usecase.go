package usecase

import (
	"context"

	"github.com/lavka-tech/storefront-backend/internal/domain"
)

type AuthUC interface {
	SignUp(ctx context.Context, req *SignUpReq) (*AuthRes, error)
	SignIn(ctx context.Context, req *SignInReq) (*AuthRes, error)
	SignOut(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, rawToken string) (*Identity, error)
	Me(ctx context.Context, profileID int64) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, req *UpdateProfileReq) (*domain.Profile, error)
}

type CategoryUC interface {
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	UpdateCategory(ctx context.Context, req *UpdateCategoryReq) (*domain.Category, error)
	ArchiveCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)
}

type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	ArchiveProduct(ctx context.Context, id int64) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, req *ListProductsReq) ([]domain.Product, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
}

// CartUC — серверное состояние корзины с контрактом персистентности:
// каждая мутация синхронно записывает полный снапшот и синхронно
// уведомляет подписчиков до возврата управления.
type CartUC interface {
	GetCart(ctx context.Context, owner string) (*CartView, error)
	AddItem(ctx context.Context, owner string, productID int64, quantity int) (*CartView, error)
	UpdateQuantity(ctx context.Context, owner string, productID int64, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, owner string, productID int64) (*CartView, error)
	ClearCart(ctx context.Context, owner string) (*CartView, error)
	Subscribe(fn CartSubscriber)
}

type OrderUC interface {
	Checkout(ctx context.Context, req *CheckoutReq) (*domain.Order, error)
	ListOrders(ctx context.Context, req *ListOrdersReq) ([]domain.Order, error)
	GetOrder(ctx context.Context, requester *Identity, orderNumber string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error)
}

type AddressUC interface {
	CreateAddress(ctx context.Context, req *CreateAddressReq) (*domain.Address, error)
	UpdateAddress(ctx context.Context, req *UpdateAddressReq) (*domain.Address, error)
	DeleteAddress(ctx context.Context, profileID, addressID int64) error
	ListAddresses(ctx context.Context, profileID int64) ([]domain.Address, error)
	SetDefaultAddress(ctx context.Context, profileID, addressID int64) error
}

type StatsUC interface {
	Dashboard(ctx context.Context) (*DashboardRes, error)
}
