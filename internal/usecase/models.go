package usecase

import (
	"time"

	"github.com/lavka-tech/storefront-backend/internal/domain"
)

// AUTH USECASE

// SignUpReq — запрос на регистрацию нового профиля.
type SignUpReq struct {
	Email    string
	Password string
	FullName string
}

// SignInReq — запрос на вход по email и паролю.
type SignInReq struct {
	Email    string
	Password string
}

// AuthRes — результат успешной регистрации или входа.
type AuthRes struct {
	Profile *domain.Profile
	Token   string
}

// Identity — подтверждённая личность запроса: профиль, роль и сессия.
type Identity struct {
	ProfileID int64
	Role      domain.Role
	SessionID string
}

// UpdateProfileReq — частичное обновление профиля. nil-поля не меняются.
type UpdateProfileReq struct {
	ProfileID int64
	FullName  *string
	AvatarURL *string
}

// CATEGORY USECASE

type CreateCategoryReq struct {
	Name        string
	Slug        string
	Description string
	Image       *ProductImage // опционально
}

// UpdateCategoryReq — частичное обновление категории. nil-поля не меняются.
type UpdateCategoryReq struct {
	ID          int64
	Name        *string
	Slug        *string
	Description *string
	IsActive    *bool
	Image       *ProductImage
}

// PRODUCT USECASE

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

type CreateProductReq struct {
	Name         string
	Description  string
	Price        int64
	ComparePrice *int64
	CategoryID   int64
	Inventory    int
	SKU          string
	Images       []ProductImage
}

// UpdateProductReq — частичное обновление продукта. nil-поля не меняются.
type UpdateProductReq struct {
	ID           int64
	Name         *string
	Description  *string
	Price        *int64
	ComparePrice *int64
	CategoryID   *int64
	Inventory    *int
	IsActive     *bool
	Images       []ProductImage // непустой список замещает изображения продукта
}

// Сортировки списка продуктов.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ListProductsReq — фильтры и сортировка публичного списка продуктов.
type ListProductsReq struct {
	CategoryID *int64
	ActiveOnly bool
	Sort       string
	Limit      int
	Offset     int
}

// GetProductsReq запрос информации о продуктах по их идентификаторам.
type GetProductsReq struct {
	IDs []int64
}

// GetProductsRes — ответ с данными запрошенных продуктов.
type GetProductsRes struct {
	Products         []ProductInfo
	NotFoundProducts []int64
}

// ProductInfo — DTO с информацией о продукте для внешнего использования.
type ProductInfo struct {
	ID           int64
	Name         string
	CategoryName string
	Price        int64
}

// CART USECASE

// CartView — представление корзины для внешнего использования.
type CartView struct {
	Items      []domain.CartItem
	TotalItems int
	TotalPrice int64
}

// Операции корзины, передаваемые подписчикам.
const (
	CartOpAdd    = "add"
	CartOpUpdate = "update"
	CartOpRemove = "remove"
	CartOpClear  = "clear"
)

// CartEvent — синхронное уведомление об изменении корзины.
type CartEvent struct {
	Owner string
	Op    string
	Cart  *CartView
}

// CartSubscriber вызывается синхронно после каждой мутации корзины,
// до возврата управления вызывающему.
type CartSubscriber func(event CartEvent)

// ORDER USECASE

type CheckoutReq struct {
	ProfileID int64
	Owner     string // ключ корзины
	AddressID int64
	Notes     string
}

// ListOrdersReq — фильтры списка заказов. ProfileID == nil допустим только для админа.
type ListOrdersReq struct {
	ProfileID *int64
	Status    *domain.OrderStatus
	Limit     int
	Offset    int
}

type UpdateOrderStatusReq struct {
	OrderNumber string
	Status      string
}

// ADDRESS USECASE

type CreateAddressReq struct {
	ProfileID  int64
	Label      string
	Recipient  string
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
	IsDefault  bool
}

// UpdateAddressReq — частичное обновление адреса. nil-поля не меняются.
type UpdateAddressReq struct {
	ProfileID  int64
	AddressID  int64
	Label      *string
	Recipient  *string
	Line1      *string
	Line2      *string
	City       *string
	Region     *string
	PostalCode *string
	Country    *string
}

// STATS USECASE

// DashboardRes — агрегированная статистика для админ-панели.
type DashboardRes struct {
	Products       int64
	Orders         int64
	Customers      int64
	Revenue        int64 // сумма по заказам без cancelled, в копейках
	OrdersByStatus map[domain.OrderStatus]int64
}

// INFRASTRUCTURE

type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderCreated       OutboxEventType = "order.created"
	OrderStatusChanged OutboxEventType = "order.status_changed"
)

// OutboxEvent — запись таблицы outbox_events, доставляемая в Kafka воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderEventPayload — JSON-содержимое событий заказов в Kafka.
type OrderEventPayload struct {
	EventID     string `json:"event_id"`
	EventType   string `json:"event_type"`
	OrderID     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
	ProfileID   int64  `json:"profile_id"`
	Status      string `json:"status"`
	TotalPrice  int64  `json:"total_price"`
	Timestamp   int64  `json:"ts"`
}

// MAPPERS

func NewSignUpReq(email, password, fullName string) *SignUpReq {
	return &SignUpReq{
		Email:    email,
		Password: password,
		FullName: fullName,
	}
}

func NewSignInReq(email, password string) *SignInReq {
	return &SignInReq{
		Email:    email,
		Password: password,
	}
}

func NewAuthRes(profile *domain.Profile, token string) *AuthRes {
	return &AuthRes{
		Profile: profile,
		Token:   token,
	}
}

func NewIdentity(profileID int64, role domain.Role, sessionID string) *Identity {
	return &Identity{
		ProfileID: profileID,
		Role:      role,
		SessionID: sessionID,
	}
}

func NewCartView(cart *domain.Cart) *CartView {
	return &CartView{
		Items:      cart.Items(),
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewProductInfo(id int64, name string, category string, price int64) ProductInfo {
	return ProductInfo{
		ID:           id,
		Name:         name,
		CategoryName: category,
		Price:        price,
	}
}

func NewGetProductsReq(ids []int64) *GetProductsReq {
	return &GetProductsReq{ids}
}

func NewGetProductsRes(pr []ProductInfo, notFoundProducts []int64) *GetProductsRes {
	return &GetProductsRes{
		Products:         pr,
		NotFoundProducts: notFoundProducts,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}
