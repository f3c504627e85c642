package http

import (
	"time"

	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/internal/usecase"
)

// JSON-представления доменных сущностей для ответов API.
// Цены отдаются в копейках, как и хранятся.

type ProfileResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token   string           `json:"token"`
	Profile *ProfileResponse `json:"profile"`
}

type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageKey    string `json:"image_key,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type ProductResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        int64    `json:"price"`
	ComparePrice *int64   `json:"compare_price,omitempty"`
	CategoryID   int64    `json:"category_id"`
	ImageKeys    []string `json:"image_keys,omitempty"`
	Inventory    int      `json:"inventory"`
	SKU          string   `json:"sku"`
	IsActive     bool     `json:"is_active"`
}

type CartItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageKey  string `json:"image_key,omitempty"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice int64              `json:"total_price"`
}

type AddressResponse struct {
	ID         int64  `json:"id"`
	Label      string `json:"label,omitempty"`
	Recipient  string `json:"recipient"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"is_default"`
}

type OrderItemResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

type OrderResponse struct {
	OrderNumber string              `json:"order_number"`
	Status      string              `json:"status"`
	TotalPrice  int64               `json:"total_price"`
	Shipping    AddressResponse     `json:"shipping"`
	Notes       string              `json:"notes,omitempty"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
}

type DashboardResponse struct {
	Products       int64            `json:"products"`
	Orders         int64            `json:"orders"`
	Customers      int64            `json:"customers"`
	Revenue        int64            `json:"revenue"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
}

func toProfileResponse(profile *domain.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
		Role:      string(profile.Role),
		CreatedAt: profile.CreatedAt,
	}
}

func toAuthResponse(res *usecase.AuthRes) *AuthResponse {
	return &AuthResponse{
		Token:   res.Token,
		Profile: toProfileResponse(res.Profile),
	}
}

func toCategoryResponse(category *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		ImageKey:    category.ImageKey,
		IsActive:    category.IsActive,
	}
}

func toCategoryResponses(categories []domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, *toCategoryResponse(&categories[i]))
	}
	return result
}

func toProductResponse(product *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		ComparePrice: product.ComparePrice,
		CategoryID:   product.CategoryID,
		ImageKeys:    product.ImageKeys,
		Inventory:    product.Inventory,
		SKU:          product.SKU,
		IsActive:     product.IsActive,
	}
}

func toProductResponses(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *toProductResponse(&products[i]))
	}
	return result
}

func toCartResponse(view *usecase.CartView) *CartResponse {
	items := make([]CartItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, CartItemResponse{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			ImageKey:  item.Product.ImageKey,
			Quantity:  item.Quantity,
			Subtotal:  item.Product.Price * int64(item.Quantity),
		})
	}

	return &CartResponse{
		Items:      items,
		TotalItems: view.TotalItems,
		TotalPrice: view.TotalPrice,
	}
}

func toAddressResponse(address *domain.Address) *AddressResponse {
	return &AddressResponse{
		ID:         address.ID,
		Label:      address.Label,
		Recipient:  address.Recipient,
		Line1:      address.Line1,
		Line2:      address.Line2,
		City:       address.City,
		Region:     address.Region,
		PostalCode: address.PostalCode,
		Country:    address.Country,
		IsDefault:  address.IsDefault,
	}
}

func toAddressResponses(addresses []domain.Address) []AddressResponse {
	result := make([]AddressResponse, 0, len(addresses))
	for i := range addresses {
		result = append(result, *toAddressResponse(&addresses[i]))
	}
	return result
}

func toOrderResponse(order *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return &OrderResponse{
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		TotalPrice:  order.TotalPrice,
		Shipping: AddressResponse{
			Recipient:  order.Shipping.Recipient,
			Line1:      order.Shipping.Line1,
			Line2:      order.Shipping.Line2,
			City:       order.Shipping.City,
			Region:     order.Shipping.Region,
			PostalCode: order.Shipping.PostalCode,
			Country:    order.Shipping.Country,
		},
		Notes:     order.Notes,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}

func toOrderResponses(orders []domain.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, *toOrderResponse(&orders[i]))
	}
	return result
}

func toDashboardResponse(res *usecase.DashboardRes) *DashboardResponse {
	byStatus := make(map[string]int64, len(res.OrdersByStatus))
	for status, count := range res.OrdersByStatus {
		byStatus[string(status)] = count
	}

	return &DashboardResponse{
		Products:       res.Products,
		Orders:         res.Orders,
		Customers:      res.Customers,
		Revenue:        res.Revenue,
		OrdersByStatus: byStatus,
	}
}
