package domain

import (
	"time"

	"github.com/lavka-tech/storefront-backend/pkg/e"
)

// OrderStatus — статус заказа из фиксированного набора.
// Переходы между статусами не ограничиваются, проверяется только принадлежность набору.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus проверяет строку на принадлежность набору статусов.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", e.ErrUnknownOrderStatus
	}
}

// ShippingAddress — снапшот адреса доставки, встроенный в заказ.
// Изменение адреса в профиле не затрагивает уже оформленные заказы.
type ShippingAddress struct {
	Recipient  string
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
}

// Order описывает заказ.
type Order struct {
	ID          int64
	ProfileID   int64
	OrderNumber string // серверный, уникальный
	Status      OrderStatus
	TotalPrice  int64 // Сумма хранится в копейках
	Shipping    ShippingAddress
	Notes       string
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// OrderItem — позиция заказа с ценой на момент оформления.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   int64 // цена за единицу на момент заказа, в копейках
}

func NewOrder(profileID int64, orderNumber string, shipping ShippingAddress, notes string) *Order {
	return &Order{
		ProfileID:   profileID,
		OrderNumber: orderNumber,
		Status:      OrderStatusPending,
		Shipping:    shipping,
		Notes:       notes,
	}
}

// NewOrderFromCart формирует заказ из позиций корзины: количество и цена
// каждой позиции переносятся из снапшота корзины.
func NewOrderFromCart(profileID int64, orderNumber string, cart *Cart, shipping ShippingAddress, notes string) *Order {
	order := NewOrder(profileID, orderNumber, shipping, notes)
	for _, item := range cart.Items() {
		order.Items = append(order.Items, OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Product.Price,
		})
	}
	order.TotalPrice = cart.TotalPrice()

	return order
}
