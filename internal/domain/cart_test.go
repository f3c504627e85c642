package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(id int64, name string, price int64) ProductSnapshot {
	return ProductSnapshot{ID: id, Name: name, Price: price}
}

func TestCart_AddItem_DistinctProducts(t *testing.T) {
	cart := NewCart()

	cart.AddItem(snapshot(1, "espresso", 250_00), 2)
	cart.AddItem(snapshot(2, "filter", 180_00), 3)
	cart.AddItem(snapshot(3, "raf", 320_00), 1)

	assert.Equal(t, 6, cart.TotalItems())
	assert.Equal(t, int64(2*250_00+3*180_00+1*320_00), cart.TotalPrice())
	assert.Len(t, cart.Items(), 3)
}

func TestCart_AddItem_SameProductMergesQuantity(t *testing.T) {
	cart := NewCart()
	p := snapshot(7, "grinder", 4500_00)

	cart.AddItem(p, 2)
	cart.AddItem(p, 3)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestCart_AddItem_NonPositiveQuantityBecomesOne(t *testing.T) {
	cart := NewCart()

	cart.AddItem(snapshot(1, "mug", 500_00), 0)
	cart.AddItem(snapshot(2, "spoon", 100_00), -4)

	assert.Equal(t, 2, cart.TotalItems())
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(snapshot(1, "kettle", 2000_00), 1)

	cart.UpdateQuantity(1, 4)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestCart_UpdateQuantity_ZeroRemovesItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(snapshot(1, "kettle", 2000_00), 2)
	cart.AddItem(snapshot(2, "scale", 1500_00), 1)

	cart.UpdateQuantity(1, 0)

	assert.Equal(t, 1, cart.TotalItems())
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, int64(2), cart.Items()[0].Product.ID)
}

func TestCart_UpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(snapshot(1, "kettle", 2000_00), 2)

	cart.UpdateQuantity(99, 5)

	assert.Equal(t, 2, cart.TotalItems())
}

func TestCart_RemoveItem_UnknownProductIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(snapshot(1, "kettle", 2000_00), 2)

	assert.NotPanics(t, func() {
		cart.RemoveItem(42)
	})
	assert.Equal(t, 2, cart.TotalItems())
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(snapshot(1, "kettle", 2000_00), 2)
	cart.AddItem(snapshot(2, "scale", 1500_00), 3)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, int64(0), cart.TotalPrice())
	assert.Empty(t, cart.Items())
}

func TestNewCartFromItems_RestoresCart(t *testing.T) {
	original := NewCart()
	original.AddItem(snapshot(1, "espresso", 250_00), 2)
	original.AddItem(snapshot(2, "filter", 180_00), 3)

	restored := NewCartFromItems(original.Items())

	assert.Equal(t, original.Items(), restored.Items())
	assert.Equal(t, original.TotalItems(), restored.TotalItems())
	assert.Equal(t, original.TotalPrice(), restored.TotalPrice())
}

func TestNewCartFromItems_CollapsesDuplicatesAndDropsInvalid(t *testing.T) {
	items := []CartItem{
		{Product: snapshot(1, "espresso", 250_00), Quantity: 2},
		{Product: snapshot(1, "espresso", 250_00), Quantity: 3},
		{Product: snapshot(2, "filter", 180_00), Quantity: 0},
	}

	cart := NewCartFromItems(items)

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 5, cart.Items()[0].Quantity)
}

// Сквозной сценарий: пустая корзина -> A(10, x1) -> B(5, x3) -> итоги -> очистка.
func TestCart_EndToEndScenario(t *testing.T) {
	cart := NewCart()
	require.True(t, cart.IsEmpty())

	cart.AddItem(snapshot(1, "product-a", 10), 1)
	cart.AddItem(snapshot(2, "product-b", 5), 3)

	assert.Equal(t, int64(25), cart.TotalPrice())
	assert.Equal(t, 4, cart.TotalItems())

	cart.Clear()

	assert.Equal(t, int64(0), cart.TotalPrice())
	assert.Equal(t, 0, cart.TotalItems())
}

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		status, err := ParseOrderStatus(s)
		require.NoError(t, err)
		assert.Equal(t, OrderStatus(s), status)
	}

	_, err := ParseOrderStatus("refunded")
	assert.Error(t, err)
}

func TestNewOrderFromCart(t *testing.T) {
	cart := NewCart()
	cart.AddItem(snapshot(1, "espresso", 250_00), 2)
	cart.AddItem(snapshot(2, "filter", 180_00), 1)

	order := NewOrderFromCart(10, "ORD-123", cart, ShippingAddress{City: "Москва"}, "позвонить заранее")

	require.Len(t, order.Items, 2)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, cart.TotalPrice(), order.TotalPrice)
	assert.Equal(t, int64(250_00), order.Items[0].UnitPrice)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "espresso", order.Items[0].ProductName)
}
