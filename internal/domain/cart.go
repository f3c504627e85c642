package domain

// ProductSnapshot — срез данных продукта, зафиксированный в момент добавления в корзину.
// Цена берётся из снапшота и не перечитывается до оформления заказа.
type ProductSnapshot struct {
	ID       int64
	Name     string
	Price    int64 // Цена хранится в копейках
	ImageKey string
}

// CartItem — одна позиция корзины: снапшот продукта и количество.
type CartItem struct {
	Product  ProductSnapshot
	Quantity int
}

// Cart — упорядоченный набор позиций корзины.
// Ключ уникальности — ID продукта: повторное добавление увеличивает количество.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// NewCartFromItems восстанавливает корзину из сохранённого снапшота.
// Позиции с неположительным количеством и дубликаты схлопываются.
func NewCartFromItems(items []CartItem) *Cart {
	cart := NewCart()
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		cart.AddItem(item.Product, item.Quantity)
	}

	return cart
}

// AddItem добавляет продукт в корзину. Если позиция уже есть, количество суммируется.
// Количество меньше единицы трактуется как единица.
// Остаток на складе на этом уровне не проверяется: проверка выполняется при оформлении заказа.
func (c *Cart) AddItem(product ProductSnapshot, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += quantity
			return
		}
	}

	c.items = append(c.items, CartItem{Product: product, Quantity: quantity})
}

// UpdateQuantity выставляет количество позиции. Количество <= 0 удаляет позицию.
// Отсутствующий productID — no-op.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem удаляет позицию, если она есть. Отсутствующий productID — no-op.
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear опустошает корзину. Вызывается после успешного оформления заказа.
func (c *Cart) Clear() {
	c.items = nil
}

// Items возвращает копию позиций в порядке добавления.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalItems возвращает суммарное количество единиц по всем позициям.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}

	return total
}

// TotalPrice возвращает сумму price*quantity по всем позициям в копейках.
// Используется цена из снапшота на момент добавления.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Product.Price * int64(item.Quantity)
	}

	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
