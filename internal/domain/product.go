package domain

import "time"

// Product описывает продукт каталога.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Price        int64  // Цена хранится в копейках
	ComparePrice *int64 // цена до скидки; nil, если скидки нет
	CategoryID   int64
	ImageKeys    []string // ключи объектов в MinIO
	Inventory    int
	SKU          string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewProduct(name, description string, price int64, categoryID int64, inventory int, sku string) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
		Inventory:   inventory,
		SKU:         sku,
		IsActive:    true,
	}
}

// Snapshot возвращает срез продукта для корзины: первая картинка и текущая цена.
func (p *Product) Snapshot() ProductSnapshot {
	var imageKey string
	if len(p.ImageKeys) > 0 {
		imageKey = p.ImageKeys[0]
	}

	return ProductSnapshot{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageKey: imageKey,
	}
}
