package domain

import "time"

// Category описывает категорию каталога.
type Category struct {
	ID          int64
	Name        string
	Slug        string // уникальный, используется в URL витрины
	Description string
	ImageKey    string // ключ объекта в MinIO
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewCategory(name, slug, description string) *Category {
	return &Category{
		Name:        name,
		Slug:        slug,
		Description: description,
		IsActive:    true,
	}
}
