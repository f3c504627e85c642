package converter

import (
	"time"

	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/internal/domain"
)

// ProfileModel представляет запись таблицы profiles в PostgreSQL.
type ProfileModel struct {
	ID           int64       `db:"id"`
	Email        string      `db:"email"`
	PasswordHash string      `db:"password_hash"`
	FullName     string      `db:"full_name"`
	AvatarURL    string      `db:"avatar_url"`
	Role         domain.Role `db:"role"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    *time.Time  `db:"updated_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Slug        string     `db:"slug"`
	Description string     `db:"description"`
	ImageKey    string     `db:"image_key"`
	IsActive    bool       `db:"is_active"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	Description  string     `db:"description"`
	Price        int64      `db:"price"`
	ComparePrice *int64     `db:"compare_price"`
	CategoryID   int64      `db:"category_id"`
	ImageKeys    []string   `db:"image_keys"`
	Inventory    int        `db:"inventory"`
	SKU          string     `db:"sku"`
	IsActive     bool       `db:"is_active"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// AddressModel представляет запись таблицы addresses в PostgreSQL.
type AddressModel struct {
	ID         int64      `db:"id"`
	ProfileID  int64      `db:"profile_id"`
	Label      string     `db:"label"`
	Recipient  string     `db:"recipient"`
	Line1      string     `db:"line1"`
	Line2      string     `db:"line2"`
	City       string     `db:"city"`
	Region     string     `db:"region"`
	PostalCode string     `db:"postal_code"`
	Country    string     `db:"country"`
	IsDefault  bool       `db:"is_default"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                  `db:"id"`
	EventID     string                 `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	OrderID     int64                  `db:"order_id"`
	Payload     []byte                 `db:"payload"`
	Status      usecase.OutboxStatus   `db:"status"`
	CreatedAt   time.Time              `db:"created_at"`
	ProcessedAt *time.Time             `db:"processed_at"`
}
