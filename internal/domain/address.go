package domain

import "time"

// Address описывает адрес доставки пользователя.
// Инвариант "не более одного адреса по умолчанию" обеспечивается
// транзакцией в репозитории, а не этим типом.
type Address struct {
	ID         int64
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
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func NewAddress(profileID int64, label, recipient, line1, line2, city, region, postalCode, country string) *Address {
	return &Address{
		ProfileID:  profileID,
		Label:      label,
		Recipient:  recipient,
		Line1:      line1,
		Line2:      line2,
		City:       city,
		Region:     region,
		PostalCode: postalCode,
		Country:    country,
	}
}
