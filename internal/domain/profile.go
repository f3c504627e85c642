package domain

import "time"

// Role определяет роль профиля. Роль — только данные:
// ограничение доступа выполняется на уровне delivery.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Profile описывает профиль пользователя магазина.
type Profile struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	AvatarURL    string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewProfile(email, passwordHash, fullName string) *Profile {
	return &Profile{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         RoleCustomer,
	}
}
