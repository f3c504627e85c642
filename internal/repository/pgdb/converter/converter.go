//go:generate goverter gen github.com/lavka-tech/storefront-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/internal/usecase"
)

// ProfileConverter преобразует сущности Profile между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertRole
type ProfileConverter interface {
	ToModel(entity *domain.Profile) *ProfileModel
	ToEntity(model *ProfileModel) *domain.Profile
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
	ToArrEntity(models []*CategoryModel) []*domain.Category
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// AddressConverter преобразует сущности Address между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type AddressConverter interface {
	ToModel(entity *domain.Address) *AddressModel
	ToEntity(model *AddressModel) *domain.Address
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertRole(r domain.Role) domain.Role {
	return r
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

func ConvertOutboxEventType(t usecase.OutboxEventType) usecase.OutboxEventType {
	return t
}
