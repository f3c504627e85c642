//go:generate goverter gen github.com/lavka-tech/storefront-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductInfoConverter interface {
	ToRedisModel(entity *usecase.ProductInfo) *ProductInfoRedisModel
	ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo
	ToArrRedisModel(entities []usecase.ProductInfo) []ProductInfoRedisModel
	ToArrUseCase(models []ProductInfoRedisModel) []usecase.ProductInfo
}

// CartConverter преобразует позиции корзины между domain и снапшотом в Redis.
// goverter:converter
type CartConverter interface {
	ToArrRedisModel(items []domain.CartItem) []CartItemRedisModel
	ToArrDomain(models []CartItemRedisModel) []domain.CartItem
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}
