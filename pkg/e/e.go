package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest        = fmt.Errorf("bad request")
	ErrExpectedMultipart       = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields           = fmt.Errorf("required fields are missing")
	ErrProductNameRequired     = fmt.Errorf("product name is required")
	ErrInvalidPrice            = fmt.Errorf("invalid price")
	ErrPricePrecision          = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQuantity         = fmt.Errorf("quantity must be positive")
	ErrNoImages                = fmt.Errorf("no images provided")
	ErrTooManyImages           = fmt.Errorf("too many images")
	ErrFileTooLarge            = fmt.Errorf("file too large")
	ErrUnsupportedMediaType    = fmt.Errorf("unsupported media type")
	ErrInvalidEmail            = fmt.Errorf("invalid email")
	ErrPasswordTooShort        = fmt.Errorf("password must be at least 8 characters")
	ErrUnknownOrderStatus      = fmt.Errorf("unknown order status")
	ErrInvalidStatusTransition = fmt.Errorf("invalid order status transition")
	ErrCartEmpty               = fmt.Errorf("cart is empty")

	// 401 Unauthorized
	// Структурированный вид ошибки аутентификации: обработчики сверяются
	// через errors.Is, а не по подстроке текста сообщения.
	ErrInvalidCredentials = fmt.Errorf("invalid login credentials")
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrSessionRevoked     = fmt.Errorf("session revoked")

	// 403 Forbidden
	ErrForbidden = fmt.Errorf("forbidden")

	// 404 Not Found
	ErrProfileNotFound  = fmt.Errorf("profile not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrAddressNotFound  = fmt.Errorf("address not found")
	ErrOrderNotFound    = fmt.Errorf("order not found")

	// 409 Conflict: нарушения уникальности, распознаются по коду ошибки PostgreSQL
	ErrEmailTaken = fmt.Errorf("email already registered")
	ErrSlugTaken  = fmt.Errorf("slug already exists")
	ErrSKUTaken   = fmt.Errorf("sku already exists")

	// 422 Unprocessable Entity
	ErrInsufficientStock = fmt.Errorf("insufficient stock")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
