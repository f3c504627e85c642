package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse отображает структурированные ошибки в HTTP-статусы.
// Неизвестные ошибки сводятся к 500 без утечки внутренних деталей.
func ToHTTPResponse(err error) (int, string) {
	for _, known := range []struct {
		sentinel error
		code     int
	}{
		{e.ErrStatusBadRequest, http.StatusBadRequest},
		{e.ErrExpectedMultipart, http.StatusBadRequest},
		{e.ErrMissingFields, http.StatusBadRequest},
		{e.ErrProductNameRequired, http.StatusBadRequest},
		{e.ErrInvalidPrice, http.StatusBadRequest},
		{e.ErrPricePrecision, http.StatusBadRequest},
		{e.ErrInvalidQuantity, http.StatusBadRequest},
		{e.ErrNoImages, http.StatusBadRequest},
		{e.ErrTooManyImages, http.StatusBadRequest},
		{e.ErrFileTooLarge, http.StatusBadRequest},
		{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{e.ErrInvalidEmail, http.StatusBadRequest},
		{e.ErrPasswordTooShort, http.StatusBadRequest},
		{e.ErrUnknownOrderStatus, http.StatusBadRequest},
		{e.ErrInvalidStatusTransition, http.StatusBadRequest},
		{e.ErrCartEmpty, http.StatusBadRequest},
		{e.ErrInvalidCredentials, http.StatusUnauthorized},
		{e.ErrUnauthorized, http.StatusUnauthorized},
		{e.ErrSessionRevoked, http.StatusUnauthorized},
		{e.ErrForbidden, http.StatusForbidden},
		{e.ErrProfileNotFound, http.StatusNotFound},
		{e.ErrCategoryNotFound, http.StatusNotFound},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrAddressNotFound, http.StatusNotFound},
		{e.ErrOrderNotFound, http.StatusNotFound},
		{e.ErrEmailTaken, http.StatusConflict},
		{e.ErrSlugTaken, http.StatusConflict},
		{e.ErrSKUTaken, http.StatusConflict},
		{e.ErrInsufficientStock, http.StatusUnprocessableEntity},
	} {
		if errors.Is(err, known.sentinel) {
			return known.code, known.sentinel.Error()
		}
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// decodeJSON читает JSON-тело запроса в dst, отклоняя неизвестные поля.
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}

	return nil
}

// parseIDParam читает числовой URL-параметр chi.
func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}

	return id, nil
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (e.g. 10^9 rubles)
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	// Reject negative
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	// Enforce max value (e.g. 1 billion rubles = 100_000_000_000 cents)
	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100)) // 1B rub in cents
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision // "price must have at most 2 decimal places"
	}

	// Convert to cents: multiply by 100 and round
	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	// Safely convert to int64
	centsInt := cents.IntPart()
	if centsInt < 0 {
		return 0, e.ErrInvalidPrice
	}

	return centsInt, nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

func parseImages(files []*multipart.FileHeader) ([]usecase.ProductImage, error) {
	const (
		maxImageCount = 10
		maxFileSize   = 15 << 20
	)

	if len(files) == 0 {
		return nil, e.ErrNoImages
	}
	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.ProductImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		images = append(images, *usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename))
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
