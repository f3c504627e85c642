package http

import (
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFormRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.MultipartForm = &multipart.Form{File: map[string][]*multipart.FileHeader{}}
	return req
}

// Нулевая цена допустима: подарочные позиции.
func TestParseCreateProductForm_ZeroPrice(t *testing.T) {
	req, err := parseCreateProductForm(newProductFormRequest(url.Values{
		"name":        {"Gift card"},
		"price":       {"0"},
		"category_id": {"1"},
		"sku":         {"GIFT-0"},
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(0), req.Price)
}

func TestParseCreateProductForm_NegativePrice(t *testing.T) {
	_, err := parseCreateProductForm(newProductFormRequest(url.Values{
		"name":        {"Broken"},
		"price":       {"-10"},
		"category_id": {"1"},
		"sku":         {"NEG-1"},
	}))
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
}

func TestParseUpdateProductForm_ZeroPrice(t *testing.T) {
	req, err := parseUpdateProductForm(newProductFormRequest(url.Values{
		"price": {"0"},
	}), 5)
	require.NoError(t, err)
	require.NotNil(t, req.Price)
	assert.Equal(t, int64(0), *req.Price)
}
