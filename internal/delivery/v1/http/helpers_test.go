package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{"599.99", 59999, false},
		{"600", 60000, false},
		{"0.01", 1, false},
		{"0", 0, false},
		{"", 0, true},
		{"  ", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"1.999", 0, true},
		{"2000000000", 0, true},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("input=%q", tc.input), func(t *testing.T) {
			cents, err := parsePriceToCents(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cents)
		})
	}
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrStatusBadRequest, http.StatusBadRequest},
		{e.ErrCartEmpty, http.StatusBadRequest},
		{e.ErrUnknownOrderStatus, http.StatusBadRequest},
		{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{e.ErrInvalidCredentials, http.StatusUnauthorized},
		{e.ErrSessionRevoked, http.StatusUnauthorized},
		{e.ErrForbidden, http.StatusForbidden},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrOrderNotFound, http.StatusNotFound},
		{e.ErrEmailTaken, http.StatusConflict},
		{e.ErrSKUTaken, http.StatusConflict},
		{e.ErrInsufficientStock, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			code, msg := ToHTTPResponse(tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.err.Error(), msg)
		})
	}
}

func TestToHTTPResponseWrapped(t *testing.T) {
	code, msg := ToHTTPResponse(e.Wrap("OrderUseCase.Checkout", e.ErrInsufficientStock))
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, e.ErrInsufficientStock.Error(), msg)
}

func TestToHTTPResponseUnknownError(t *testing.T) {
	code, msg := ToHTTPResponse(fmt.Errorf("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}
