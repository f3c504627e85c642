package usecase

import (
	"context"
	"testing"

	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressUC_CreateRequiresFields(t *testing.T) {
	uc := NewAddressUC(newFakeAddressRepo(), nopLogger{})

	_, err := uc.CreateAddress(context.Background(), &CreateAddressReq{
		ProfileID: 7,
		Recipient: "Test User",
		City:      "Moscow",
	})
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestAddressUC_CreateDefault(t *testing.T) {
	repo := newFakeAddressRepo(testAddress(1, 7))
	repo.byID[1].IsDefault = true
	uc := NewAddressUC(repo, nopLogger{})

	created, err := uc.CreateAddress(context.Background(), &CreateAddressReq{
		ProfileID:  7,
		Recipient:  "Test User",
		Line1:      "Arbat 10",
		City:       "Moscow",
		PostalCode: "119002",
		Country:    "RU",
		IsDefault:  true,
	})
	require.NoError(t, err)

	// Флаг по умолчанию перешёл на новый адрес, у прежнего снят
	assert.True(t, created.IsDefault)
	assert.False(t, repo.byID[1].IsDefault)
}

// Чужой адрес неотличим от отсутствующего.
func TestAddressUC_OwnershipHidesForeign(t *testing.T) {
	repo := newFakeAddressRepo(testAddress(1, 999))
	uc := NewAddressUC(repo, nopLogger{})
	ctx := context.Background()

	err := uc.DeleteAddress(ctx, 7, 1)
	assert.ErrorIs(t, err, e.ErrAddressNotFound)

	err = uc.SetDefaultAddress(ctx, 7, 1)
	assert.ErrorIs(t, err, e.ErrAddressNotFound)

	label := "work"
	_, err = uc.UpdateAddress(ctx, &UpdateAddressReq{ProfileID: 7, AddressID: 1, Label: &label})
	assert.ErrorIs(t, err, e.ErrAddressNotFound)

	// Адрес на месте
	_, ok := repo.byID[1]
	assert.True(t, ok)
}

func TestAddressUC_UpdatePartial(t *testing.T) {
	repo := newFakeAddressRepo(testAddress(1, 7))
	uc := NewAddressUC(repo, nopLogger{})

	label := "home"
	city := "Kazan"
	updated, err := uc.UpdateAddress(context.Background(), &UpdateAddressReq{
		ProfileID: 7,
		AddressID: 1,
		Label:     &label,
		City:      &city,
	})
	require.NoError(t, err)

	assert.Equal(t, "home", updated.Label)
	assert.Equal(t, "Kazan", updated.City)
	assert.Equal(t, "Tverskaya 1", updated.Line1)
}

func TestAddressUC_SetDefaultMovesFlag(t *testing.T) {
	first := testAddress(1, 7)
	first.IsDefault = true
	second := testAddress(2, 7)
	repo := newFakeAddressRepo(first, second)
	uc := NewAddressUC(repo, nopLogger{})

	require.NoError(t, uc.SetDefaultAddress(context.Background(), 7, 2))

	assert.False(t, repo.byID[1].IsDefault)
	assert.True(t, repo.byID[2].IsDefault)
}
