package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAddressRepo — in-memory реализация AddressRepository.
type fakeAddressRepo struct {
	byID   map[int64]*domain.Address
	nextID int64
}

func newFakeAddressRepo(addresses ...*domain.Address) *fakeAddressRepo {
	repo := &fakeAddressRepo{byID: make(map[int64]*domain.Address)}
	for _, a := range addresses {
		repo.byID[a.ID] = a
		if a.ID > repo.nextID {
			repo.nextID = a.ID
		}
	}
	return repo
}

func (f *fakeAddressRepo) Create(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	f.nextID++
	address.ID = f.nextID
	f.byID[address.ID] = address
	return address, nil
}

func (f *fakeAddressRepo) Update(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	f.byID[address.ID] = address
	return address, nil
}

func (f *fakeAddressRepo) Delete(ctx context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeAddressRepo) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	address, ok := f.byID[id]
	if !ok {
		return nil, e.ErrAddressNotFound
	}
	return address, nil
}

func (f *fakeAddressRepo) ListByProfile(ctx context.Context, profileID int64) ([]domain.Address, error) {
	var out []domain.Address
	for _, a := range f.byID {
		if a.ProfileID == profileID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAddressRepo) SetDefault(ctx context.Context, profileID, addressID int64) error {
	for _, a := range f.byID {
		if a.ProfileID == profileID {
			a.IsDefault = a.ID == addressID
		}
	}
	return nil
}

func testAddress(id, profileID int64) *domain.Address {
	return &domain.Address{
		ID:         id,
		ProfileID:  profileID,
		Recipient:  "Test User",
		Line1:      "Tverskaya 1",
		City:       "Moscow",
		PostalCode: "125009",
		Country:    "RU",
	}
}

func newOrderForTest(cartUC CartUC, addressRepo AddressRepository) *OrderUseCase {
	return NewOrderUC(nil, nil, addressRepo, nil, cartUC, nil, nopLogger{})
}

// Оформление пустой корзины отклоняется до открытия транзакции.
func TestOrderUC_CheckoutEmptyCart(t *testing.T) {
	cartUC := NewCartUC(newFakeCartRepo(), newFakeProductRepo(), nopLogger{})
	uc := newOrderForTest(cartUC, newFakeAddressRepo(testAddress(1, 7)))

	_, err := uc.Checkout(context.Background(), &CheckoutReq{ProfileID: 7, Owner: "profile:7", AddressID: 1})
	assert.ErrorIs(t, err, e.ErrCartEmpty)
}

// Чужой адрес доставки неотличим от отсутствующего.
func TestOrderUC_CheckoutForeignAddress(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(testProduct(1, "espresso", 250_00))
	cartUC := NewCartUC(cartRepo, productRepo, nopLogger{})

	_, err := cartUC.AddItem(context.Background(), "profile:7", 1, 1)
	require.NoError(t, err)

	uc := newOrderForTest(cartUC, newFakeAddressRepo(testAddress(1, 999)))

	_, err = uc.Checkout(context.Background(), &CheckoutReq{ProfileID: 7, Owner: "profile:7", AddressID: 1})
	assert.ErrorIs(t, err, e.ErrAddressNotFound)
}

func TestOrderUC_UpdateStatusUnknown(t *testing.T) {
	uc := newOrderForTest(nil, nil)

	_, err := uc.UpdateOrderStatus(context.Background(), &UpdateOrderStatusReq{
		OrderNumber: "ORD-ABC123",
		Status:      "teleported",
	})
	assert.ErrorIs(t, err, e.ErrUnknownOrderStatus)
}

func TestGenerateOrderNumber(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		number := generateOrderNumber()
		assert.True(t, strings.HasPrefix(number, "ORD-"))
		assert.Len(t, number, 16)
		assert.Equal(t, strings.ToUpper(number), number)

		_, dup := seen[number]
		assert.False(t, dup)
		seen[number] = struct{}{}
	}
}
