package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopLogger — заглушка логгера для тестов.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeCartRepo — in-memory реализация CartRepository.
type fakeCartRepo struct {
	snapshots map[string][]domain.CartItem
	getErr    error
	saveErr   error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{snapshots: make(map[string][]domain.CartItem)}
}

func (f *fakeCartRepo) Get(ctx context.Context, owner string) ([]domain.CartItem, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.snapshots[owner], nil
}

func (f *fakeCartRepo) Save(ctx context.Context, owner string, items []domain.CartItem) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.snapshots[owner] = items
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, owner string) error {
	delete(f.snapshots, owner)
	return nil
}

// fakeProductRepo — in-memory реализация ProductRepository.
type fakeProductRepo struct {
	products map[int64]*domain.Product
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[int64]*domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProductRepo) Archive(ctx context.Context, id int64) error { return nil }

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) List(ctx context.Context, filter *ListProductsReq) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error) {
	return nil, nil
}

func (f *fakeProductRepo) DecrementInventory(ctx context.Context, productID int64, quantity int) error {
	p, ok := f.products[productID]
	if !ok {
		return e.ErrProductNotFound
	}
	if p.Inventory < quantity {
		return e.ErrInsufficientStock
	}
	p.Inventory -= quantity
	return nil
}

func testProduct(id int64, name string, price int64) *domain.Product {
	return &domain.Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Inventory: 100,
		IsActive:  true,
	}
}

func TestCartUC_AddItemPersistsAndNotifies(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(testProduct(1, "espresso", 250_00))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})

	var events []CartEvent
	uc.Subscribe(func(event CartEvent) {
		events = append(events, event)
	})

	view, err := uc.AddItem(context.Background(), "guest:abc", 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, int64(500_00), view.TotalPrice)

	// Снапшот записан синхронно
	require.Len(t, cartRepo.snapshots["guest:abc"], 1)
	assert.Equal(t, 2, cartRepo.snapshots["guest:abc"][0].Quantity)

	// Подписчик уведомлён синхронно, до возврата управления
	require.Len(t, events, 1)
	assert.Equal(t, CartOpAdd, events[0].Op)
	assert.Equal(t, "guest:abc", events[0].Owner)
}

func TestCartUC_AddItemUnknownProduct(t *testing.T) {
	uc := NewCartUC(newFakeCartRepo(), newFakeProductRepo(), nopLogger{})

	_, err := uc.AddItem(context.Background(), "guest:abc", 42, 1)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCartUC_AddItemInactiveProduct(t *testing.T) {
	archived := testProduct(5, "old kettle", 900_00)
	archived.IsActive = false
	uc := NewCartUC(newFakeCartRepo(), newFakeProductRepo(archived), nopLogger{})

	_, err := uc.AddItem(context.Background(), "guest:abc", 5, 1)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCartUC_MergesSameProduct(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(testProduct(1, "espresso", 250_00))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "o", 1, 2)
	require.NoError(t, err)
	view, err := uc.AddItem(ctx, "o", 1, 3)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestCartUC_UpdateQuantityZeroRemoves(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(testProduct(1, "espresso", 250_00))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "o", 1, 2)
	require.NoError(t, err)

	view, err := uc.UpdateQuantity(ctx, "o", 1, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, view.TotalItems)
	assert.Empty(t, cartRepo.snapshots["o"])
}

func TestCartUC_RemoveUnknownIsNoop(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(testProduct(1, "espresso", 250_00))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "o", 1, 2)
	require.NoError(t, err)

	view, err := uc.RemoveItem(ctx, "o", 99)
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalItems)
}

func TestCartUC_ClearEmptiesSnapshot(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(testProduct(1, "espresso", 250_00))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "o", 1, 2)
	require.NoError(t, err)

	view, err := uc.ClearCart(ctx, "o")
	require.NoError(t, err)

	assert.Equal(t, 0, view.TotalItems)
	assert.Empty(t, cartRepo.snapshots["o"])

	got, err := uc.GetCart(ctx, "o")
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalItems)
	assert.Equal(t, int64(0), got.TotalPrice)
}

// Повреждённый снапшот даёт пустую корзину, а не ошибку.
func TestCartUC_CorruptSnapshotFailsOpen(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.getErr = fmt.Errorf("unmarshal cart snapshot: invalid character 'x'")
	uc := NewCartUC(cartRepo, newFakeProductRepo(), nopLogger{})

	view, err := uc.GetCart(context.Background(), "o")
	require.NoError(t, err)
	assert.Equal(t, 0, view.TotalItems)
}

// Ошибка записи снапшота не меняет сохранённое состояние.
func TestCartUC_SaveErrorLeavesSnapshotUnchanged(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(testProduct(1, "espresso", 250_00))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "o", 1, 2)
	require.NoError(t, err)

	cartRepo.saveErr = fmt.Errorf("redis: connection refused")
	_, err = uc.AddItem(ctx, "o", 1, 3)
	require.Error(t, err)

	cartRepo.saveErr = nil
	view, err := uc.GetCart(ctx, "o")
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalItems)
}

// Сериализация и восстановление: новое хранилище поверх того же снапшота даёт равную корзину.
func TestCartUC_SnapshotRoundTrip(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(
		testProduct(1, "espresso", 250_00),
		testProduct(2, "filter", 180_00),
	)
	ctx := context.Background()

	first := NewCartUC(cartRepo, productRepo, nopLogger{})
	_, err := first.AddItem(ctx, "o", 1, 2)
	require.NoError(t, err)
	original, err := first.AddItem(ctx, "o", 2, 3)
	require.NoError(t, err)

	second := NewCartUC(cartRepo, productRepo, nopLogger{})
	restored, err := second.GetCart(ctx, "o")
	require.NoError(t, err)

	assert.Equal(t, original.Items, restored.Items)
	assert.Equal(t, original.TotalItems, restored.TotalItems)
	assert.Equal(t, original.TotalPrice, restored.TotalPrice)
}
