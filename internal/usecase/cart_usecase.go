package usecase

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

// Количество стрип-блокировок по владельцам корзин.
const cartLockStripes = 64

// CartUseCase реализует хранилище корзины с контрактом персистентности:
// каждая мутация синхронно сохраняет полный снапшот позиций и синхронно
// уведомляет подписчиков до возврата управления. Мутации одного владельца
// сериализуются стрип-блокировкой, поэтому два быстрых вызова применяются
// в порядке поступления, каждый полностью (включая запись и уведомление).
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	logger      logger.Logger

	stripes [cartLockStripes]sync.Mutex

	subMu       sync.RWMutex
	subscribers []CartSubscriber
}

func NewCartUC(cartRepo CartRepository, productRepo ProductRepository, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Subscribe регистрирует подписчика изменений корзины.
// Подписчики вызываются синхронно после каждой мутации.
func (c *CartUseCase) Subscribe(fn CartSubscriber) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// GetCart возвращает текущее состояние корзины владельца.
// Отсутствующий или повреждённый снапшот даёт пустую корзину, а не ошибку.
func (c *CartUseCase) GetCart(ctx context.Context, owner string) (*CartView, error) {
	return NewCartView(c.loadCart(ctx, owner)), nil
}

// AddItem добавляет продукт в корзину, фиксируя снапшот его текущей цены.
// Остаток на складе здесь не проверяется: проверка выполняется при оформлении заказа.
func (c *CartUseCase) AddItem(ctx context.Context, owner string, productID int64, quantity int) (*CartView, error) {
	const op = "CartUseCase.AddItem"

	if quantity < 1 {
		quantity = 1
	}

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !product.IsActive {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	unlock := c.lockOwner(owner)
	defer unlock()

	cart := c.loadCart(ctx, owner)
	cart.AddItem(product.Snapshot(), quantity)

	if err := c.cartRepo.Save(ctx, owner, cart.Items()); err != nil {
		return nil, e.Wrap(op, err)
	}

	view := NewCartView(cart)
	c.notify(CartEvent{Owner: owner, Op: CartOpAdd, Cart: view})

	return view, nil
}

// UpdateQuantity выставляет количество позиции; количество <= 0 удаляет позицию.
// Отсутствующий productID — no-op.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, owner string, productID int64, quantity int) (*CartView, error) {
	const op = "CartUseCase.UpdateQuantity"

	unlock := c.lockOwner(owner)
	defer unlock()

	cart := c.loadCart(ctx, owner)
	cart.UpdateQuantity(productID, quantity)

	if err := c.cartRepo.Save(ctx, owner, cart.Items()); err != nil {
		return nil, e.Wrap(op, err)
	}

	view := NewCartView(cart)
	c.notify(CartEvent{Owner: owner, Op: CartOpUpdate, Cart: view})

	return view, nil
}

// RemoveItem удаляет позицию, если она есть. Отсутствующий productID — no-op.
func (c *CartUseCase) RemoveItem(ctx context.Context, owner string, productID int64) (*CartView, error) {
	const op = "CartUseCase.RemoveItem"

	unlock := c.lockOwner(owner)
	defer unlock()

	cart := c.loadCart(ctx, owner)
	cart.RemoveItem(productID)

	if err := c.cartRepo.Save(ctx, owner, cart.Items()); err != nil {
		return nil, e.Wrap(op, err)
	}

	view := NewCartView(cart)
	c.notify(CartEvent{Owner: owner, Op: CartOpRemove, Cart: view})

	return view, nil
}

// ClearCart опустошает корзину и её снапшот. Вызывается после успешного оформления заказа.
func (c *CartUseCase) ClearCart(ctx context.Context, owner string) (*CartView, error) {
	const op = "CartUseCase.ClearCart"

	unlock := c.lockOwner(owner)
	defer unlock()

	if err := c.cartRepo.Delete(ctx, owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	view := NewCartView(domain.NewCart())
	c.notify(CartEvent{Owner: owner, Op: CartOpClear, Cart: view})

	return view, nil
}

// loadCart читает снапшот корзины. Чтение отказоустойчиво: отсутствующий
// или повреждённый снапшот даёт пустую корзину с предупреждением в логе.
func (c *CartUseCase) loadCart(ctx context.Context, owner string) *domain.Cart {
	items, err := c.cartRepo.Get(ctx, owner)
	if err != nil {
		c.logger.Warnf("Cart snapshot unreadable, starting with empty cart. owner: %s, error: %v", owner, err)
		return domain.NewCart()
	}

	return domain.NewCartFromItems(items)
}

func (c *CartUseCase) notify(event CartEvent) {
	c.subMu.RLock()
	subscribers := make([]CartSubscriber, len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.subMu.RUnlock()

	for _, fn := range subscribers {
		fn(event)
	}
}

func (c *CartUseCase) lockOwner(owner string) func() {
	h := fnv.New32a()
	h.Write([]byte(owner))
	mu := &c.stripes[h.Sum32()%cartLockStripes]
	mu.Lock()
	return mu.Unlock
}
