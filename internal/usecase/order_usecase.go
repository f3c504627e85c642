package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

// OrderUseCase реализует оформление и жизненный цикл заказов.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	addressRepo AddressRepository
	outboxRepo  OutboxRepository
	cartUC      CartUC
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	addressRepo AddressRepository,
	outboxRepo OutboxRepository,
	cartUC CartUC,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		outboxRepo:  outboxRepo,
		cartUC:      cartUC,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// Checkout оформляет заказ из корзины владельца.
// В одной транзакции: проверка и списание остатков, вставка заказа с позициями
// по ценам из снапшота корзины, запись outbox-события. Корзина очищается
// только после успешного коммита.
func (o *OrderUseCase) Checkout(ctx context.Context, req *CheckoutReq) (*domain.Order, error) {
	const op = "OrderUseCase.Checkout"

	view, err := o.cartUC.GetCart(ctx, req.Owner)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(view.Items) == 0 {
		return nil, e.Wrap(op, e.ErrCartEmpty)
	}

	address, err := o.addressRepo.GetByID(ctx, req.AddressID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if address.ProfileID != req.ProfileID {
		return nil, e.Wrap(op, e.ErrAddressNotFound)
	}

	cart := domain.NewCartFromItems(view.Items)
	order := domain.NewOrderFromCart(req.ProfileID, generateOrderNumber(), cart, toShippingAddress(address), strings.TrimSpace(req.Notes))

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Списание остатков: недостаток по любой позиции откатывает заказ целиком
	for _, item := range order.Items {
		if err = o.productRepo.DecrementInventory(ctx, item.ProductID, item.Quantity); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	created, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.appendOrderEvent(ctx, created, OrderCreated); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Очистка корзины после успешного оформления
	if _, clearErr := o.cartUC.ClearCart(ctx, req.Owner); clearErr != nil {
		o.logger.Warnf("Failed to clear cart after checkout. owner: %s, order: %s, error: %v",
			req.Owner, created.OrderNumber, clearErr)
	}

	return created, nil
}

// ListOrders возвращает заказы по фильтру.
// Ограничение по владельцу выставляет delivery-слой через req.ProfileID.
func (o *OrderUseCase) ListOrders(ctx context.Context, req *ListOrdersReq) ([]domain.Order, error) {
	const (
		op           = "OrderUseCase.ListOrders"
		defaultLimit = 20
		maxLimit     = 100
	)

	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	if req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	orders, err := o.orderRepo.List(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// GetOrder возвращает заказ по номеру. Чужой заказ для не-админа неотличим от отсутствующего.
func (o *OrderUseCase) GetOrder(ctx context.Context, requester *Identity, orderNumber string) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if requester.Role != domain.RoleAdmin && order.ProfileID != requester.ProfileID {
		return nil, e.Wrap(op, e.ErrOrderNotFound)
	}

	return order, nil
}

// UpdateOrderStatus меняет статус заказа и пишет outbox-событие в той же транзакции.
// Проверяется только принадлежность статуса набору.
func (o *OrderUseCase) UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusReq) (*domain.Order, error) {
	const op = "OrderUseCase.UpdateOrderStatus"

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := o.orderRepo.UpdateStatus(ctx, req.OrderNumber, status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.appendOrderEvent(ctx, updated, OrderStatusChanged); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// appendOrderEvent сериализует событие заказа и кладёт его в outbox.
func (o *OrderUseCase) appendOrderEvent(ctx context.Context, order *domain.Order, eventType OutboxEventType) error {
	eventID := uuid.NewString()
	payload, err := json.Marshal(&OrderEventPayload{
		EventID:     eventID,
		EventType:   string(eventType),
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		ProfileID:   order.ProfileID,
		Status:      string(order.Status),
		TotalPrice:  order.TotalPrice,
		Timestamp:   time.Now().UnixNano(),
	})
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(eventID, eventType, order.ID, payload))
	return err
}

// generateOrderNumber возвращает уникальный серверный номер заказа.
func generateOrderNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:12])
}

// toShippingAddress делает снапшот адреса для встраивания в заказ.
func toShippingAddress(address *domain.Address) domain.ShippingAddress {
	return domain.ShippingAddress{
		Recipient:  address.Recipient,
		Line1:      address.Line1,
		Line2:      address.Line2,
		City:       address.City,
		Region:     address.Region,
		PostalCode: address.PostalCode,
		Country:    address.Country,
	}
}
