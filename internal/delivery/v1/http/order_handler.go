package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

type OrderHandler struct {
	orderUC usecase.OrderUC
	logger  logger.Logger
}

func NewOrderHandler(orderUC usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, logger: logger}
}

// checkout
//
//	@Summary		Оформление заказа из текущей корзины
//	@Description	Списывает остатки, очищает корзину и пишет событие в outbox одной транзакцией
//	@Tags			orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	OrderResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/orders [post]
func (o *OrderHandler) checkout(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	var body struct {
		AddressID int64  `json:"address_id"`
		Notes     string `json:"notes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}
	if body.AddressID <= 0 {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	order, err := o.orderUC.Checkout(r.Context(), &usecase.CheckoutReq{
		ProfileID: identity.ProfileID,
		Owner:     cartOwnerFrom(r.Context()),
		AddressID: body.AddressID,
		Notes:     body.Notes,
	})
	if err != nil {
		o.logger.Warnf("Checkout failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	o.logger.Infof("Order %s placed by profile %d", order.OrderNumber, identity.ProfileID)
	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// listOrders
//
//	@Summary	Заказы текущего пользователя
//	@Tags		orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query	string	false	"Фильтр по статусу"
//	@Param		limit	query	int		false	"Размер страницы"
//	@Param		offset	query	int		false	"Смещение"
//	@Success	200		{array}	OrderResponse
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	req, err := parseListOrdersQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	req.ProfileID = &identity.ProfileID

	orders, err := o.orderUC.ListOrders(r.Context(), req)
	if err != nil {
		o.logger.Errorf(err, "Failed to list orders")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponses(orders))
}

// getOrder
//
//	@Summary	Заказ по номеру. Чужой заказ доступен только админу.
//	@Tags		orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		number	path		string	true	"Номер заказа"
//	@Success	200		{object}	OrderResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/orders/{number} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	number := chi.URLParam(r, "number")
	if number == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	order, err := o.orderUC.GetOrder(r.Context(), identity, number)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// adminListOrders
//
//	@Summary	Все заказы магазина
//	@Tags		admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query	string	false	"Фильтр по статусу"
//	@Param		limit	query	int		false	"Размер страницы"
//	@Param		offset	query	int		false	"Смещение"
//	@Success	200		{array}	OrderResponse
//	@Router		/admin/orders [get]
func (o *OrderHandler) adminListOrders(w http.ResponseWriter, r *http.Request) {
	req, err := parseListOrdersQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	orders, err := o.orderUC.ListOrders(r.Context(), req)
	if err != nil {
		o.logger.Errorf(err, "Failed to list orders")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponses(orders))
}

// updateOrderStatus
//
//	@Summary	Смена статуса заказа
//	@Tags		admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		number	path		string	true	"Номер заказа"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/admin/orders/{number}/status [patch]
func (o *OrderHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if number == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUC.UpdateOrderStatus(r.Context(), &usecase.UpdateOrderStatusReq{
		OrderNumber: number,
		Status:      body.Status,
	})
	if err != nil {
		o.logger.Warnf("Order status update failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	o.logger.Infof("Order %s moved to status %s", order.OrderNumber, order.Status)
	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

func parseListOrdersQuery(r *http.Request) (*usecase.ListOrdersReq, error) {
	req := &usecase.ListOrdersReq{Limit: 20}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.ParseOrderStatus(raw)
		if err != nil {
			return nil, err
		}
		req.Status = &status
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return nil, e.ErrStatusBadRequest
		}
		req.Limit = min(limit, 100)
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return nil, e.ErrStatusBadRequest
		}
		req.Offset = offset
	}

	return req, nil
}
