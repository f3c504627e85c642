package http

import (
	"net/http"

	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

type CartHandler struct {
	cartUC usecase.CartUC
	logger logger.Logger
}

func NewCartHandler(cartUC usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUC: cartUC, logger: logger}
}

// getCart
//
//	@Summary	Текущая корзина
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := c.cartUC.GetCart(r.Context(), cartOwnerFrom(r.Context()))
	if err != nil {
		c.logger.Errorf(err, "Failed to load cart")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view))
}

// addItem
//
//	@Summary	Добавление товара в корзину
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/cart/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID int64 `json:"product_id"`
		Quantity  int   `json:"quantity"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}
	if body.ProductID <= 0 {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	view, err := c.cartUC.AddItem(r.Context(), cartOwnerFrom(r.Context()), body.ProductID, body.Quantity)
	if err != nil {
		c.logger.Warnf("Cart add failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view))
}

// updateItem
//
//	@Summary	Изменение количества позиции. Количество 0 удаляет позицию.
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		productID	path		int	true	"ID товара"
//	@Success	200			{object}	CartResponse
//	@Router		/cart/items/{productID} [patch]
func (c *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUC.UpdateQuantity(r.Context(), cartOwnerFrom(r.Context()), productID, body.Quantity)
	if err != nil {
		c.logger.Warnf("Cart update failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view))
}

// removeItem
//
//	@Summary	Удаление позиции из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		productID	path		int	true	"ID товара"
//	@Success	200			{object}	CartResponse
//	@Router		/cart/items/{productID} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUC.RemoveItem(r.Context(), cartOwnerFrom(r.Context()), productID)
	if err != nil {
		c.logger.Warnf("Cart remove failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view))
}

// clearCart
//
//	@Summary	Полная очистка корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	view, err := c.cartUC.ClearCart(r.Context(), cartOwnerFrom(r.Context()))
	if err != nil {
		c.logger.Warnf("Cart clear failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view))
}
