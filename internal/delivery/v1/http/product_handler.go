package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary	Публичный список товаров
//	@Tags		catalog
//	@Produce	json
//	@Param		category_id	query	int		false	"Фильтр по категории"
//	@Param		sort		query	string	false	"newest | price_asc | price_desc"
//	@Param		limit		query	int		false	"Размер страницы (по умолчанию 20, максимум 100)"
//	@Param		offset		query	int		false	"Смещение"
//	@Success	200			{array}	ProductResponse
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req := &usecase.ListProductsReq{
		ActiveOnly: true,
		Sort:       r.URL.Query().Get("sort"),
		Limit:      20,
	}

	identity := identityFrom(r.Context())
	if identity != nil && r.URL.Query().Get("all") == "true" {
		req.ActiveOnly = false
	}

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || categoryID <= 0 {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		req.CategoryID = &categoryID
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		req.Limit = min(limit, 100)
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		req.Offset = offset
	}

	products, err := p.productUsecase.ListProducts(r.Context(), req)
	if err != nil {
		p.logger.Errorf(err, "Failed to list products")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	if !product.IsActive && identityFrom(r.Context()) == nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// getProductsInfo
//
//	@Summary	Краткие данные товаров по списку ID
//	@Tags		catalog
//	@Produce	json
//	@Param		ids	query		string	true	"ID через запятую: 1,2,3"
//	@Success	200	{object}	map[string]interface{}
//	@Router		/products/info [get]
func (p *ProductHandler) getProductsInfo(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("ids"))
	if raw == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		ids = append(ids, id)
	}

	res, err := p.productUsecase.GetProductsInfo(r.Context(), usecase.NewGetProductsReq(ids))
	if err != nil {
		p.logger.Errorf(err, "Failed to get products info")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products":  res.Products,
		"not_found": res.NotFoundProducts,
	})
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создаёт товар в каталоге с изображениями
//	@Tags			admin
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название товара"
//	@Param			category_id	formData	int		true	"ID категории"
//	@Param			price		formData	number	true	"Цена в рублях, до двух знаков"
//	@Param			sku			formData	string	true	"Артикул"
//	@Param			inventory	formData	int		true	"Остаток"
//	@Param			images		formData	file	true	"Изображения товара"
//	@Success		201			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/admin/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	req, err := parseCreateProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	req.Images, err = parseImages(r.MultipartForm.File["images"])
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("Product creation failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary	Частичное обновление товара
//	@Tags		admin
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Router		/admin/products/{id} [patch]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		WriteError(w, err)
		return
	}

	req, err := parseUpdateProductForm(r, id)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if files := r.MultipartForm.File["images"]; len(files) > 0 {
		req.Images, err = parseImages(files)
		if err != nil {
			WriteError(w, err)
			return
		}
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("Product update failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// archiveProduct
//
//	@Summary	Архивация товара
//	@Tags		admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID товара"
//	@Success	204
//	@Router		/admin/products/{id} [delete]
func (p *ProductHandler) archiveProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.ArchiveProduct(r.Context(), id); err != nil {
		p.logger.Warnf("Product archive failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

func parseCreateProductForm(r *http.Request) (*usecase.CreateProductReq, error) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		return nil, e.ErrProductNameRequired
	}

	price, err := parsePriceToCents(r.FormValue("price"))
	if err != nil {
		return nil, err
	}

	categoryID, err := strconv.ParseInt(r.FormValue("category_id"), 10, 64)
	if err != nil || categoryID <= 0 {
		return nil, e.ErrMissingFields
	}

	sku := strings.TrimSpace(r.FormValue("sku"))
	if sku == "" {
		return nil, e.ErrMissingFields
	}

	req := &usecase.CreateProductReq{
		Name:        name,
		Description: r.FormValue("description"),
		Price:       price,
		CategoryID:  categoryID,
		SKU:         sku,
	}

	if raw := r.FormValue("inventory"); raw != "" {
		inventory, parseErr := strconv.Atoi(raw)
		if parseErr != nil || inventory < 0 {
			return nil, e.ErrInvalidQuantity
		}
		req.Inventory = inventory
	}
	if raw := r.FormValue("compare_price"); raw != "" {
		comparePrice, parseErr := parsePriceToCents(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		req.ComparePrice = &comparePrice
	}

	return req, nil
}

func parseUpdateProductForm(r *http.Request, id int64) (*usecase.UpdateProductReq, error) {
	req := &usecase.UpdateProductReq{ID: id}

	if v := strings.TrimSpace(r.FormValue("name")); v != "" {
		req.Name = &v
	}
	if r.Form.Has("description") {
		v := r.FormValue("description")
		req.Description = &v
	}
	if raw := r.FormValue("price"); raw != "" {
		price, err := parsePriceToCents(raw)
		if err != nil {
			return nil, err
		}
		req.Price = &price
	}
	if raw := r.FormValue("compare_price"); raw != "" {
		comparePrice, err := parsePriceToCents(raw)
		if err != nil {
			return nil, err
		}
		req.ComparePrice = &comparePrice
	}
	if raw := r.FormValue("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || categoryID <= 0 {
			return nil, e.ErrStatusBadRequest
		}
		req.CategoryID = &categoryID
	}
	if raw := r.FormValue("inventory"); raw != "" {
		inventory, err := strconv.Atoi(raw)
		if err != nil || inventory < 0 {
			return nil, e.ErrInvalidQuantity
		}
		req.Inventory = &inventory
	}
	if raw := r.FormValue("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, e.ErrStatusBadRequest
		}
		req.IsActive = &active
	}

	if req.Name == nil && req.Description == nil && req.Price == nil && req.ComparePrice == nil &&
		req.CategoryID == nil && req.Inventory == nil && req.IsActive == nil && len(r.MultipartForm.File["images"]) == 0 {
		return nil, e.ErrMissingFields
	}

	return req, nil
}
