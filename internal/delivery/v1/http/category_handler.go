package http

import (
	"net/http"
	"strconv"

	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

type CategoryHandler struct {
	categoryUC usecase.CategoryUC
	logger     logger.Logger
}

func NewCategoryHandler(categoryUC usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC, logger: logger}
}

// listCategories
//
//	@Summary	Список категорий
//	@Tags		catalog
//	@Produce	json
//	@Param		all	query	bool	false	"Включать архивные (только для админа имеет смысл)"
//	@Success	200	{array}	CategoryResponse
//	@Router		/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"
	if identityFrom(r.Context()) == nil {
		activeOnly = true
	}

	categories, err := c.categoryUC.ListCategories(r.Context(), activeOnly)
	if err != nil {
		c.logger.Errorf(err, "Failed to list categories")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponses(categories))
}

// createCategory
//
//	@Summary	Создание категории
//	@Tags		admin
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Success	201	{object}	CategoryResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/admin/categories [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	if err := ensureMultipartForm(r, 16<<20); err != nil {
		WriteError(w, err)
		return
	}

	req := &usecase.CreateCategoryReq{
		Name:        r.FormValue("name"),
		Slug:        r.FormValue("slug"),
		Description: r.FormValue("description"),
	}

	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		images, err := parseImages(files[:1])
		if err != nil {
			WriteError(w, err)
			return
		}
		req.Image = &images[0]
	}

	category, err := c.categoryUC.CreateCategory(r.Context(), req)
	if err != nil {
		c.logger.Warnf("Category creation failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(category))
}

// updateCategory
//
//	@Summary	Частичное обновление категории
//	@Tags		admin
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id	path		int	true	"ID категории"
//	@Success	200	{object}	CategoryResponse
//	@Router		/admin/categories/{id} [patch]
func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := ensureMultipartForm(r, 16<<20); err != nil {
		WriteError(w, err)
		return
	}

	req := &usecase.UpdateCategoryReq{ID: id}
	if v := r.FormValue("name"); v != "" {
		req.Name = &v
	}
	if v := r.FormValue("slug"); v != "" {
		req.Slug = &v
	}
	if r.Form.Has("description") {
		v := r.FormValue("description")
		req.Description = &v
	}
	if v := r.FormValue("is_active"); v != "" {
		active, parseErr := strconv.ParseBool(v)
		if parseErr != nil {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		req.IsActive = &active
	}

	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		images, parseErr := parseImages(files[:1])
		if parseErr != nil {
			WriteError(w, parseErr)
			return
		}
		req.Image = &images[0]
	}

	category, err := c.categoryUC.UpdateCategory(r.Context(), req)
	if err != nil {
		c.logger.Warnf("Category update failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// archiveCategory
//
//	@Summary	Архивация категории
//	@Tags		admin
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID категории"
//	@Success	204
//	@Router		/admin/categories/{id} [delete]
func (c *CategoryHandler) archiveCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.categoryUC.ArchiveCategory(r.Context(), id); err != nil {
		c.logger.Warnf("Category archive failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}
