package usecase

import (
	"context"
	"strings"

	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

// CategoryUseCase реализует управление категориями каталога.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	imagesInfra  ImagesInfra
	logger       logger.Logger
}

func NewCategoryUC(categoryRepo CategoryRepository, imagesInfra ImagesInfra, logger logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		imagesInfra:  imagesInfra,
		logger:       logger,
	}
}

// CreateCategory создаёт категорию. Дубликат slug возвращается
// структурированной ошибкой e.ErrSlugTaken (код 23505 в PostgreSQL).
func (c *CategoryUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.CreateCategory"

	name := strings.TrimSpace(req.Name)
	slug := normalizeSlug(req.Slug)
	if name == "" || slug == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	category := domain.NewCategory(name, slug, strings.TrimSpace(req.Description))

	var uploadedKeys []string
	if req.Image != nil {
		imagesRes, err := c.imagesInfra.UploadImages(ctx, NewUploadImagesReq(slug, []ProductImage{*req.Image}))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploadedKeys = imagesRes.ImagesKeys
		category.ImageKey = uploadedKeys[0]
	}

	created, err := c.categoryRepo.Create(ctx, category)
	if err != nil {
		if len(uploadedKeys) > 0 {
			c.logger.Warnf("Cleaning up orphaned category image after insert failure. slug: %s", slug)
			c.imagesInfra.CleanupImages(uploadedKeys)
		}
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// UpdateCategory применяет частичное обновление категории. nil-поля не меняются.
func (c *CategoryUseCase) UpdateCategory(ctx context.Context, req *UpdateCategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.UpdateCategory"

	category, err := c.categoryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		category.Slug = normalizeSlug(*req.Slug)
	}
	if req.Description != nil {
		category.Description = strings.TrimSpace(*req.Description)
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	oldImageKey := ""
	if req.Image != nil {
		imagesRes, err := c.imagesInfra.UploadImages(ctx, NewUploadImagesReq(category.Slug, []ProductImage{*req.Image}))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		oldImageKey = category.ImageKey
		category.ImageKey = imagesRes.ImagesKeys[0]
	}

	updated, err := c.categoryRepo.Update(ctx, category)
	if err != nil {
		if req.Image != nil {
			c.imagesInfra.CleanupImages([]string{category.ImageKey})
		}
		return nil, e.Wrap(op, err)
	}

	if oldImageKey != "" {
		c.imagesInfra.CleanupImages([]string{oldImageKey})
	}

	return updated, nil
}

// ArchiveCategory скрывает категорию с витрины, не удаляя запись.
func (c *CategoryUseCase) ArchiveCategory(ctx context.Context, id int64) error {
	const op = "CategoryUseCase.ArchiveCategory"

	if err := c.categoryRepo.Archive(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// ListCategories возвращает категории; для витрины — только активные.
func (c *CategoryUseCase) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	const op = "CategoryUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
