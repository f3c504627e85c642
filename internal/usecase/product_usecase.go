package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

// ProductUseCase реализует бизнес-логику управления продуктами каталога.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	imagesInfra  ImagesInfra
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imagesInfra:  imagesInfra,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// CreateProduct создаёт продукт с изображениями.
// При ошибке вставки загруженные изображения подчищаются.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	if err := p.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Категория должна существовать
	if _, err := p.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Description),
		req.Price,
		req.CategoryID,
		req.Inventory,
		strings.TrimSpace(req.SKU),
	)
	product.ComparePrice = req.ComparePrice

	var uploadedKeys []string
	if len(req.Images) > 0 {
		imagesRes, err := p.imagesInfra.UploadImages(ctx, NewUploadImagesReq(product.SKU, req.Images))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploadedKeys = imagesRes.ImagesKeys
		product.ImageKeys = uploadedKeys
	}

	created, err := p.productRepo.Create(ctx, product)
	if err != nil {
		if len(uploadedKeys) > 0 {
			p.logger.Warnf("Cleaning up orphaned images after insert failure. sku: %s, error: %v", product.SKU, err)
			p.imagesInfra.CleanupImages(uploadedKeys)
		}
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// UpdateProduct применяет частичное обновление продукта; nil-поля не меняются.
// Непустой список изображений замещает прежние, старые объекты подчищаются.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	product, err := p.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, e.Wrap(op, e.ErrInvalidPrice)
		}
		product.Price = *req.Price
	}
	if req.ComparePrice != nil {
		product.ComparePrice = req.ComparePrice
	}
	if req.CategoryID != nil {
		if _, err := p.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, e.Wrap(op, err)
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Inventory != nil {
		product.Inventory = *req.Inventory
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	oldImageKeys := []string(nil)
	if len(req.Images) > 0 {
		imagesRes, err := p.imagesInfra.UploadImages(ctx, NewUploadImagesReq(product.SKU, req.Images))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		oldImageKeys = product.ImageKeys
		product.ImageKeys = imagesRes.ImagesKeys
	}

	updated, err := p.productRepo.Update(ctx, product)
	if err != nil {
		if len(req.Images) > 0 {
			p.imagesInfra.CleanupImages(product.ImageKeys)
		}
		return nil, e.Wrap(op, err)
	}

	if len(oldImageKeys) > 0 {
		p.imagesInfra.CleanupImages(oldImageKeys)
	}

	// Удаление из кэша старых данных товара
	if err := p.cacheRepo.DeleteProducts(ctx, []int64{updated.ID}); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return updated, nil
}

// ArchiveProduct скрывает продукт с витрины, не удаляя запись.
func (p *ProductUseCase) ArchiveProduct(ctx context.Context, id int64) error {
	const op = "ProductUseCase.ArchiveProduct"

	if err := p.productRepo.Archive(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return nil
}

// GetProduct возвращает продукт по идентификатору.
func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.GetProduct"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// ListProducts возвращает продукты по фильтру витрины.
func (p *ProductUseCase) ListProducts(ctx context.Context, req *ListProductsReq) ([]domain.Product, error) {
	const (
		op           = "ProductUseCase.ListProducts"
		defaultLimit = 24
		maxLimit     = 100
	)

	switch req.Sort {
	case SortNewest, SortPriceAsc, SortPriceDesc:
	case "":
		req.Sort = SortNewest
	default:
		return nil, e.Wrap(op, e.ErrStatusBadRequest)
	}

	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	if req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	products, err := p.productRepo.List(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProductsInfo возвращает информацию о продуктах по их идентификаторам,
// сквозь кэш: промахи дочитываются из БД и фоном докладываются в кэш.
func (p *ProductUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "ProductUseCase.GetProductsInfo"

	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	// Поиск продуктов в кэше
	cacheProductsMap, err := p.cacheRepo.GetProducts(ctx, req.IDs)
	var nonCacheable []int64
	if err != nil {
		nonCacheable = append(nonCacheable, req.IDs...)
	} else {
		for _, productID := range req.IDs {
			if _, ok := cacheProductsMap[productID]; !ok {
				nonCacheable = append(nonCacheable, productID)
			}
		}
	}

	// Получение продуктов из БД
	var productsInfoFromDB []ProductInfo
	if len(nonCacheable) > 0 {
		productsInfoFromDB, err = p.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление продуктов в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := p.cacheRepo.SetProducts(bgCtx, productsInfoFromDB); err != nil {
				p.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbProductsMap := make(map[int64]ProductInfo, len(productsInfoFromDB))
	for _, productInfo := range productsInfoFromDB {
		dbProductsMap[productInfo.ID] = productInfo
	}

	// Формирование результата
	result := make([]ProductInfo, 0, len(req.IDs))
	notFoundProducts := make([]int64, 0)
	for _, id := range req.IDs {
		if pr, ok := cacheProductsMap[id]; ok {
			result = append(result, pr)
		} else if pr, ok := dbProductsMap[id]; ok {
			result = append(result, pr)
		} else {
			notFoundProducts = append(notFoundProducts, id)
		}
	}

	return NewGetProductsRes(result, notFoundProducts), nil
}

// validateProduct проверяет корректность входных данных запроса на добавление продукта.
func (p *ProductUseCase) validateProduct(req *CreateProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	// Цена продукта неотрицательна; ноль допустим (подарочные позиции)
	if req.Price < 0 {
		return e.ErrInvalidPrice
	}

	if strings.TrimSpace(req.SKU) == "" {
		return e.ErrMissingFields
	}

	if req.Inventory < 0 {
		return e.ErrStatusBadRequest
	}

	return nil
}
