package service

import (
	"context"
	"errors"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/cache"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/repository"
	"go.uber.org/zap"
)

var ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")

type CatalogService interface {
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
}

type catalog struct {
	products repository.ProductRepository
	cache    cache.ProductCache
	logger   *zap.Logger
}

func NewCatalogService(products repository.ProductRepository, productCache cache.ProductCache,
	logger *zap.Logger) CatalogService {
	return &catalog{products: products, cache: productCache, logger: logger}
}

// GetProduct is a read-through lookup. Cache failures fall back to the
// database; they never fail the request.
func (c *catalog) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	cached, err := c.cache.Get(ctx, id)
	if err != nil {
		c.logger.Warn("Product cache read failed, falling back to database",
			zap.Int64("productID", id),
			zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	product, err := c.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}

		return nil, ErrDatabase
	}

	if err := c.cache.Set(ctx, product); err != nil {
		c.logger.Warn("Product cache write failed",
			zap.Int64("productID", id),
			zap.Error(err))
	}

	return product, nil
}
