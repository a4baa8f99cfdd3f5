package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/mocks"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/repository"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalogService(t *testing.T) (service.CatalogService, *mocks.ProductRepository, *mocks.ProductCache) {
	t.Helper()

	products := new(mocks.ProductRepository)
	productCache := new(mocks.ProductCache)
	svc := service.NewCatalogService(products, productCache, zap.NewNop())

	return svc, products, productCache
}

func TestCatalog_GetProduct(t *testing.T) {
	ctx := context.Background()
	product := &model.Product{ID: 1, Name: "Keyboard", PriceInCents: 5000, Stock: 10}

	t.Run("cache hit skips the database", func(t *testing.T) {
		svc, products, productCache := newCatalogService(t)

		productCache.On("Get", ctx, int64(1)).Return(product, nil)

		found, err := svc.GetProduct(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, product, found)
		products.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss reads through and backfills", func(t *testing.T) {
		svc, products, productCache := newCatalogService(t)

		productCache.On("Get", ctx, int64(1)).Return(nil, nil)
		products.On("FindByID", ctx, int64(1)).Return(product, nil)
		productCache.On("Set", ctx, product).Return(nil)

		found, err := svc.GetProduct(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, product, found)
		productCache.AssertCalled(t, "Set", ctx, product)
	})

	t.Run("cache failure falls back to the database", func(t *testing.T) {
		svc, products, productCache := newCatalogService(t)

		productCache.On("Get", ctx, int64(1)).Return(nil, errors.New("redis down"))
		products.On("FindByID", ctx, int64(1)).Return(product, nil)
		productCache.On("Set", ctx, product).Return(errors.New("redis down"))

		found, err := svc.GetProduct(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, product, found)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, products, productCache := newCatalogService(t)

		productCache.On("Get", ctx, int64(1)).Return(nil, nil)
		products.On("FindByID", ctx, int64(1)).Return(nil, repository.ErrProductNotFound)

		_, err := svc.GetProduct(ctx, 1)

		assert.ErrorIs(t, err, service.ErrProductNotFound)
		productCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})
}
