package mocks

import (
	"context"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (c *CatalogService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	args := c.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}
