package mocks

import (
	"context"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type ProductCache struct {
	mock.Mock
}

func (p *ProductCache) Get(ctx context.Context, id int64) (*model.Product, error) {
	args := p.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (p *ProductCache) Set(ctx context.Context, product *model.Product) error {
	args := p.Called(ctx, product)
	return args.Error(0)
}

func (p *ProductCache) Invalidate(ctx context.Context, id int64) error {
	args := p.Called(ctx, id)
	return args.Error(0)
}
