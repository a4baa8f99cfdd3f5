package mocks

import (
	"context"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type CustomerRepository struct {
	mock.Mock
}

func (c *CustomerRepository) UpsertByEmail(ctx context.Context, customer *model.Customer) error {
	args := c.Called(ctx, customer)
	return args.Error(0)
}

func (c *CustomerRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	args := c.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}
