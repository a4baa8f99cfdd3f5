package mocks

import (
	"context"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/service"
	"github.com/stretchr/testify/mock"
)

type CheckoutService struct {
	mock.Mock
}

func (c *CheckoutService) CreateTransaction(ctx context.Context, cmd service.CreateTransactionCommand) (service.TransactionView, error) {
	args := c.Called(ctx, cmd)
	return args.Get(0).(service.TransactionView), args.Error(1)
}

func (c *CheckoutService) SyncTransactionStatus(ctx context.Context, transactionID int64) (service.TransactionView, error) {
	args := c.Called(ctx, transactionID)
	return args.Get(0).(service.TransactionView), args.Error(1)
}

func (c *CheckoutService) GetTransaction(ctx context.Context, transactionID int64) (service.TransactionView, error) {
	args := c.Called(ctx, transactionID)
	return args.Get(0).(service.TransactionView), args.Error(1)
}
