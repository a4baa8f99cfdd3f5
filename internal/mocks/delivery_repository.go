package mocks

import (
	"context"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/stretchr/testify/mock"
)

type DeliveryRepository struct {
	mock.Mock
}

func (d *DeliveryRepository) Create(ctx context.Context, delivery *model.Delivery) error {
	args := d.Called(ctx, delivery)
	return args.Error(0)
}

func (d *DeliveryRepository) FindByTransactionID(ctx context.Context, transactionID int64) (*model.Delivery, error) {
	args := d.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Delivery), args.Error(1)
}
