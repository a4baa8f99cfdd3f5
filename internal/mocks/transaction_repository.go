package mocks

import (
	"context"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/repository"
	"github.com/stretchr/testify/mock"
)

type TransactionRepository struct {
	mock.Mock
}

func (t *TransactionRepository) Create(ctx context.Context, transaction *model.Transaction) error {
	args := t.Called(ctx, transaction)
	return args.Error(0)
}

func (t *TransactionRepository) FindByID(ctx context.Context, id int64) (*model.Transaction, error) {
	args := t.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (t *TransactionRepository) FindByReference(ctx context.Context, reference string) (*model.Transaction, error) {
	args := t.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (t *TransactionRepository) FindAllPending(ctx context.Context, limit int) ([]model.Transaction, error) {
	args := t.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (t *TransactionRepository) UpdateStatusFromPending(ctx context.Context, update *repository.StatusUpdate) error {
	args := t.Called(ctx, update)
	return args.Error(0)
}
