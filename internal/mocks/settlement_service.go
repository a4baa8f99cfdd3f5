package mocks

import (
	"context"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/gateway"
	"github.com/stretchr/testify/mock"
)

type SettlementService struct {
	mock.Mock
}

func (s *SettlementService) ApplyGatewayResult(ctx context.Context, transaction *model.Transaction,
	result gateway.Result) (*model.Transaction, error) {
	args := s.Called(ctx, transaction, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (s *SettlementService) MarkError(ctx context.Context, transaction *model.Transaction, cause string) error {
	args := s.Called(ctx, transaction, cause)
	return args.Error(0)
}

func (s *SettlementService) Void(ctx context.Context, transaction *model.Transaction) error {
	args := s.Called(ctx, transaction)
	return args.Error(0)
}
