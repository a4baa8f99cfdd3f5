package mocks

import (
	"context"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/gateway"
	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

func (g *Gateway) AcceptanceTokens(ctx context.Context) (gateway.AcceptanceTokens, error) {
	args := g.Called(ctx)
	return args.Get(0).(gateway.AcceptanceTokens), args.Error(1)
}

func (g *Gateway) Charge(ctx context.Context, request gateway.ChargeRequest) (gateway.Result, error) {
	args := g.Called(ctx, request)
	return args.Get(0).(gateway.Result), args.Error(1)
}

func (g *Gateway) GetTransaction(ctx context.Context, gatewayTransactionID string) (gateway.Result, error) {
	args := g.Called(ctx, gatewayTransactionID)
	return args.Get(0).(gateway.Result), args.Error(1)
}
