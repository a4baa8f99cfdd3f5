package mocks

import (
	"context"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/service"
	"github.com/stretchr/testify/mock"
)

type EventPublisher struct {
	mock.Mock
}

func (e *EventPublisher) PublishStatusChange(ctx context.Context, event service.TransactionEvent) error {
	args := e.Called(ctx, event)
	return args.Error(0)
}
