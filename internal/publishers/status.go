package publishers

import (
	"context"
	"encoding/json"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/service"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/mq"
	"go.uber.org/zap"
)

const QueueTransactionStatus = "payments.transaction.status"

type statusPublisher struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewStatusPublisher(publisher mq.Publisher, logger *zap.Logger) service.EventPublisher {
	return &statusPublisher{publisher: publisher, logger: logger}
}

func (p *statusPublisher) PublishStatusChange(ctx context.Context, event service.TransactionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(ctx, "", QueueTransactionStatus, body); err != nil {
		p.logger.Error("Failed to publish transaction status event",
			zap.Error(err),
			zap.Int64("transactionID", event.TransactionID),
			zap.String("status", event.Status))
		return err
	}

	p.logger.Debug("Published transaction status event",
		zap.Int64("transactionID", event.TransactionID),
		zap.String("status", event.Status))

	return nil
}
