package service

import (
	"context"
	"time"
)

// TransactionEvent is emitted after a transaction reaches a terminal status.
// Consumers (mail, fulfillment) are downstream of this service; delivery is
// best-effort and never blocks the money path.
type TransactionEvent struct {
	TransactionID int64     `json:"transaction_id"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	ProductID     int64     `json:"product_id"`
	Quantity      int       `json:"quantity"`
	TotalAmount   int64     `json:"total_amount"`
	Currency      string    `json:"currency"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishStatusChange(ctx context.Context, event TransactionEvent) error
}
