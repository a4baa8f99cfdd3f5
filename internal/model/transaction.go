package model

import "time"

type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusApproved TransactionStatus = "APPROVED"
	TransactionStatusDeclined TransactionStatus = "DECLINED"
	TransactionStatusError    TransactionStatus = "ERROR"
	TransactionStatusVoided   TransactionStatus = "VOIDED"
)

// IsTerminal reports whether no further automatic transition is allowed.
// Only PENDING transactions are ever advanced by the orchestrator or the
// reconciliation sweep.
func (s TransactionStatus) IsTerminal() bool {
	return s != TransactionStatusPending
}

type Transaction struct {
	ID        int64             `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Reference string            `gorm:"column:reference;index:idx_reference,unique;<-:create"`
	Status    TransactionStatus `gorm:"column:status;type:varchar(20);index:idx_status"`

	ProductID  int64 `gorm:"column:product_id"`
	Quantity   int   `gorm:"column:quantity"`
	CustomerID int64 `gorm:"column:customer_id"`

	// All monetary amounts are integer minor-currency units.
	ProductAmount int64  `gorm:"column:product_amount"`
	BaseFee       int64  `gorm:"column:base_fee"`
	DeliveryFee   int64  `gorm:"column:delivery_fee"`
	TotalAmount   int64  `gorm:"column:total_amount"`
	Currency      string `gorm:"column:currency;type:varchar(3)"`

	// Display-only card metadata. Full card numbers never enter this system.
	CardBrand    *string `gorm:"column:card_brand"`
	CardLastFour *string `gorm:"column:card_last_four;type:varchar(4)"`

	GatewayTransactionID *string `gorm:"column:gateway_transaction_id"`
	GatewayResponse      *string `gorm:"column:gateway_response;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}
