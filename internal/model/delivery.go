package model

import "time"

// Delivery is captured before the charge is attempted. The address only
// exists at checkout time and cannot be recovered if the customer abandons
// the session.
type Delivery struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	TransactionID int64     `gorm:"column:transaction_id;index:idx_delivery_transaction"`
	ProductID     int64     `gorm:"column:product_id"`
	CustomerID    int64     `gorm:"column:customer_id"`
	Address       string    `gorm:"column:address"`
	City          string    `gorm:"column:city"`
	Region        string    `gorm:"column:region"`
	PostalCode    string    `gorm:"column:postal_code"`
	Country       string    `gorm:"column:country;type:varchar(2)"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`

	Transaction Transaction `gorm:"foreignKey:TransactionID"`
}
