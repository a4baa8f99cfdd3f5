package service

import "time"

type CreateTransactionCommand struct {
	ProductID int64
	Quantity  int

	CustomerEmail string
	CustomerName  string
	CustomerPhone string

	// CardToken is the vendor-issued token for an already-tokenized card.
	CardToken    string
	CardBrand    string
	CardLastFour string
	Installments int

	Address    string
	City       string
	Region     string
	PostalCode string
	Country    string
}

type TransactionView struct {
	ID            int64     `json:"id"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	ProductID     int64     `json:"product_id"`
	Quantity      int       `json:"quantity"`
	CustomerID    int64     `json:"customer_id"`
	ProductAmount int64     `json:"product_amount"`
	BaseFee       int64     `json:"base_fee"`
	DeliveryFee   int64     `json:"delivery_fee"`
	TotalAmount   int64     `json:"total_amount"`
	Currency      string    `json:"currency"`
	CardBrand     string    `json:"card_brand,omitempty"`
	CardLastFour  string    `json:"card_last_four,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
