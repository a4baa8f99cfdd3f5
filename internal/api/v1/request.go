package v1

type CheckoutRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`

	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerPhone string `json:"customer_phone"`

	CardToken    string `json:"card_token" validate:"required"`
	CardBrand    string `json:"card_brand"`
	CardLastFour string `json:"card_last_four" validate:"omitempty,len=4,numeric"`
	Installments int    `json:"installments" validate:"gte=0"`

	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country" validate:"required,len=2"`
}
