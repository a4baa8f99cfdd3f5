package v1

import "github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/service"

type TransactionResponse struct {
	Transaction service.TransactionView `json:"transaction"`
}

type ProductResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceInCents int64  `json:"price_in_cents"`
	Stock        int    `json:"stock"`
}
