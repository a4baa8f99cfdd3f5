package gateway

// AcceptanceTokens are the merchant-level terms-acceptance tokens the vendor
// requires on every charge. Fetched once per checkout session.
type AcceptanceTokens struct {
	AcceptanceToken   string
	PersonalAuthToken string
}

// Result is the normalized outcome of a charge or a status query. Raw keeps
// the vendor response snapshot verbatim for audit; it is never parsed
// downstream.
type Result struct {
	GatewayTransactionID string
	Status               Status
	StatusMessage        string
	Raw                  string
}

type merchantResponse struct {
	Data struct {
		PresignedAcceptance struct {
			AcceptanceToken string `json:"acceptance_token"`
		} `json:"presigned_acceptance"`
		PresignedPersonalDataAuth struct {
			AcceptanceToken string `json:"acceptance_token"`
		} `json:"presigned_personal_data_auth"`
	} `json:"data"`
}

type transactionResponse struct {
	Data struct {
		ID            string `json:"id"`
		Status        string `json:"status"`
		StatusMessage string `json:"status_message"`
		Reference     string `json:"reference"`
		AmountInCents int64  `json:"amount_in_cents"`
		Currency      string `json:"currency"`
	} `json:"data"`
}
