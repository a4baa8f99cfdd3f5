package gateway

// ChargeRequest carries everything the vendor needs to charge a card.
// CardToken is a pre-tokenized card reference; raw card data never enters
// this system.
type ChargeRequest struct {
	AmountInCents     int64
	Currency          string
	Reference         string
	CustomerEmail     string
	CardToken         string
	Installments      int
	AcceptanceToken   string
	PersonalAuthToken string
}

type chargeBody struct {
	AcceptanceToken    string        `json:"acceptance_token"`
	AcceptPersonalAuth string        `json:"accept_personal_auth,omitempty"`
	AmountInCents      int64         `json:"amount_in_cents"`
	Currency           string        `json:"currency"`
	Reference          string        `json:"reference"`
	CustomerEmail      string        `json:"customer_email"`
	Signature          string        `json:"signature"`
	PaymentMethod      paymentMethod `json:"payment_method"`
}

type paymentMethod struct {
	Type         string `json:"type"`
	Token        string `json:"token"`
	Installments int    `json:"installments"`
}
