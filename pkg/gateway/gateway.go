package gateway

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/httpclient"
)

const (
	MerchantsEndpoint    = "/v1/merchants"
	TransactionsEndpoint = "/v1/transactions"
)

// Gateway is the port to the external card-payment processor. All three
// operations may fail on transport; a failure is distinct from a charge the
// vendor explicitly declined, which comes back as a Result with
// StatusDeclined and a nil error.
type Gateway interface {
	AcceptanceTokens(ctx context.Context) (AcceptanceTokens, error)
	Charge(ctx context.Context, request ChargeRequest) (Result, error)
	GetTransaction(ctx context.Context, gatewayTransactionID string) (Result, error)
}

type gateway struct {
	client httpclient.HTTPClient
	config Config
}

func NewGateway(cfg Config, client httpclient.HTTPClient) Gateway {
	return &gateway{config: cfg, client: client}
}

func (g *gateway) AcceptanceTokens(ctx context.Context) (AcceptanceTokens, error) {
	url := fmt.Sprintf("%s%s/%s", g.config.BaseURL, MerchantsEndpoint, g.config.PublicKey)

	resp, err := g.client.Get(ctx, url, g.headers(g.config.PublicKey))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return AcceptanceTokens{}, ErrTimeout
		}

		return AcceptanceTokens{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AcceptanceTokens{}, MapStatusToError(resp.StatusCode)
	}

	var merchant merchantResponse
	if err := json.NewDecoder(resp.Body).Decode(&merchant); err != nil {
		return AcceptanceTokens{}, fmt.Errorf("decoding error: %w", err)
	}

	return AcceptanceTokens{
		AcceptanceToken:   merchant.Data.PresignedAcceptance.AcceptanceToken,
		PersonalAuthToken: merchant.Data.PresignedPersonalDataAuth.AcceptanceToken,
	}, nil
}

func (g *gateway) Charge(ctx context.Context, request ChargeRequest) (Result, error) {
	body := chargeBody{
		AcceptanceToken:    request.AcceptanceToken,
		AcceptPersonalAuth: request.PersonalAuthToken,
		AmountInCents:      request.AmountInCents,
		Currency:           request.Currency,
		Reference:          request.Reference,
		CustomerEmail:      request.CustomerEmail,
		Signature:          g.signature(request.Reference, request.AmountInCents, request.Currency),
		PaymentMethod: paymentMethod{
			Type:         "CARD",
			Token:        request.CardToken,
			Installments: request.Installments,
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return Result{}, fmt.Errorf("encoding error: %w", err)
	}

	resp, err := g.client.Post(ctx, g.config.BaseURL+TransactionsEndpoint, &buf, g.headers(g.config.PrivateKey))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{}, ErrTimeout
		}

		return Result{}, err
	}

	defer resp.Body.Close()

	return g.decodeResult(resp)
}

func (g *gateway) GetTransaction(ctx context.Context, gatewayTransactionID string) (Result, error) {
	url := fmt.Sprintf("%s%s/%s", g.config.BaseURL, TransactionsEndpoint, gatewayTransactionID)

	resp, err := g.client.Get(ctx, url, g.headers(g.config.PrivateKey))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{}, ErrTimeout
		}

		return Result{}, err
	}

	defer resp.Body.Close()

	return g.decodeResult(resp)
}

func (g *gateway) decodeResult(resp *http.Response) (Result, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Result{}, MapStatusToError(resp.StatusCode)
	}

	var transaction transactionResponse
	if err := json.Unmarshal(raw, &transaction); err != nil {
		return Result{}, fmt.Errorf("decoding error: %w", err)
	}

	return Result{
		GatewayTransactionID: transaction.Data.ID,
		Status:               NormalizeStatus(transaction.Data.Status),
		StatusMessage:        transaction.Data.StatusMessage,
		Raw:                  string(raw),
	}, nil
}

func (g *gateway) headers(key string) map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + key,
	}
}

// signature is the integrity hash the vendor verifies on every charge.
func (g *gateway) signature(reference string, amountInCents int64, currency string) string {
	payload := fmt.Sprintf("%s%d%s%s", reference, amountInCents, currency, g.config.IntegritySecret)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
