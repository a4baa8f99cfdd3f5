package v1_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/api"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/api/middleware"
	v1 "github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/api/v1"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/constants"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/metrics"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/mocks"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testMetrics = metrics.NewMetrics()

func newTestApp(t *testing.T) (*fiber.App, *mocks.CheckoutService, *mocks.CatalogService) {
	t.Helper()

	checkout := new(mocks.CheckoutService)
	catalog := new(mocks.CatalogService)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler := v1.NewHandler(zap.NewNop(), checkout, catalog)
	api.SetupRoutes(app, handler, testMetrics)

	return app, checkout, catalog
}

func checkoutBody() map[string]any {
	return map[string]any{
		"product_id":     1,
		"quantity":       3,
		"customer_email": "ana@example.com",
		"customer_name":  "Ana Torres",
		"card_token":     "tok_test_visa",
		"card_last_four": "4242",
		"installments":   1,
		"address":        "Cra 7 # 12-34",
		"city":           "Bogota",
		"country":        "CO",
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp.StatusCode, decoded
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp.StatusCode, decoded
}

func TestHandler_Checkout(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app, checkout, _ := newTestApp(t)

		checkout.On("CreateTransaction", mock.Anything, mock.Anything).
			Return(service.TransactionView{
				ID:          42,
				Reference:   "TXN-abc",
				Status:      string(model.TransactionStatusApproved),
				TotalAmount: 16700,
				Currency:    "COP",
			}, nil)

		status, body := postJSON(t, app, "/v1/checkout", checkoutBody())

		assert.Equal(t, fiber.StatusCreated, status)
		transaction := body["transaction"].(map[string]any)
		assert.Equal(t, "TXN-abc", transaction["reference"])
		assert.Equal(t, "APPROVED", transaction["status"])

		cmd := checkout.Calls[0].Arguments.Get(1).(service.CreateTransactionCommand)
		assert.Equal(t, int64(1), cmd.ProductID)
		assert.Equal(t, 3, cmd.Quantity)
		assert.Equal(t, "tok_test_visa", cmd.CardToken)
	})

	t.Run("malformed body", func(t *testing.T) {
		app, checkout, _ := newTestApp(t)

		req := httptest.NewRequest(fiber.MethodPost, "/v1/checkout", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		checkout.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	})

	t.Run("validation failure", func(t *testing.T) {
		app, checkout, _ := newTestApp(t)

		body := checkoutBody()
		body["customer_email"] = "not-an-email"
		body["quantity"] = 0

		status, decoded := postJSON(t, app, "/v1/checkout", body)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, decoded["code"])
		checkout.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	})

	t.Run("insufficient stock maps to conflict", func(t *testing.T) {
		app, checkout, _ := newTestApp(t)

		checkout.On("CreateTransaction", mock.Anything, mock.Anything).
			Return(service.TransactionView{},
				service.NewServiceError(constants.ErrCodeInsufficientStock, service.ErrDatabase))

		status, decoded := postJSON(t, app, "/v1/checkout", checkoutBody())

		assert.Equal(t, fiber.StatusConflict, status)
		assert.Equal(t, constants.ErrCodeInsufficientStock, decoded["code"])
	})

	t.Run("payment failure maps to bad gateway", func(t *testing.T) {
		app, checkout, _ := newTestApp(t)

		checkout.On("CreateTransaction", mock.Anything, mock.Anything).
			Return(service.TransactionView{},
				service.NewServiceError(constants.ErrCodePaymentFailed, service.ErrDatabase))

		status, decoded := postJSON(t, app, "/v1/checkout", checkoutBody())

		assert.Equal(t, fiber.StatusBadGateway, status)
		assert.Equal(t, constants.ErrCodePaymentFailed, decoded["code"])
	})
}

func TestHandler_SyncTransaction(t *testing.T) {
	t.Run("synced", func(t *testing.T) {
		app, checkout, _ := newTestApp(t)

		checkout.On("SyncTransactionStatus", mock.Anything, int64(42)).
			Return(service.TransactionView{ID: 42, Status: string(model.TransactionStatusApproved)}, nil)

		status, body := postJSON(t, app, "/v1/transactions/42/sync", nil)

		assert.Equal(t, fiber.StatusOK, status)
		transaction := body["transaction"].(map[string]any)
		assert.Equal(t, "APPROVED", transaction["status"])
	})

	t.Run("non-numeric id", func(t *testing.T) {
		app, checkout, _ := newTestApp(t)

		status, _ := postJSON(t, app, "/v1/transactions/abc/sync", nil)

		assert.Equal(t, fiber.StatusBadRequest, status)
		checkout.AssertNotCalled(t, "SyncTransactionStatus", mock.Anything, mock.Anything)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		app, checkout, _ := newTestApp(t)

		checkout.On("SyncTransactionStatus", mock.Anything, int64(42)).
			Return(service.TransactionView{},
				service.NewServiceError(constants.ErrCodeTransactionNotFound, service.ErrDatabase))

		status, decoded := postJSON(t, app, "/v1/transactions/42/sync", nil)

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, constants.ErrCodeTransactionNotFound, decoded["code"])
	})
}

func TestHandler_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		app, _, catalog := newTestApp(t)

		catalog.On("GetProduct", mock.Anything, int64(1)).
			Return(&model.Product{ID: 1, Name: "Keyboard", PriceInCents: 5000, Stock: 10}, nil)

		status, body := getJSON(t, app, "/v1/products/1")

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "Keyboard", body["name"])
		assert.Equal(t, float64(10), body["stock"])
	})

	t.Run("not found", func(t *testing.T) {
		app, _, catalog := newTestApp(t)

		catalog.On("GetProduct", mock.Anything, int64(99)).Return(nil, service.ErrProductNotFound)

		status, body := getJSON(t, app, "/v1/products/99")

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, constants.ErrCodeProductNotFound, body["code"])
	})
}
