package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/config"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/constants"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/metrics"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/repository"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/gateway"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CheckoutService interface {
	CreateTransaction(ctx context.Context, cmd CreateTransactionCommand) (TransactionView, error)
	SyncTransactionStatus(ctx context.Context, transactionID int64) (TransactionView, error)
	GetTransaction(ctx context.Context, transactionID int64) (TransactionView, error)
}

type checkout struct {
	products     repository.ProductRepository
	customers    repository.CustomerRepository
	deliveries   repository.DeliveryRepository
	transactions repository.TransactionRepository
	txManager    repository.TxManager
	gateway      gateway.Gateway
	settlement   SettlementService
	fees         *FeeCalculator
	currency     string
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewCheckoutService(products repository.ProductRepository, customers repository.CustomerRepository,
	deliveries repository.DeliveryRepository, transactions repository.TransactionRepository,
	txManager repository.TxManager, gw gateway.Gateway, settlement SettlementService,
	cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) CheckoutService {
	return &checkout{
		products:     products,
		customers:    customers,
		deliveries:   deliveries,
		transactions: transactions,
		txManager:    txManager,
		gateway:      gw,
		settlement:   settlement,
		fees:         NewFeeCalculator(cfg.Fees.BaseFee, cfg.Fees.DeliveryFee),
		currency:     cfg.Fees.Currency,
		metrics:      m,
		logger:       logger,
	}
}

// CreateTransaction runs the purchase state machine for one product/quantity
// pair: validate stock, upsert the customer, persist the PENDING transaction
// together with its delivery record, charge the card, then settle whatever
// outcome the gateway reported synchronously. Stock is only decremented by
// the settlement step, and only on APPROVED.
func (c *checkout) CreateTransaction(ctx context.Context, cmd CreateTransactionCommand) (TransactionView, error) {
	product, err := c.products.FindByID(ctx, cmd.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return TransactionView{}, NewServiceError(constants.ErrCodeProductNotFound, err)
		}

		return TransactionView{}, NewServiceError(ErrCodeDatabase, err)
	}

	if product.Stock < cmd.Quantity {
		c.logger.Info("Checkout rejected, insufficient stock",
			zap.Int64("productID", cmd.ProductID),
			zap.Int("available", product.Stock),
			zap.Int("requested", cmd.Quantity))

		return TransactionView{}, NewServiceError(constants.ErrCodeInsufficientStock,
			fmt.Errorf("insufficient stock: available %d, requested %d", product.Stock, cmd.Quantity))
	}

	customer := model.Customer{
		Email:     cmd.CustomerEmail,
		Name:      cmd.CustomerName,
		Phone:     cmd.CustomerPhone,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := c.customers.UpsertByEmail(ctx, &customer); err != nil {
		c.logger.Error("Failed to upsert customer",
			zap.String("email", cmd.CustomerEmail),
			zap.Error(err))
		return TransactionView{}, NewServiceError(ErrCodeDatabase, err)
	}

	breakdown := c.fees.Breakdown(product.PriceInCents, cmd.Quantity)
	reference := fmt.Sprintf("TXN-%s", uuid.NewString())

	transaction := model.Transaction{
		Reference:     reference,
		Status:        model.TransactionStatusPending,
		ProductID:     product.ID,
		Quantity:      cmd.Quantity,
		CustomerID:    customer.ID,
		ProductAmount: breakdown.ProductAmount,
		BaseFee:       breakdown.BaseFee,
		DeliveryFee:   breakdown.DeliveryFee,
		TotalAmount:   breakdown.TotalAmount,
		Currency:      c.currency,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if cmd.CardBrand != "" {
		transaction.CardBrand = &cmd.CardBrand
	}
	if cmd.CardLastFour != "" {
		transaction.CardLastFour = &cmd.CardLastFour
	}

	// The transaction and its delivery record are durable before any call
	// leaves the process. The address cannot be recovered later if the
	// customer abandons the session.
	err = c.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := c.transactions.Create(ctx, &transaction); err != nil {
			return err
		}

		delivery := model.Delivery{
			TransactionID: transaction.ID,
			ProductID:     product.ID,
			CustomerID:    customer.ID,
			Address:       cmd.Address,
			City:          cmd.City,
			Region:        cmd.Region,
			PostalCode:    cmd.PostalCode,
			Country:       cmd.Country,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		return c.deliveries.Create(ctx, &delivery)
	})
	if err != nil {
		c.logger.Error("Failed to persist pending transaction",
			zap.String("reference", reference),
			zap.Error(err))
		return TransactionView{}, NewServiceError(ErrCodeDatabase, err)
	}

	start := time.Now()
	tokens, err := c.gateway.AcceptanceTokens(ctx)
	c.metrics.RecordGatewayRequest("acceptance_tokens", gatewayOutcome(err), time.Since(start))
	if err != nil {
		return c.failCharge(ctx, &transaction, "acceptance tokens unavailable: "+err.Error(), err)
	}

	start = time.Now()
	result, err := c.gateway.Charge(ctx, gateway.ChargeRequest{
		AmountInCents:     breakdown.TotalAmount,
		Currency:          c.currency,
		Reference:         reference,
		CustomerEmail:     cmd.CustomerEmail,
		CardToken:         cmd.CardToken,
		Installments:      cmd.Installments,
		AcceptanceToken:   tokens.AcceptanceToken,
		PersonalAuthToken: tokens.PersonalAuthToken,
	})
	c.metrics.RecordGatewayRequest("charge", gatewayOutcome(err), time.Since(start))
	if err != nil {
		return c.failCharge(ctx, &transaction, "charge failed: "+err.Error(), err)
	}

	settled, err := c.settlement.ApplyGatewayResult(ctx, &transaction, result)
	if err != nil {
		return TransactionView{}, NewServiceError(ErrCodeDatabase, err)
	}

	c.metrics.RecordTransactionCreated(string(settled.Status))

	c.logger.Info("Checkout completed",
		zap.String("reference", reference),
		zap.String("status", string(settled.Status)),
		zap.Int64("totalAmount", settled.TotalAmount))

	return newTransactionView(settled), nil
}

// failCharge resolves a transport-level charge failure. The transaction is
// never silently dropped: it stays visible with a terminal ERROR status and
// the caller receives a typed PaymentFailed error.
func (c *checkout) failCharge(ctx context.Context, transaction *model.Transaction,
	cause string, err error) (TransactionView, error) {

	c.logger.Error("Gateway charge attempt failed",
		zap.String("reference", transaction.Reference),
		zap.Error(err))

	if markErr := c.settlement.MarkError(ctx, transaction, cause); markErr != nil {
		c.logger.Error("Failed to record charge failure",
			zap.String("reference", transaction.Reference),
			zap.Error(markErr))
	}

	c.metrics.RecordTransactionCreated(string(model.TransactionStatusError))

	return TransactionView{}, NewServiceError(constants.ErrCodePaymentFailed, err)
}

// SyncTransactionStatus re-queries the gateway for one transaction on
// demand. Calling it on an already-terminal transaction is a no-op.
func (c *checkout) SyncTransactionStatus(ctx context.Context, transactionID int64) (TransactionView, error) {
	transaction, err := c.transactions.FindByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return TransactionView{}, NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}

		return TransactionView{}, NewServiceError(ErrCodeDatabase, err)
	}

	if transaction.Status.IsTerminal() {
		return newTransactionView(transaction), nil
	}

	if transaction.GatewayTransactionID == nil {
		return TransactionView{}, NewServiceError(constants.ErrCodeNoGatewayReference, ErrNoGatewayReference)
	}

	start := time.Now()
	result, err := c.gateway.GetTransaction(ctx, *transaction.GatewayTransactionID)
	c.metrics.RecordGatewayRequest("get_transaction", gatewayOutcome(err), time.Since(start))
	if err != nil {
		c.logger.Warn("Gateway status query failed, transaction left pending",
			zap.Int64("transactionID", transactionID),
			zap.Error(err))
		return TransactionView{}, NewServiceError(constants.ErrCodeSyncFailed, err)
	}

	settled, err := c.settlement.ApplyGatewayResult(ctx, transaction, result)
	if err != nil {
		return TransactionView{}, NewServiceError(constants.ErrCodeSyncFailed, err)
	}

	return newTransactionView(settled), nil
}

func (c *checkout) GetTransaction(ctx context.Context, transactionID int64) (TransactionView, error) {
	transaction, err := c.transactions.FindByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return TransactionView{}, NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}

		return TransactionView{}, NewServiceError(ErrCodeDatabase, err)
	}

	return newTransactionView(transaction), nil
}

func gatewayOutcome(err error) string {
	if err != nil {
		return "error"
	}

	return "success"
}

func newTransactionView(transaction *model.Transaction) TransactionView {
	view := TransactionView{
		ID:            transaction.ID,
		Reference:     transaction.Reference,
		Status:        string(transaction.Status),
		ProductID:     transaction.ProductID,
		Quantity:      transaction.Quantity,
		CustomerID:    transaction.CustomerID,
		ProductAmount: transaction.ProductAmount,
		BaseFee:       transaction.BaseFee,
		DeliveryFee:   transaction.DeliveryFee,
		TotalAmount:   transaction.TotalAmount,
		Currency:      transaction.Currency,
		CreatedAt:     transaction.CreatedAt,
	}
	if transaction.CardBrand != nil {
		view.CardBrand = *transaction.CardBrand
	}
	if transaction.CardLastFour != nil {
		view.CardLastFour = *transaction.CardLastFour
	}

	return view
}
