package service

import (
	"context"
	"errors"
	"time"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/cache"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/metrics"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/repository"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/gateway"
	"go.uber.org/zap"
)

// SettlementService owns the PENDING -> terminal edge. It is the single
// place that decrements stock, so the synchronous checkout path and the
// reconciliation sweep cannot drift apart.
type SettlementService interface {
	ApplyGatewayResult(ctx context.Context, transaction *model.Transaction, result gateway.Result) (*model.Transaction, error)
	MarkError(ctx context.Context, transaction *model.Transaction, cause string) error
	Void(ctx context.Context, transaction *model.Transaction) error
}

type settlement struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
	cache        cache.ProductCache
	txManager    repository.TxManager
	events       EventPublisher
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewSettlementService(transactions repository.TransactionRepository, products repository.ProductRepository,
	productCache cache.ProductCache, txManager repository.TxManager, events EventPublisher,
	m *metrics.Metrics, logger *zap.Logger) SettlementService {
	return &settlement{
		transactions: transactions,
		products:     products,
		cache:        productCache,
		txManager:    txManager,
		events:       events,
		metrics:      m,
		logger:       logger,
	}
}

// ApplyGatewayResult maps the normalized gateway status onto the transaction
// and performs the side effects the transition demands. The status write and
// the stock decrement share one storage transaction, and the write is guarded
// on the stored status still being PENDING, so the decrement fires exactly
// once on the PENDING -> APPROVED edge no matter how many times the gateway
// reports APPROVED.
func (s *settlement) ApplyGatewayResult(ctx context.Context, transaction *model.Transaction,
	result gateway.Result) (*model.Transaction, error) {

	status := MapGatewayStatus(result.Status)

	update := &repository.StatusUpdate{
		ID:     transaction.ID,
		Status: status,
	}
	if result.GatewayTransactionID != "" {
		update.GatewayTransactionID = &result.GatewayTransactionID
	}
	if result.Raw != "" {
		update.GatewayResponse = &result.Raw
	}

	if status == model.TransactionStatusPending {
		// Still pending upstream. Record the gateway reference so the sweep
		// can poll for the outcome; the stock stays untouched.
		err := s.transactions.UpdateStatusFromPending(ctx, update)
		if err != nil && !errors.Is(err, repository.ErrNoRowsAffected) {
			s.logger.Error("Failed to record gateway reference on pending transaction",
				zap.Int64("transactionID", transaction.ID),
				zap.Error(err))
			return nil, ErrDatabase
		}

		return s.reload(ctx, transaction.ID)
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.transactions.UpdateStatusFromPending(ctx, update); err != nil {
			return err
		}

		if status == model.TransactionStatusApproved {
			if _, err := s.products.DecrementStock(ctx, transaction.ProductID, transaction.Quantity); err != nil {
				return err
			}
		}

		return nil
	})

	if errors.Is(err, repository.ErrNoRowsAffected) {
		s.logger.Info("Transaction already settled, no side effects applied",
			zap.Int64("transactionID", transaction.ID),
			zap.String("gatewayStatus", string(result.Status)))
		return s.reload(ctx, transaction.ID)
	}

	if err != nil {
		s.logger.Error("Failed to settle transaction",
			zap.Int64("transactionID", transaction.ID),
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, ErrDatabase
	}

	s.metrics.RecordStatusTransition(string(status))

	if status == model.TransactionStatusApproved {
		s.metrics.RecordStockDecrement()

		if err := s.cache.Invalidate(ctx, transaction.ProductID); err != nil {
			s.logger.Warn("Product cache invalidation failed",
				zap.Int64("productID", transaction.ProductID),
				zap.Error(err))
		}
	}

	settled, err := s.reload(ctx, transaction.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, settled)

	return settled, nil
}

// MarkError resolves a transaction whose charge attempt failed in transport
// before the vendor produced a business outcome. The stock was never
// decremented, so no compensation is needed.
func (s *settlement) MarkError(ctx context.Context, transaction *model.Transaction, cause string) error {
	response := cause
	update := &repository.StatusUpdate{
		ID:              transaction.ID,
		Status:          model.TransactionStatusError,
		GatewayResponse: &response,
	}

	err := s.transactions.UpdateStatusFromPending(ctx, update)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return nil
	}

	if err != nil {
		s.logger.Error("Failed to mark transaction as errored",
			zap.Int64("transactionID", transaction.ID),
			zap.Error(err))
		return ErrDatabase
	}

	s.metrics.RecordStatusTransition(string(model.TransactionStatusError))

	if settled, reloadErr := s.reload(ctx, transaction.ID); reloadErr == nil {
		s.publish(ctx, settled)
	}

	return nil
}

// Void expires a stale PENDING transaction that never obtained a gateway
// reference. There is nothing to reconcile against, so the record is closed
// without touching stock.
func (s *settlement) Void(ctx context.Context, transaction *model.Transaction) error {
	update := &repository.StatusUpdate{
		ID:     transaction.ID,
		Status: model.TransactionStatusVoided,
	}

	err := s.transactions.UpdateStatusFromPending(ctx, update)
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return nil
	}

	if err != nil {
		s.logger.Error("Failed to void stale transaction",
			zap.Int64("transactionID", transaction.ID),
			zap.Error(err))
		return ErrDatabase
	}

	s.metrics.RecordStatusTransition(string(model.TransactionStatusVoided))

	if settled, reloadErr := s.reload(ctx, transaction.ID); reloadErr == nil {
		s.publish(ctx, settled)
	}

	return nil
}

func (s *settlement) reload(ctx context.Context, id int64) (*model.Transaction, error) {
	transaction, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to reload transaction after settlement",
			zap.Int64("transactionID", id),
			zap.Error(err))
		return nil, ErrDatabase
	}

	return transaction, nil
}

func (s *settlement) publish(ctx context.Context, transaction *model.Transaction) {
	if !transaction.Status.IsTerminal() {
		return
	}

	event := TransactionEvent{
		TransactionID: transaction.ID,
		Reference:     transaction.Reference,
		Status:        string(transaction.Status),
		ProductID:     transaction.ProductID,
		Quantity:      transaction.Quantity,
		TotalAmount:   transaction.TotalAmount,
		Currency:      transaction.Currency,
		OccurredAt:    time.Now(),
	}

	if err := s.events.PublishStatusChange(ctx, event); err != nil {
		s.logger.Warn("Failed to publish transaction status event",
			zap.Int64("transactionID", transaction.ID),
			zap.String("status", event.Status),
			zap.Error(err))
	}
}
