package service

import (
	"context"
	"time"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/config"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/metrics"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/repository"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/gateway"
	"go.uber.org/zap"
)

const (
	reconcileOutcomeSkipped     = "skipped"
	reconcileOutcomeVoided      = "voided"
	reconcileOutcomeUnchanged   = "unchanged"
	reconcileOutcomeQueryFailed = "query_failed"
	reconcileOutcomeSettled     = "settled"
	reconcileOutcomeFailed      = "failed"
)

type ReconcilerService interface {
	ReconcilePending(ctx context.Context) error
}

type reconciler struct {
	transactions  repository.TransactionRepository
	gateway       gateway.Gateway
	settlement    SettlementService
	batchSize     int
	pendingExpiry time.Duration
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

func NewReconcilerService(transactions repository.TransactionRepository, gw gateway.Gateway,
	settlement SettlementService, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) ReconcilerService {
	return &reconciler{
		transactions:  transactions,
		gateway:       gw,
		settlement:    settlement,
		batchSize:     cfg.Reconciler.BatchSize,
		pendingExpiry: cfg.Reconciler.PendingExpiry,
		metrics:       m,
		logger:        logger,
	}
}

// ReconcilePending sweeps every PENDING transaction and converges it toward
// the gateway's ground truth. Each transaction is reconciled independently; a
// failure on one never aborts the sweep for the rest.
func (r *reconciler) ReconcilePending(ctx context.Context) error {
	pending, err := r.transactions.FindAllPending(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("Failed to load pending transactions", zap.Error(err))
		return err
	}

	if len(pending) == 0 {
		return nil
	}

	r.logger.Info("Reconciling pending transactions", zap.Int("count", len(pending)))

	for i := range pending {
		select {
		case <-ctx.Done():
			r.logger.Info("Reconciliation cancelled",
				zap.Int("processed", i),
				zap.Int("total", len(pending)))
			return ctx.Err()
		default:
		}

		// Cancellation stops the sweep between items only. The item already
		// being reconciled runs to completion so its gateway outcome is
		// applied, not discarded mid-flight.
		outcome := r.reconcile(context.WithoutCancel(ctx), &pending[i])
		r.metrics.RecordReconcilerOutcome(outcome)
	}

	return nil
}

func (r *reconciler) reconcile(ctx context.Context, transaction *model.Transaction) string {
	if transaction.GatewayTransactionID == nil {
		// The charge never reached the gateway, so there is no outcome to
		// converge to. Past the expiry threshold the record is closed as
		// VOIDED; until then the next sweep will look again.
		if time.Since(transaction.CreatedAt) > r.pendingExpiry {
			r.logger.Warn("Voiding stale transaction without gateway reference",
				zap.Int64("transactionID", transaction.ID),
				zap.String("reference", transaction.Reference),
				zap.Time("createdAt", transaction.CreatedAt))

			if err := r.settlement.Void(ctx, transaction); err != nil {
				return reconcileOutcomeFailed
			}

			return reconcileOutcomeVoided
		}

		return reconcileOutcomeSkipped
	}

	start := time.Now()
	result, err := r.gateway.GetTransaction(ctx, *transaction.GatewayTransactionID)
	r.metrics.RecordGatewayRequest("get_transaction", gatewayOutcome(err), time.Since(start))
	if err != nil {
		// Transport failure says nothing about the charge. Leave the
		// transaction pending rather than guess a terminal status.
		r.logger.Warn("Gateway status query failed during sweep",
			zap.Int64("transactionID", transaction.ID),
			zap.String("gatewayTransactionID", *transaction.GatewayTransactionID),
			zap.Error(err))
		return reconcileOutcomeQueryFailed
	}

	if MapGatewayStatus(result.Status) == transaction.Status {
		return reconcileOutcomeUnchanged
	}

	settled, err := r.settlement.ApplyGatewayResult(ctx, transaction, result)
	if err != nil {
		return reconcileOutcomeFailed
	}

	r.logger.Info("Transaction reconciled",
		zap.Int64("transactionID", transaction.ID),
		zap.String("reference", transaction.Reference),
		zap.String("status", string(settled.Status)))

	return reconcileOutcomeSettled
}
