package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/mocks"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/service"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reconcilerMocks struct {
	transactions *mocks.TransactionRepository
	gateway      *mocks.Gateway
	settlement   *mocks.SettlementService
}

func newReconcilerService(t *testing.T) (service.ReconcilerService, *reconcilerMocks) {
	t.Helper()

	m := &reconcilerMocks{
		transactions: new(mocks.TransactionRepository),
		gateway:      new(mocks.Gateway),
		settlement:   new(mocks.SettlementService),
	}

	svc := service.NewReconcilerService(m.transactions, m.gateway, m.settlement,
		testConfig, testMetrics, zap.NewNop())

	return svc, m
}

func TestReconciler_ReconcilePending(t *testing.T) {
	ctx := context.Background()
	gatewayID := "gw-1"

	t.Run("empty sweep does nothing", func(t *testing.T) {
		svc, m := newReconcilerService(t)

		m.transactions.On("FindAllPending", ctx, 100).Return([]model.Transaction{}, nil)

		err := svc.ReconcilePending(ctx)

		require.NoError(t, err)
		m.gateway.AssertNotCalled(t, "GetTransaction", mock.Anything, mock.Anything)
	})

	t.Run("pending transaction converges to approved", func(t *testing.T) {
		svc, m := newReconcilerService(t)

		pending := []model.Transaction{{
			ID:                   1,
			Reference:            "TXN-a",
			Status:               model.TransactionStatusPending,
			ProductID:            1,
			Quantity:             2,
			GatewayTransactionID: &gatewayID,
			CreatedAt:            time.Now(),
		}}
		result := gateway.Result{GatewayTransactionID: gatewayID, Status: gateway.StatusApproved}

		m.transactions.On("FindAllPending", ctx, 100).Return(pending, nil)
		m.gateway.On("GetTransaction", ctx, gatewayID).Return(result, nil)
		m.settlement.On("ApplyGatewayResult", ctx, mock.Anything, result).
			Return(&model.Transaction{ID: 1, Status: model.TransactionStatusApproved}, nil)

		err := svc.ReconcilePending(ctx)

		require.NoError(t, err)
		m.settlement.AssertNumberOfCalls(t, "ApplyGatewayResult", 1)
	})

	t.Run("still pending upstream leaves the transaction untouched", func(t *testing.T) {
		svc, m := newReconcilerService(t)

		pending := []model.Transaction{{
			ID:                   1,
			Status:               model.TransactionStatusPending,
			GatewayTransactionID: &gatewayID,
			CreatedAt:            time.Now(),
		}}

		m.transactions.On("FindAllPending", ctx, 100).Return(pending, nil)
		m.gateway.On("GetTransaction", ctx, gatewayID).
			Return(gateway.Result{GatewayTransactionID: gatewayID, Status: gateway.StatusPending}, nil)

		err := svc.ReconcilePending(ctx)

		require.NoError(t, err)
		m.settlement.AssertNotCalled(t, "ApplyGatewayResult", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("gateway failure leaves the transaction pending", func(t *testing.T) {
		svc, m := newReconcilerService(t)

		pending := []model.Transaction{{
			ID:                   1,
			Status:               model.TransactionStatusPending,
			GatewayTransactionID: &gatewayID,
			CreatedAt:            time.Now(),
		}}

		m.transactions.On("FindAllPending", ctx, 100).Return(pending, nil)
		m.gateway.On("GetTransaction", ctx, gatewayID).Return(gateway.Result{}, gateway.ErrTimeout)

		err := svc.ReconcilePending(ctx)

		require.NoError(t, err)
		m.settlement.AssertNotCalled(t, "ApplyGatewayResult", mock.Anything, mock.Anything, mock.Anything)
		m.settlement.AssertNotCalled(t, "Void", mock.Anything, mock.Anything)
	})

	t.Run("fresh transaction without gateway reference is skipped", func(t *testing.T) {
		svc, m := newReconcilerService(t)

		pending := []model.Transaction{{
			ID:        1,
			Status:    model.TransactionStatusPending,
			CreatedAt: time.Now(),
		}}

		m.transactions.On("FindAllPending", ctx, 100).Return(pending, nil)

		err := svc.ReconcilePending(ctx)

		require.NoError(t, err)
		m.gateway.AssertNotCalled(t, "GetTransaction", mock.Anything, mock.Anything)
		m.settlement.AssertNotCalled(t, "Void", mock.Anything, mock.Anything)
	})

	t.Run("stale transaction without gateway reference is voided", func(t *testing.T) {
		svc, m := newReconcilerService(t)

		pending := []model.Transaction{{
			ID:        1,
			Status:    model.TransactionStatusPending,
			CreatedAt: time.Now().Add(-time.Hour),
		}}

		m.transactions.On("FindAllPending", ctx, 100).Return(pending, nil)
		m.settlement.On("Void", ctx, mock.Anything).Return(nil)

		err := svc.ReconcilePending(ctx)

		require.NoError(t, err)
		m.settlement.AssertNumberOfCalls(t, "Void", 1)
		m.gateway.AssertNotCalled(t, "GetTransaction", mock.Anything, mock.Anything)
	})

	t.Run("one failing transaction does not abort the sweep", func(t *testing.T) {
		svc, m := newReconcilerService(t)

		badID := "gw-bad"
		goodID := "gw-good"
		pending := []model.Transaction{
			{ID: 1, Status: model.TransactionStatusPending, GatewayTransactionID: &badID, CreatedAt: time.Now()},
			{ID: 2, Status: model.TransactionStatusPending, GatewayTransactionID: &goodID, CreatedAt: time.Now()},
		}
		result := gateway.Result{GatewayTransactionID: goodID, Status: gateway.StatusDeclined}

		m.transactions.On("FindAllPending", ctx, 100).Return(pending, nil)
		m.gateway.On("GetTransaction", ctx, badID).Return(gateway.Result{}, gateway.ErrServerError)
		m.gateway.On("GetTransaction", ctx, goodID).Return(result, nil)
		m.settlement.On("ApplyGatewayResult", ctx, mock.Anything, result).
			Return(&model.Transaction{ID: 2, Status: model.TransactionStatusDeclined}, nil)

		err := svc.ReconcilePending(ctx)

		require.NoError(t, err)
		m.settlement.AssertNumberOfCalls(t, "ApplyGatewayResult", 1)
	})

	t.Run("cancellation mid-sweep finishes the current item before stopping", func(t *testing.T) {
		svc, m := newReconcilerService(t)

		cancellable, cancel := context.WithCancel(context.Background())

		firstID := "gw-first"
		secondID := "gw-second"
		pending := []model.Transaction{
			{ID: 1, Status: model.TransactionStatusPending, GatewayTransactionID: &firstID, CreatedAt: time.Now()},
			{ID: 2, Status: model.TransactionStatusPending, GatewayTransactionID: &secondID, CreatedAt: time.Now()},
		}
		result := gateway.Result{GatewayTransactionID: firstID, Status: gateway.StatusApproved}

		m.transactions.On("FindAllPending", cancellable, 100).Return(pending, nil)
		m.gateway.On("GetTransaction", mock.Anything, firstID).Run(func(args mock.Arguments) {
			cancel()
			assert.NoError(t, args.Get(0).(context.Context).Err())
		}).Return(result, nil)
		m.settlement.On("ApplyGatewayResult", mock.Anything, mock.Anything, result).
			Run(func(args mock.Arguments) {
				assert.NoError(t, args.Get(0).(context.Context).Err())
			}).
			Return(&model.Transaction{ID: 1, Status: model.TransactionStatusApproved}, nil)

		err := svc.ReconcilePending(cancellable)

		assert.ErrorIs(t, err, context.Canceled)
		m.settlement.AssertNumberOfCalls(t, "ApplyGatewayResult", 1)
		m.gateway.AssertNotCalled(t, "GetTransaction", mock.Anything, secondID)
	})

	t.Run("cancelled context stops the sweep", func(t *testing.T) {
		svc, m := newReconcilerService(t)

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		pending := []model.Transaction{{
			ID:                   1,
			Status:               model.TransactionStatusPending,
			GatewayTransactionID: &gatewayID,
			CreatedAt:            time.Now(),
		}}

		m.transactions.On("FindAllPending", cancelled, 100).Return(pending, nil)

		err := svc.ReconcilePending(cancelled)

		assert.ErrorIs(t, err, context.Canceled)
		m.gateway.AssertNotCalled(t, "GetTransaction", mock.Anything, mock.Anything)
	})

	t.Run("load failure is surfaced", func(t *testing.T) {
		svc, m := newReconcilerService(t)

		m.transactions.On("FindAllPending", ctx, 100).Return(nil, errors.New("connection reset"))

		err := svc.ReconcilePending(ctx)

		require.Error(t, err)
	})
}
