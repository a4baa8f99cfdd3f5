package main

import (
	"context"
	"time"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/cache"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/config"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/metrics"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/publishers"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/repository"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/service"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/gateway"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/httpclient"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/mq"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/mysql"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			NewConnectionDB,
			NewMQConnection,
			NewMQPublisher,
			cache.NewRedisClient,
			NewGateway,

			repository.NewProductRepository,
			repository.NewTransactionRepository,
			repository.NewTransactionManager,

			cache.NewProductCache,
			metrics.NewMetrics,
			publishers.NewStatusPublisher,

			service.NewSettlementService,
			service.NewReconcilerService,
		),
		fx.Invoke(runReconciler),
	).Run()
}

func runReconciler(cfg *config.Config, reconciler service.ReconcilerService, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.QueueTransactionStatus}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				defer close(done)

				ticker := time.NewTicker(cfg.Reconciler.Interval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						if err := reconciler.ReconcilePending(appCtx); err != nil {
							logger.Error("reconciliation sweep failed", zap.Error(err))
						}
					case <-appCtx.Done():
						logger.Info("reconciler context cancelled")
						return
					}
				}
			}()

			logger.Info("reconciler started", zap.Duration("interval", cfg.Reconciler.Interval))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping reconciler")
			cancel()

			// Let an in-flight sweep item finish before tearing down.
			select {
			case <-done:
			case <-ctx.Done():
			}

			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewGateway(cfg *config.Config) gateway.Gateway {
	client := httpclient.NewHTTPClient(cfg.Gateway.Timeout)
	return gateway.NewGateway(cfg.Gateway, client)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}
