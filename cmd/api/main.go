package main

import (
	"context"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/api"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/api/middleware"
	v1 "github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/api/v1"
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
	"github.com/gofiber/fiber/v2"
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
			repository.NewCustomerRepository,
			repository.NewDeliveryRepository,
			repository.NewTransactionRepository,
			repository.NewTransactionManager,

			cache.NewProductCache,
			metrics.NewMetrics,
			publishers.NewStatusPublisher,

			service.NewCatalogService,
			service.NewSettlementService,
			service.NewCheckoutService,

			NewFiberApp,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, cfg *config.Config,
	rabbit *mq.RabbitMQ, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, m)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.QueueTransactionStatus}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("server exited", zap.Error(err))
				}
			}()

			logger.Info("checkout api started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping checkout api")
			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}
			return rabbit.Close()
		},
	})
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
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
