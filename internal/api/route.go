package api

import (
	v1 "github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/api/v1"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/metrics"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, m *metrics.Metrics) {
	app.Use(metrics.Middleware(m))

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/v1/checkout", handler.Checkout)
	app.Get("/v1/transactions/:id", handler.GetTransaction)
	app.Post("/v1/transactions/:id/sync", handler.SyncTransaction)
	app.Get("/v1/products/:id", handler.GetProduct)
}
