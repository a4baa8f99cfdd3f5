package v1

import (
	"errors"
	"strconv"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/constants"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger   *zap.Logger
	checkout service.CheckoutService
	catalog  service.CatalogService
	validate *validator.Validate
}

func NewHandler(logger *zap.Logger, checkout service.CheckoutService, catalog service.CatalogService) *Handler {
	return &Handler{
		logger:   logger,
		checkout: checkout,
		catalog:  catalog,
		validate: validator.New(),
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Checkout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request CheckoutRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse checkout body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if err := h.validate.Struct(request); err != nil {
		h.logger.Warn("Checkout request validation failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeValidationFailed,
			"message": err.Error(),
		})
	}

	cmd := service.CreateTransactionCommand{
		ProductID:     request.ProductID,
		Quantity:      request.Quantity,
		CustomerEmail: request.CustomerEmail,
		CustomerName:  request.CustomerName,
		CustomerPhone: request.CustomerPhone,
		CardToken:     request.CardToken,
		CardBrand:     request.CardBrand,
		CardLastFour:  request.CardLastFour,
		Installments:  request.Installments,
		Address:       request.Address,
		City:          request.City,
		Region:        request.Region,
		PostalCode:    request.PostalCode,
		Country:       request.Country,
	}

	view, err := h.checkout.CreateTransaction(ctx, cmd)
	if err != nil {
		h.logger.Error("Checkout failed",
			zap.Error(err),
			zap.Int64("productID", request.ProductID),
			zap.String("customerEmail", request.CustomerEmail))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(TransactionResponse{Transaction: view})
}

func (h *Handler) SyncTransaction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": "invalid transaction id",
		})
	}

	view, err := h.checkout.SyncTransactionStatus(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(TransactionResponse{Transaction: view})
}

func (h *Handler) GetTransaction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": "invalid transaction id",
		})
	}

	view, err := h.checkout.GetTransaction(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(TransactionResponse{Transaction: view})
}

func (h *Handler) GetProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": "invalid product id",
		})
	}

	product, err := h.catalog.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"code":    constants.ErrCodeProductNotFound,
				"message": constants.GetErrorMessage(constants.ErrCodeProductNotFound),
			})
		}

		return err
	}

	return c.JSON(ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		PriceInCents: product.PriceInCents,
		Stock:        product.Stock,
	})
}
