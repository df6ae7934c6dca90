package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/salon-api/internal/application/dto"
	"github.com/glowdesk/salon-api/internal/application/inventory"
	"github.com/glowdesk/salon-api/internal/domain"
)

// InventoryHandler maneja los movimientos de stock (protegido). Es la
// única superficie HTTP que modifica Quantity.
type InventoryHandler struct {
	uc *inventory.StockMovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockMovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RecordUsage godoc
// @Summary      Registrar uso de producto
// @Description  Descuenta stock y appendea la entrada "used" en la misma transacción.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordUsageRequest  true  "product_id, quantity, reason opcional"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/usage [post]
func (h *InventoryHandler) RecordUsage(c *fiber.Ctx) error {
	var in dto.RecordUsageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.RecordUsage(c.Context(), in.ProductID, in.Quantity, in.Reason, GetUserID(c))
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(res))
}

// Restock godoc
// @Summary      Registrar reposición de producto
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RestockRequest  true  "product_id, quantity, reason opcional"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/restock [post]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Restock(c.Context(), in.ProductID, in.Quantity, in.Reason, GetUserID(c))
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(res))
}

// movementError mapea los errores del mutador a HTTP.
func movementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toMovementResponse(res *inventory.MovementResult) dto.MovementResponse {
	return dto.MovementResponse{
		Product: dto.ProductResponse{
			ID:          res.Product.ID,
			Name:        res.Product.Name,
			Quantity:    res.Product.Quantity,
			Price:       res.Product.Price,
			Supplier:    res.Product.Supplier,
			Category:    res.Product.Category,
			Description: res.Product.Description,
			CreatedAt:   res.Product.CreatedAt,
			UpdatedAt:   res.Product.UpdatedAt,
		},
		Entry: dto.HistoryEntryResponse{
			ID:              res.Entry.ID,
			ProductID:       res.Entry.ProductID,
			Action:          res.Entry.Action,
			QuantityChanged: res.Entry.QuantityChanged,
			Reason:          res.Entry.Reason,
			Timestamp:       res.Entry.Timestamp,
		},
	}
}
