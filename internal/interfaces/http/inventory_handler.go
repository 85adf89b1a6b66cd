package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/erp-suite/erp-backend/internal/application/dto"
	"github.com/erp-suite/erp-backend/internal/application/inventory"
)

// InventoryHandler maneja el registro de movimientos de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RegisterMovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario (IN/OUT)
// @Description  Rechaza movimientos contra almacenes INACTIVE.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "Movimiento"
// @Success      201  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /warehouse/stock/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if err := h.uc.RegisterMovement(c.Context(), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "movimiento registrado", nil)
}
