package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/erp-suite/erp-backend/internal/application/dto"
	"github.com/erp-suite/erp-backend/internal/application/usecase"
)

// AllowanceHandler maneja el CRUD de asignaciones contractuales (módulo HR, protegido).
type AllowanceHandler struct {
	uc *usecase.AllowanceUseCase
}

// NewAllowanceHandler construye el handler.
func NewAllowanceHandler(uc *usecase.AllowanceUseCase) *AllowanceHandler {
	return &AllowanceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear asignación contractual
// @Tags         allowances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AllowanceRequest  true  "Asignación"
// @Success      201  {object}  dto.Envelope{data=dto.AllowanceResponse}
// @Router       /hr/allowances [post]
func (h *AllowanceHandler) Create(c *fiber.Ctx) error {
	var in dto.AllowanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "asignación creada", out)
}

// List godoc
// @Summary      Listar asignaciones contractuales
// @Tags         allowances
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.Envelope{data=[]dto.AllowanceResponse}
// @Router       /hr/allowances [get]
func (h *AllowanceHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "asignaciones", out)
}

// GetByID godoc
// @Summary      Obtener asignación por ID
// @Tags         allowances
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.Envelope{data=dto.AllowanceResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /hr/allowances/{id} [get]
func (h *AllowanceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "asignación", out)
}

// Update godoc
// @Summary      Actualizar asignación contractual
// @Tags         allowances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la asignación"
// @Param        body  body  dto.AllowanceRequest  true  "Asignación"
// @Success      200  {object}  dto.Envelope{data=dto.AllowanceResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /hr/allowances/{id} [put]
func (h *AllowanceHandler) Update(c *fiber.Ctx) error {
	var in dto.AllowanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "asignación actualizada", out)
}

// Delete godoc
// @Summary      Eliminar asignación contractual
// @Tags         allowances
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /hr/allowances/{id} [delete]
func (h *AllowanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "asignación eliminada", nil)
}
