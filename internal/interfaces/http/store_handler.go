package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/erp-suite/erp-backend/internal/application/dto"
	"github.com/erp-suite/erp-backend/internal/application/report"
	"github.com/erp-suite/erp-backend/internal/application/store"
	"github.com/erp-suite/erp-backend/internal/domain/entity"
)

// StoreHandler maneja las peticiones HTTP de almacenes de proyecto (protegido).
type StoreHandler struct {
	uc       *store.LifecycleUseCase
	reportUC *report.StoreReportUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *store.LifecycleUseCase, reportUC *report.StoreReportUseCase) *StoreHandler {
	return &StoreHandler{uc: uc, reportUC: reportUC}
}

// Create godoc
// @Summary      Crear almacén
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StoreRequest  true  "Datos del almacén"
// @Success      201   {object}  dto.Envelope{data=dto.StoreResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /warehouse/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.StoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, "almacén creado", out)
}

// List godoc
// @Summary      Listar almacenes (resumen)
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.StoreSummary}
// @Router       /warehouse/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "almacenes", out)
}

// GetByID godoc
// @Summary      Obtener almacén por ID
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  dto.Envelope{data=dto.StoreResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /warehouse/stores/{id} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Code: "MISSING_ID", Message: "id es requerido",
		})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "almacén", out)
}

// ListByProject godoc
// @Summary      Listar almacenes de un proyecto
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        projectCode  path  int  true  "Código del proyecto"
// @Success      200  {object}  dto.Envelope{data=[]dto.StoreResponse}
// @Router       /warehouse/stores/project/{projectCode} [get]
func (h *StoreHandler) ListByProject(c *fiber.Ctx) error {
	code, err := c.ParamsInt("projectCode")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Code: "VALIDATION", Message: "projectCode debe ser numérico",
		})
	}
	// Proyecto desconocido o sin almacenes: lista vacía, no 404.
	out, err := h.uc.ListByProject(c.Context(), code)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "almacenes del proyecto", out)
}

// Update godoc
// @Summary      Actualizar almacén
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del almacén"
// @Param        body  body  dto.StoreRequest true  "Datos del almacén"
// @Success      200   {object}  dto.Envelope{data=dto.StoreResponse}
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope  "cambio de projectCode rechazado"
// @Router       /warehouse/stores/{id} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.StoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "almacén actualizado", out)
}

// Deactivate godoc
// @Summary      Desactivar almacén (suave o forzado)
// @Description  force=false rechaza con 409 si el almacén conserva saldo; force=true omite la guardia y exige rol ADMIN.
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del almacén"
// @Param        force  query  bool    false  "Omitir guardia de saldo"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /warehouse/stores/{id} [delete]
func (h *StoreHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	force := c.QueryBool("force", false)

	// El camino forzado exige rol administrativo, más estricto que el suave.
	if force && GetRole(c) != entity.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.Envelope{
			Success: false, Code: "FORBIDDEN",
			Message: "la desactivación forzada requiere rol ADMIN",
		})
	}

	if err := h.uc.Deactivate(c.Context(), GetUserID(c), id, force); err != nil {
		return respondError(c, err)
	}
	msg := "almacén desactivado"
	if force {
		msg = "almacén desactivado (forzado)"
	}
	return respondData(c, fiber.StatusOK, msg, nil)
}

// Report godoc
// @Summary      Reporte PDF de saldos del almacén
// @Tags         stores
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.Envelope
// @Router       /warehouse/stores/{id}/report [get]
func (h *StoreHandler) Report(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.reportUC.Generate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="almacen-`+id+`.pdf"`)
	return c.Status(fiber.StatusOK).Send(pdfBytes)
}
