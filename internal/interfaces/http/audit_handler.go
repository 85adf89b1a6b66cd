package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/erp-suite/erp-backend/internal/application/dto"
	"github.com/erp-suite/erp-backend/internal/application/usecase"
)

// AuditHandler consulta del registro de auditoría (protegido).
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Consultar registro de auditoría
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        entity  query  string  false  "Filtrar por entidad (ej. store)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.Envelope{data=dto.AuditLogListResponse}
// @Router       /admin/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("entity"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "auditoría", out)
}
