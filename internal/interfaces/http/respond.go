package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/erp-suite/erp-backend/internal/application/dto"
	"github.com/erp-suite/erp-backend/internal/domain"
)

// respondData envuelve una respuesta exitosa en el envelope estándar.
func respondData(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError traduce errores de dominio al envelope HTTP. Ningún error de
// dominio se traga: lo que no está en la taxonomía sale como 500 INTERNAL.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	code := "INTERNAL"
	message := err.Error()

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrBalanceConflict):
		status, code = fiber.StatusConflict, "BALANCE_CONFLICT"
		message = "el almacén conserva saldo de inventario; libere el saldo o repita con force=true"
	case errors.Is(err, domain.ErrStoreInactive):
		status, code = fiber.StatusConflict, "STORE_INACTIVE"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code = fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	}

	return c.Status(status).JSON(dto.Envelope{
		Success: false,
		Message: message,
		Code:    code,
	})
}
