package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
)

// respondDomainError traduce errores de dominio al envelope HTTP.
// Taxonomía: 400 entrada/duplicado/saldo insuficiente, 401 credencial/cuenta,
// 403 permisos y licenciamiento, 404 recurso ausente o fuera del tenant,
// 500 solo fallas inesperadas.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrInsufficientBalance):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrAccountDeactivated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrNoClientContext),
		errors.Is(err, domain.ErrNoActiveLicense),
		errors.Is(err, domain.ErrLicenseExpired),
		errors.Is(err, domain.ErrSeatLimitReached):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("error interno del servidor"))
	}
}
