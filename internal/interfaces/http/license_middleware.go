package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/application/usecase"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/pkg/logger"
)

// Locals key para la licencia vigente en Fiber.
const LocalLicense = "current_license"

// CheckLicense devuelve un middleware que valida la licencia del tenant en cada
// petición (los super_admin pasan sin consulta). Debe usarse DESPUÉS de
// AuthMiddleware. En éxito deja la licencia en c.Locals para que las
// verificaciones de cupo río abajo no repitan la consulta.
//
// El vencimiento se descubre aquí, no por un barrido programado: si la licencia
// venció, este middleware la marca expired (escritura perezosa) y responde 403.
func CheckLicense(svc *usecase.LicenseService, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("no autorizado, inicie sesión"))
		}
		license, err := svc.CheckLicense(c.Context(), user)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNoClientContext),
				errors.Is(err, domain.ErrNoActiveLicense),
				errors.Is(err, domain.ErrLicenseExpired):
				return c.Status(fiber.StatusForbidden).JSON(dto.Fail(err.Error()))
			default:
				log.Error().Err(err).Str("user_id", user.ID).Msg("verificación de licencia")
				return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("error interno del servidor"))
			}
		}
		if license != nil {
			c.Locals(LocalLicense, license)
		}
		return c.Next()
	}
}

// GetLicense devuelve la licencia vigente del contexto (después de CheckLicense).
// nil para super_admin.
func GetLicense(c *fiber.Ctx) *entity.License {
	l, _ := c.Locals(LocalLicense).(*entity.License)
	return l
}
