package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
	"github.com/tariqinfo304/PixsaLink/pkg/jwt"
)

// Locals key para el usuario autenticado en Fiber.
const LocalUser = "current_user"

// AuthMiddleware valida el Bearer Token JWT, recarga el principal desde la DB
// y lo deja en c.Locals. Releer el usuario en cada petición garantiza que la
// desactivación de cuenta surte efecto inmediato aunque el token siga vigente.
func AuthMiddleware(jwtSecret string, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("no autorizado, inicie sesión"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("formato esperado: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token vacío"))
		}
		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido o expirado"))
		}
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("error interno del servidor"))
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("el usuario ya no existe"))
		}
		if !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("cuenta desactivada"))
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// GetUser devuelve el usuario autenticado del contexto (después de AuthMiddleware).
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// RequireRole autoriza por pertenencia al conjunto de roles permitidos.
// Sin jerarquía: cada ruta declara sus roles de forma explícita, super_admin
// incluido cuando corresponde.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil || user.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("no autorizado, inicie sesión"))
		}
		for _, role := range allowedRoles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("no tiene permisos para esta operación"))
	}
}
