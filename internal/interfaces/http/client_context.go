package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
)

// Locals key para el contexto de tenant en Fiber.
const LocalClient = "client_ref"

// ClientContext deriva el tenant del usuario autenticado y lo deja en c.Locals.
// Debe usarse DESPUÉS de AuthMiddleware, en rutas que operan datos de tenant.
// Un super_admin no tiene tenant: estas rutas lo rechazan con 403 (su acceso a
// datos ajenos es de solo lectura, por las vistas de admin).
func ClientContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("no autorizado, inicie sesión"))
		}
		client, err := domain.ResolveClient(user)
		if err != nil || client.IsZero() {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("sin contexto de cliente asociado"))
		}
		c.Locals(LocalClient, client)
		return c.Next()
	}
}

// GetClient devuelve el contexto de tenant (después de ClientContext).
func GetClient(c *fiber.Ctx) domain.ClientRef {
	ref, _ := c.Locals(LocalClient).(domain.ClientRef)
	return ref
}
