package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tariqinfo304/PixsaLink/internal/application/auth"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
)

// AuthHandler maneja login, registro y perfil.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica email/password y emite el token. 401 con credenciales malas
// o cuenta inactiva; 403 por problemas de licencia (salvo super_admin).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("email y password son requeridos"))
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Register crea un principal de cualquier rol (ruta restringida a super_admin).
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Me devuelve el usuario autenticado y su licencia vigente (null para super_admin).
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := GetUser(c)
	out, err := h.uc.Me(c.Context(), user)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.Success(out))
}
