package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/application/usecase"
)

// CompanyUserHandler gestión de usuarios de empresa por un admin de empresa.
// Todas las rutas pasan antes por RequireRole(company) y CheckLicense.
type CompanyUserHandler struct {
	uc *usecase.CompanyUserUseCase
}

// NewCompanyUserHandler construye el handler.
func NewCompanyUserHandler(uc *usecase.CompanyUserUseCase) *CompanyUserHandler {
	return &CompanyUserHandler{uc: uc}
}

func (h *CompanyUserHandler) companyID(c *fiber.Ctx) string {
	user := GetUser(c)
	if user == nil || user.CompanyID == nil {
		return ""
	}
	return *user.CompanyID
}

// List lista los usuarios de la empresa del solicitante.
func (h *CompanyUserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(h.companyID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessCount(fiber.Map{"users": out}, len(out)))
}

// Create crea un usuario de empresa. Consume un asiento: el cupo de la licencia
// limited se revalida dentro del caso de uso, justo antes del insert.
func (h *CompanyUserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Create(c.Context(), h.companyID(c), GetLicense(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"user": out}))
}

// Update actualiza nombre/email de un usuario de la empresa.
func (h *CompanyUserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Update(h.companyID(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"user": out}))
}

// Deactivate desactiva un usuario de la empresa (libera su asiento).
func (h *CompanyUserHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.uc.Deactivate(h.companyID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.Envelope{Status: "success", Data: fiber.Map{"user": out}, Message: "usuario desactivado"})
}
