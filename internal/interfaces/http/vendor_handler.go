package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/application/usecase"
)

// VendorHandler CRUD de proveedores del tenant autenticado.
// Las rutas pasan antes por CheckLicense y ClientContext.
type VendorHandler struct {
	uc *usecase.VendorUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// Create crea un proveedor del tenant.
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Create(GetClient(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"vendor": out}))
}

// List lista los proveedores del tenant.
func (h *VendorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetClient(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessCount(fiber.Map{"vendors": out}, len(out)))
}

// Update actualiza nombre y/o saldo (ajuste manual, sin guarda).
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Update(GetClient(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"vendor": out}))
}

// Delete borra un proveedor del tenant.
func (h *VendorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetClient(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessMessage("proveedor eliminado"))
}
