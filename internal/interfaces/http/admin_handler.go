package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/application/usecase"
)

// AdminHandler operaciones exclusivas del super_admin: empresas, licencias y
// vistas de solo lectura a través de los tenants.
type AdminHandler struct {
	companyUC *usecase.CompanyUseCase
	licenseUC *usecase.LicenseUseCase
	adminUC   *usecase.AdminUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(companyUC *usecase.CompanyUseCase, licenseUC *usecase.LicenseUseCase, adminUC *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{companyUC: companyUC, licenseUC: licenseUC, adminUC: adminUC}
}

// CreateCompany crea una empresa con CRN único de 10 dígitos.
func (h *AdminHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.companyUC.Create(GetUser(c).ID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"company": out}))
}

// ListCompanies lista todas las empresas.
func (h *AdminHandler) ListCompanies(c *fiber.Ctx) error {
	out, err := h.companyUC.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessCount(fiber.Map{"companies": out}, len(out)))
}

// UpdateCompany aplica una actualización parcial.
func (h *AdminHandler) UpdateCompany(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.companyUC.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.Success(fiber.Map{"company": out}))
}

// DeleteCompany borra la empresa y dispara las cascadas compensatorias.
func (h *AdminHandler) DeleteCompany(c *fiber.Ctx) error {
	if err := h.companyUC.Delete(c.Context(), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessMessage("empresa eliminada"))
}

// IssueLicense emite una licencia nueva para un tenant Company o User.
func (h *AdminHandler) IssueLicense(c *fiber.Ctx) error {
	var in dto.IssueLicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.licenseUC.Issue(c.Context(), GetUser(c).ID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"license": out}))
}

// ListVendors vista de solo lectura de vendors de todos los tenants;
// ?companyId= filtra por empresa.
func (h *AdminHandler) ListVendors(c *fiber.Ctx) error {
	out, err := h.adminUC.ListVendors(c.Query("companyId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessCount(fiber.Map{"vendors": out}, len(out)))
}

// ListDirectClients lista los direct_client activos.
func (h *AdminHandler) ListDirectClients(c *fiber.Ctx) error {
	out, err := h.adminUC.ListDirectClients()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessCount(fiber.Map{"users": out}, len(out)))
}
