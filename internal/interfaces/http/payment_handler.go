package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/application/ledger"
)

// PaymentHandler libro de pagos a proveedores del tenant autenticado.
// Las rutas pasan antes por CheckLicense y ClientContext.
type PaymentHandler struct {
	uc *ledger.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *ledger.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create registra un pago: debita el saldo del vendor en la misma transacción.
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	out, err := h.uc.Record(c.Context(), GetClient(c), GetUser(c).ID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.Map{"payment": out}))
}

// List lista los pagos del tenant, más recientes primero.
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetClient(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessCount(fiber.Map{"payments": out}, len(out)))
}

// Delete borra un pago y acredita el saldo del vendor (mejor esfuerzo).
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetClient(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessMessage("pago eliminado, saldo del proveedor restaurado"))
}
