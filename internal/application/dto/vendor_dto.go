package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVendorRequest alta de proveedor para el tenant autenticado.
// Balance es el saldo inicial opcional (por defecto 0).
type CreateVendorRequest struct {
	Name    string           `json:"name"`
	Balance *decimal.Decimal `json:"balance"`
}

// UpdateVendorRequest actualización parcial. Balance permite el ajuste manual
// de saldo por el tenant: es un camino sin guarda, a diferencia de los pagos.
type UpdateVendorRequest struct {
	Name    *string          `json:"name"`
	Balance *decimal.Decimal `json:"balance"`
}

// VendorResponse representación pública de un proveedor.
type VendorResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"clientId"`
	ClientKind string          `json:"clientModel"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
