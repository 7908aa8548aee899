package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorPayment es un evento inmutable del libro de pagos: debita el saldo del
// proveedor al crearse y lo acredita (mejor esfuerzo) al borrarse. No existe
// actualización: crear y borrar son los únicos eventos del ciclo de vida.
type VendorPayment struct {
	ID          string
	VendorID    string
	ClientID    string
	ClientKind  string // "Company" | "User"
	Amount      decimal.Decimal
	PaymentDate time.Time
	AddedBy     string // ID del usuario que registró el pago
	CreatedAt   time.Time
}
