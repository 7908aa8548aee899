package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vendor es un proveedor que pertenece a exactamente un tenant (ClientID +
// ClientKind). El saldo nunca queda negativo por la vía de pagos; la edición
// manual del saldo por el tenant es un camino aparte, sin guarda.
type Vendor struct {
	ID         string
	ClientID   string
	ClientKind string // "Company" | "User"
	Name       string
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
