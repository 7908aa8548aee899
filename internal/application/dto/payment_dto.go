package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest registro de un pago a proveedor.
// PaymentDate opcional: por defecto, el momento del registro.
type CreatePaymentRequest struct {
	VendorID    string          `json:"vendorId"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate *time.Time      `json:"paymentDate"`
}

// PaymentResponse representación pública de un pago.
type PaymentResponse struct {
	ID          string          `json:"id"`
	VendorID    string          `json:"vendorId"`
	ClientID    string          `json:"clientId"`
	ClientKind  string          `json:"clientModel"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	AddedBy     string          `json:"addedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}
