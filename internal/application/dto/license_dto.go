package dto

import "time"

// IssueLicenseRequest emisión de licencia por el super_admin.
// La nueva fila no expira las anteriores: la vigente se resuelve siempre por
// mayor expiryDate entre las activas.
type IssueLicenseRequest struct {
	ClientID   string     `json:"clientId"`
	ClientKind string     `json:"clientModel"` // "Company" | "User"
	Type       string     `json:"type"`        // limited | unlimited
	MaxUsers   *int       `json:"maxUsers"`    // obligatorio y >=1 si limited
	ExpiryDate *time.Time `json:"expiryDate"`
}

// LicenseResponse representación pública de una licencia.
type LicenseResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"clientId"`
	ClientKind string    `json:"clientModel"`
	Type       string    `json:"type"`
	MaxUsers   *int      `json:"maxUsers"`
	ExpiryDate time.Time `json:"expiryDate"`
	Status     string    `json:"status"`
	IssuedBy   string    `json:"issuedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}
