package entity

import "time"

// Tipos y estados de licencia.
const (
	LicenseLimited   = "limited"
	LicenseUnlimited = "unlimited"

	LicenseActive  = "active"
	LicenseExpired = "expired"
)

// ValidLicenseType informa si el tipo de licencia es válido.
func ValidLicenseType(t string) bool {
	return t == LicenseLimited || t == LicenseUnlimited
}

// License es una concesión temporal sobre exactamente un tenant (ClientID,
// ClientKind). Pueden coexistir varias filas activas para el mismo tenant; la
// vigente es siempre la activa con mayor ExpiryDate. El paso active->expired
// ocurre de forma perezosa, la primera vez que una petición observa el vencimiento.
type License struct {
	ID         string
	ClientID   string
	ClientKind string // "Company" | "User" (User = tenant direct_client)
	Type       string // limited | unlimited
	MaxUsers   *int   // obligatorio si Type=limited
	ExpiryDate time.Time
	Status     string // active | expired
	IssuedBy   string // ID del super_admin emisor
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired informa si la licencia está vencida respecto a now.
func (l *License) Expired(now time.Time) bool {
	return l.ExpiryDate.Before(now)
}
