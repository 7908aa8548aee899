package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin   = "super_admin"
	RoleCompany      = "company"
	RoleDirectClient = "direct_client"
)

// ValidRole informa si el rol es uno de los tres permitidos.
func ValidRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleCompany || role == RoleDirectClient
}

// User representa un principal del sistema. CompanyID solo aplica al rol company.
// Los usuarios nunca se borran físicamente: se desactivan (IsActive=false).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string  // bcrypt hash, nunca plano en dominio después de persistir
	Role         string  // super_admin, company, direct_client
	CompanyID    *string // obligatorio si Role=company, nil en el resto
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
