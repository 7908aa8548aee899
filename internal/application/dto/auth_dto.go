package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest alta de un principal (solo super_admin puede registrar).
type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	CompanyID string `json:"companyId"` // obligatorio si role=company
}

// UserResponse representación pública de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CompanyID *string   `json:"companyId"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse respuesta de login/register: token y rol al nivel superior,
// como espera el cliente web.
type AuthResponse struct {
	Status string       `json:"status"`
	Token  string       `json:"token"`
	Role   string       `json:"role"`
	User   UserResponse `json:"user"`
}

// MeResponse usuario autenticado más su licencia vigente (nil para super_admin).
type MeResponse struct {
	User    UserResponse     `json:"user"`
	License *LicenseResponse `json:"license"`
}
