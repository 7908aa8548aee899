package dto

// CreateCompanyUserRequest alta de usuario de empresa (consume un asiento de la licencia).
type CreateCompanyUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateCompanyUserRequest actualización parcial de nombre/email.
type UpdateCompanyUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
