package dto

import "time"

// CreateCompanyRequest alta de empresa por el super_admin.
// licenseType/licenseExpiry son espejos opcionales para el listado; la licencia
// real se emite aparte con issue-license.
type CreateCompanyRequest struct {
	Name          string     `json:"name"`
	CRN           string     `json:"crn"`
	Email         string     `json:"email"`
	LicenseType   string     `json:"licenseType"`
	LicenseExpiry *time.Time `json:"licenseExpiry"`
}

// UpdateCompanyRequest actualización parcial: solo se tocan los campos presentes.
type UpdateCompanyRequest struct {
	Name          *string    `json:"name"`
	Email         *string    `json:"email"`
	IsActive      *bool      `json:"isActive"`
	LicenseType   *string    `json:"licenseType"`
	LicenseExpiry *time.Time `json:"licenseExpiry"`
}

// CompanyResponse representación pública de una empresa.
type CompanyResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	CRN           string     `json:"crn"`
	Email         string     `json:"email"`
	LicenseType   string     `json:"licenseType"`
	LicenseExpiry *time.Time `json:"licenseExpiry"`
	IsActive      bool       `json:"isActive"`
	CreatedBy     string     `json:"createdBy"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
