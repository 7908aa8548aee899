package repository

import (
	"context"
	"time"

	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByCRN(crn string) (*entity.Company, error)
	Update(company *entity.Company) error
	List() ([]*entity.Company, error)
	Delete(id string) error
	// UpdateLicenseMirror refresca los campos espejo licenseType/licenseExpiry.
	// Solo para listados; no son autoritativos.
	UpdateLicenseMirror(ctx context.Context, id, licenseType string, expiry time.Time) error
}
