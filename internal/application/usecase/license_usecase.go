package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

// LicenseUseCase emisión de licencias (autoridad del super_admin).
type LicenseUseCase struct {
	licenseRepo repository.LicenseRepository
	companyRepo repository.CompanyRepository
}

// NewLicenseUseCase construye el caso de uso de emisión.
func NewLicenseUseCase(licenseRepo repository.LicenseRepository, companyRepo repository.CompanyRepository) *LicenseUseCase {
	return &LicenseUseCase{licenseRepo: licenseRepo, companyRepo: companyRepo}
}

// Issue emite una licencia nueva con status=active. No expira ni reemplaza las
// filas activas anteriores del mismo tenant: la vigente se resuelve siempre por
// mayor expiryDate entre las activas. Para tenants Company refresca además los
// campos espejo de la empresa (solo informativos).
func (uc *LicenseUseCase) Issue(ctx context.Context, issuedBy string, in dto.IssueLicenseRequest) (*dto.LicenseResponse, error) {
	if in.ClientID == "" || in.ClientKind == "" || in.Type == "" || in.ExpiryDate == nil {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ClientKind(in.ClientKind).Valid() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidLicenseType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	var maxUsers *int
	if in.Type == entity.LicenseLimited {
		if in.MaxUsers == nil || *in.MaxUsers < 1 {
			return nil, domain.ErrInvalidInput
		}
		maxUsers = in.MaxUsers
	}
	now := time.Now()
	license := &entity.License{
		ID:         uuid.New().String(),
		ClientID:   in.ClientID,
		ClientKind: in.ClientKind,
		Type:       in.Type,
		MaxUsers:   maxUsers,
		ExpiryDate: *in.ExpiryDate,
		Status:     entity.LicenseActive,
		IssuedBy:   issuedBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.licenseRepo.Create(license); err != nil {
		return nil, err
	}
	if in.ClientKind == string(domain.ClientCompany) {
		if err := uc.companyRepo.UpdateLicenseMirror(ctx, in.ClientID, in.Type, *in.ExpiryDate); err != nil {
			return nil, err
		}
	}
	return toLicenseResponse(license), nil
}

func toLicenseResponse(l *entity.License) *dto.LicenseResponse {
	if l == nil {
		return nil
	}
	return &dto.LicenseResponse{
		ID:         l.ID,
		ClientID:   l.ClientID,
		ClientKind: l.ClientKind,
		Type:       l.Type,
		MaxUsers:   l.MaxUsers,
		ExpiryDate: l.ExpiryDate,
		Status:     l.Status,
		IssuedBy:   l.IssuedBy,
		CreatedAt:  l.CreatedAt,
	}
}
