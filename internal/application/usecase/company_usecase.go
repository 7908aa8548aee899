package usecase

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
	"github.com/tariqinfo304/PixsaLink/pkg/logger"
)

var crnPattern = regexp.MustCompile(`^\d{10}$`)

// CompanyUseCase reglas de negocio para empresas: CRUD del super_admin y la
// cascada de borrado (desactivar usuarios, expirar licencias).
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	licenseRepo repository.LicenseRepository
	log         *logger.Logger
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	licenseRepo repository.LicenseRepository,
	log *logger.Logger,
) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, userRepo: userRepo, licenseRepo: licenseRepo, log: log}
}

// Create crea una empresa. CRN de exactamente 10 dígitos, único.
// Devuelve domain.ErrDuplicate si el CRN ya existe.
func (uc *CompanyUseCase) Create(createdBy string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.CRN == "" {
		return nil, domain.ErrInvalidInput
	}
	if !crnPattern.MatchString(in.CRN) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.companyRepo.GetByCRN(in.CRN)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	licenseType := in.LicenseType
	if licenseType == "" {
		licenseType = entity.LicenseLimited
	}
	if !entity.ValidLicenseType(licenseType) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:            uuid.New().String(),
		Name:          in.Name,
		CRN:           in.CRN,
		Email:         in.Email,
		LicenseType:   licenseType,
		LicenseExpiry: in.LicenseExpiry,
		IsActive:      true,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista todas las empresas (panel admin).
func (uc *CompanyUseCase) List() ([]dto.CompanyResponse, error) {
	list, err := uc.companyRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

// Update aplica una actualización parcial sobre la empresa.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}
	if in.LicenseType != nil {
		if !entity.ValidLicenseType(*in.LicenseType) {
			return nil, domain.ErrInvalidInput
		}
		company.LicenseType = *in.LicenseType
	}
	if in.LicenseExpiry != nil {
		company.LicenseExpiry = in.LicenseExpiry
	}
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete borra la empresa y dispara la cascada compensatoria: desactiva todos
// sus usuarios y expira todas sus licencias. La cascada es de mejor esfuerzo:
// un paso fallido se registra pero no revierte el borrado principal.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if err := uc.companyRepo.Delete(id); err != nil {
		return err
	}
	if err := uc.userRepo.DeactivateByCompany(ctx, id); err != nil {
		uc.log.Warn().Err(err).Str("company_id", id).Msg("cascada: desactivar usuarios de la empresa")
	}
	client := domain.ClientRef{Kind: domain.ClientCompany, ID: id}
	if err := uc.licenseRepo.ExpireAllForClient(ctx, client); err != nil {
		uc.log.Warn().Err(err).Str("company_id", id).Msg("cascada: expirar licencias de la empresa")
	}
	return nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		CRN:           c.CRN,
		Email:         c.Email,
		LicenseType:   c.LicenseType,
		LicenseExpiry: c.LicenseExpiry,
		IsActive:      c.IsActive,
		CreatedBy:     c.CreatedBy,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
