package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/application/usecase"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake CompanyRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) GetByCRN(crn string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.CRN == crn {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) Update(c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) List() ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(f.companies))
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanyRepo) Delete(id string) error {
	delete(f.companies, id)
	return nil
}

func (f *fakeCompanyRepo) UpdateLicenseMirror(_ context.Context, id, licenseType string, expiry time.Time) error {
	if c, ok := f.companies[id]; ok {
		c.LicenseType = licenseType
		c.LicenseExpiry = &expiry
	}
	return nil
}

func newCompanyUC(companyRepo *fakeCompanyRepo, userRepo *fakeUserRepo, licenseRepo *fakeLicenseRepo) *usecase.CompanyUseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return usecase.NewCompanyUseCase(companyRepo, userRepo, licenseRepo, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — reglas de CRN
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyCreate_CRNValido_Crea(t *testing.T) {
	uc := newCompanyUC(newFakeCompanyRepo(), &fakeUserRepo{}, &fakeLicenseRepo{})

	out, err := uc.Create("admin-1", dto.CreateCompanyRequest{
		Name: "Acme SA", CRN: "1234567890", Email: "acme@acme.test",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "admin-1", out.CreatedBy)
	assert.True(t, out.IsActive)
}

func TestCompanyCreate_CRNMalFormado_Invalido(t *testing.T) {
	uc := newCompanyUC(newFakeCompanyRepo(), &fakeUserRepo{}, &fakeLicenseRepo{})

	for _, crn := range []string{"123", "12345678901", "12345abcde", ""} {
		_, err := uc.Create("admin-1", dto.CreateCompanyRequest{Name: "Acme", CRN: crn})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "CRN %q debe rechazarse", crn)
	}
}

func TestCompanyCreate_CRNDuplicado(t *testing.T) {
	repo := newFakeCompanyRepo()
	uc := newCompanyUC(repo, &fakeUserRepo{}, &fakeLicenseRepo{})

	_, err := uc.Create("admin-1", dto.CreateCompanyRequest{Name: "Acme", CRN: "1234567890"})
	require.NoError(t, err)

	_, err = uc.Create("admin-1", dto.CreateCompanyRequest{Name: "Otra", CRN: "1234567890"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — cascada compensatoria
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyDelete_CascadaDesactivaUsuariosYExpiraLicencias(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	userRepo := &fakeUserRepo{}
	licenseRepo := &fakeLicenseRepo{}
	uc := newCompanyUC(companyRepo, userRepo, licenseRepo)

	out, err := uc.Create("admin-1", dto.CreateCompanyRequest{Name: "Acme", CRN: "1234567890"})
	require.NoError(t, err)
	seedCompanyUsers(userRepo, out.ID, 2)
	licenseRepo.licenses = append(licenseRepo.licenses, &entity.License{
		ID: "l1", ClientID: out.ID, ClientKind: "Company",
		Type: entity.LicenseUnlimited, Status: entity.LicenseActive,
		ExpiryDate: time.Now().Add(24 * time.Hour),
	})

	require.NoError(t, uc.Delete(context.Background(), out.ID))

	assert.Empty(t, companyRepo.companies, "la empresa debe borrarse")
	for _, u := range userRepo.users {
		assert.False(t, u.IsActive, "los usuarios de la empresa quedan desactivados")
	}
	assert.Equal(t, entity.LicenseExpired, licenseRepo.licenses[0].Status,
		"las licencias de la empresa quedan expiradas")
}

func TestCompanyDelete_Inexistente_NotFound(t *testing.T) {
	uc := newCompanyUC(newFakeCompanyRepo(), &fakeUserRepo{}, &fakeLicenseRepo{})
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
