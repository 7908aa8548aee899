package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

const companyColumns = `id, name, crn, email, license_type, license_expiry, is_active, created_by, created_at, updated_at`

// Create persiste una nueva empresa. Devuelve domain.ErrDuplicate si el CRN ya existe.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, crn, email, license_type, license_expiry, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.CRN, company.Email,
		company.LicenseType, company.LicenseExpiry, company.IsActive, company.CreatedBy,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCRN obtiene una empresa por CRN.
func (r *CompanyRepo) GetByCRN(crn string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE crn = $1`
	return r.scanOne(query, crn)
}

func (r *CompanyRepo) scanOne(query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Name, &c.CRN, &c.Email, &c.LicenseType, &c.LicenseExpiry,
		&c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, email = $3, license_type = $4, license_expiry = $5,
			is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.Name, company.Email, company.LicenseType, company.LicenseExpiry,
		company.IsActive, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// UpdateLicenseMirror refresca los campos espejo de licencia (solo informativos).
func (r *CompanyRepo) UpdateLicenseMirror(ctx context.Context, id, licenseType string, expiry time.Time) error {
	query := `UPDATE companies SET license_type = $2, license_expiry = $3, updated_at = now() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, licenseType, expiry)
	if err != nil {
		return fmt.Errorf("update license mirror: %w", err)
	}
	return nil
}

// List devuelve todas las empresas, las más recientes primero.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.CRN, &c.Email, &c.LicenseType, &c.LicenseExpiry,
			&c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por ID. Las cascadas (usuarios, licencias) son
// escrituras compensatorias explícitas a cargo del caso de uso.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
