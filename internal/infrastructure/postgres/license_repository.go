package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

// LicenseRepo implementación del puerto LicenseRepository sobre PostgreSQL.
type LicenseRepo struct {
	pool *pgxpool.Pool
}

// NewLicenseRepository construye el adaptador de persistencia para licencias.
func NewLicenseRepository(pool *pgxpool.Pool) *LicenseRepo {
	return &LicenseRepo{pool: pool}
}

const licenseColumns = `id, client_id, client_kind, type, max_users, expiry_date, status, issued_by, created_at, updated_at`

// Create persiste una nueva licencia.
func (r *LicenseRepo) Create(license *entity.License) error {
	query := `
		INSERT INTO licenses (id, client_id, client_kind, type, max_users, expiry_date, status, issued_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		license.ID, license.ClientID, license.ClientKind, license.Type, license.MaxUsers,
		license.ExpiryDate, license.Status, license.IssuedBy, license.CreatedAt, license.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert license: %w", err)
	}
	return nil
}

// GetCurrent devuelve la licencia vigente del tenant: activa con mayor
// expiry_date. Pueden existir varias activas; gobierna la de vencimiento más lejano.
func (r *LicenseRepo) GetCurrent(ctx context.Context, client domain.ClientRef) (*entity.License, error) {
	query := `
		SELECT ` + licenseColumns + `
		FROM licenses
		WHERE client_id = $1 AND client_kind = $2 AND status = $3
		ORDER BY expiry_date DESC
		LIMIT 1`
	return r.scanOne(ctx, query, client.ID, string(client.Kind), entity.LicenseActive)
}

// GetLatestAny devuelve la última licencia emitida del tenant sin importar status.
func (r *LicenseRepo) GetLatestAny(ctx context.Context, client domain.ClientRef) (*entity.License, error) {
	query := `
		SELECT ` + licenseColumns + `
		FROM licenses
		WHERE client_id = $1 AND client_kind = $2
		ORDER BY expiry_date DESC
		LIMIT 1`
	return r.scanOne(ctx, query, client.ID, string(client.Kind))
}

func (r *LicenseRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.License, error) {
	var l entity.License
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&l.ID, &l.ClientID, &l.ClientKind, &l.Type, &l.MaxUsers,
		&l.ExpiryDate, &l.Status, &l.IssuedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license: %w", err)
	}
	return &l, nil
}

// MarkExpired pasa la licencia active->expired. El WHERE sobre status hace la
// transición idempotente: dos lectores concurrentes que observan el vencimiento
// pueden intentarla y solo una escritura surte efecto, sin error para la otra.
func (r *LicenseRepo) MarkExpired(ctx context.Context, id string) error {
	query := `UPDATE licenses SET status = $2, updated_at = now() WHERE id = $1 AND status = $3`
	_, err := r.pool.Exec(ctx, query, id, entity.LicenseExpired, entity.LicenseActive)
	if err != nil {
		return fmt.Errorf("mark license expired: %w", err)
	}
	return nil
}

// ExpireAllForClient expira todas las licencias del tenant (cascada de borrado de empresa).
func (r *LicenseRepo) ExpireAllForClient(ctx context.Context, client domain.ClientRef) error {
	query := `
		UPDATE licenses SET status = $3, updated_at = now()
		WHERE client_id = $1 AND client_kind = $2 AND status <> $3`
	_, err := r.pool.Exec(ctx, query, client.ID, string(client.Kind), entity.LicenseExpired)
	if err != nil {
		return fmt.Errorf("expire licenses for client: %w", err)
	}
	return nil
}
