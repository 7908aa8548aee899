package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación de VendorRepository sobre PostgreSQL (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de vendors. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `id, client_id, client_kind, name, balance, created_at, updated_at`

// Create persiste un nuevo proveedor.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, client_id, client_kind, name, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.ClientID, vendor.ClientKind, vendor.Name, vendor.Balance,
		vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByIDAndClient obtiene un proveedor del tenant. nil si no existe o es de otro tenant.
func (r *VendorRepo) GetByIDAndClient(id string, client domain.ClientRef) (*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors WHERE id = $1 AND client_id = $2 AND client_kind = $3`
	return r.scanOne(context.Background(), query, id, client.ID, string(client.Kind))
}

// GetForUpdate obtiene el proveedor y bloquea su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción: serializa las mutaciones de saldo.
func (r *VendorRepo) GetForUpdate(ctx context.Context, id string) (*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors WHERE id = $1
		FOR UPDATE`
	return r.scanOne(ctx, query, id)
}

func (r *VendorRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.ClientID, &v.ClientKind, &v.Name, &v.Balance, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// ListByClient lista los proveedores del tenant.
func (r *VendorRepo) ListByClient(client domain.ClientRef) ([]*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors WHERE client_id = $1 AND client_kind = $2 ORDER BY created_at DESC`
	return r.scanMany(query, client.ID, string(client.Kind))
}

// ListAll lista vendors de todos los tenants; companyID opcional filtra por empresa.
func (r *VendorRepo) ListAll(companyID string) ([]*entity.Vendor, error) {
	if companyID != "" {
		query := `
			SELECT ` + vendorColumns + `
			FROM vendors WHERE client_id = $1 AND client_kind = $2 ORDER BY created_at DESC`
		return r.scanMany(query, companyID, string(domain.ClientCompany))
	}
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY created_at DESC`
	return r.scanMany(query)
}

func (r *VendorRepo) scanMany(query string, args ...any) ([]*entity.Vendor, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.ClientID, &v.ClientKind, &v.Name, &v.Balance, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza nombre y saldo de un proveedor.
func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, balance = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.Balance, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// UpdateBalance escribe el nuevo saldo. Usar solo con la fila ya bloqueada.
func (r *VendorRepo) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	query := `UPDATE vendors SET balance = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, balance)
	if err != nil {
		return fmt.Errorf("update vendor balance: %w", err)
	}
	return nil
}

// DeleteByIDAndClient borra un proveedor del tenant. Devuelve false si no existía.
func (r *VendorRepo) DeleteByIDAndClient(id string, client domain.ClientRef) (bool, error) {
	query := `DELETE FROM vendors WHERE id = $1 AND client_id = $2 AND client_kind = $3`
	cmd, err := r.q.Exec(context.Background(), query, id, client.ID, string(client.Kind))
	if err != nil {
		return false, fmt.Errorf("delete vendor: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
