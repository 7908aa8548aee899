package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
)

// VendorRepository define el puerto de persistencia para Vendor (DIP).
// Los métodos *ByClient filtran siempre por tenant: un vendor ajeno se comporta
// como inexistente (nil), nunca como prohibido.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByIDAndClient(id string, client domain.ClientRef) (*entity.Vendor, error)
	ListByClient(client domain.ClientRef) ([]*entity.Vendor, error)
	// ListAll lista vendors de todos los tenants; companyID opcional filtra por
	// una empresa (vista de solo lectura del super_admin).
	ListAll(companyID string) ([]*entity.Vendor, error)
	Update(vendor *entity.Vendor) error
	DeleteByIDAndClient(id string, client domain.ClientRef) (bool, error)

	// GetForUpdate bloquea la fila del vendor (SELECT FOR UPDATE) dentro de la
	// transacción en curso. Serializa las mutaciones de saldo por vendor.
	GetForUpdate(ctx context.Context, id string) (*entity.Vendor, error)
	// UpdateBalance escribe el nuevo saldo. Usar solo con la fila bloqueada.
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error
}
