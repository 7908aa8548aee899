package repository

import (
	"context"

	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
)

// LicenseRepository define el puerto de persistencia para License (DIP).
type LicenseRepository interface {
	Create(license *entity.License) error
	// GetCurrent devuelve la licencia vigente del tenant: status=active con
	// ExpiryDate máxima. nil sin error si no hay ninguna.
	GetCurrent(ctx context.Context, client domain.ClientRef) (*entity.License, error)
	// GetLatestAny devuelve la última licencia emitida del tenant sin importar
	// su status (para mostrar en el perfil cuando ya no hay activa). nil sin
	// error si nunca se emitió ninguna.
	GetLatestAny(ctx context.Context, client domain.ClientRef) (*entity.License, error)
	// MarkExpired pasa una licencia active->expired de forma condicional e
	// idempotente: no hace nada (ni falla) si otra petición ya la expiró.
	MarkExpired(ctx context.Context, id string) error
	// ExpireAllForClient expira todas las licencias del tenant (cascada de borrado de empresa).
	ExpireAllForClient(ctx context.Context, client domain.ClientRef) error
}
