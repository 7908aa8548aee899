package repository

import (
	"context"

	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// ListByCompany lista los usuarios rol company de una empresa.
	ListByCompany(companyID string) ([]*entity.User, error)
	// ListDirectClients lista los direct_client activos (vista admin).
	ListDirectClients() ([]*entity.User, error)
	// CountActiveClients cuenta asientos activos de un tenant: usuarios activos
	// con companyId = clientID o id = clientID, roles company/direct_client.
	// La misma fórmula cubre tenants Company y tenants direct_client.
	CountActiveClients(ctx context.Context, clientID string) (int, error)
	// DeactivateByCompany desactiva todos los usuarios de una empresa (cascada de borrado).
	DeactivateByCompany(ctx context.Context, companyID string) error
}
