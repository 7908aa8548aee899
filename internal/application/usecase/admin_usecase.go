package usecase

import (
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

// AdminUseCase vistas de solo lectura del super_admin a través de los tenants:
// todos los vendors (opcionalmente filtrados por empresa) y los direct_client.
type AdminUseCase struct {
	vendorRepo repository.VendorRepository
	userRepo   repository.UserRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(vendorRepo repository.VendorRepository, userRepo repository.UserRepository) *AdminUseCase {
	return &AdminUseCase{vendorRepo: vendorRepo, userRepo: userRepo}
}

// ListVendors lista vendors de todos los tenants; companyID vacío = todos.
func (uc *AdminUseCase) ListVendors(companyID string) ([]dto.VendorResponse, error) {
	vendors, err := uc.vendorRepo.ListAll(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		items = append(items, *ToVendorResponse(v))
	}
	return items, nil
}

// ListDirectClients lista los direct_client activos.
func (uc *AdminUseCase) ListDirectClients() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.ListDirectClients()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}
