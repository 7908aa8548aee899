package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

// VendorUseCase CRUD de proveedores con alcance de tenant. Solo el tenant dueño
// crea, edita o borra sus vendors; el super_admin tiene vista de solo lectura
// por AdminUseCase.
type VendorUseCase struct {
	vendorRepo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(vendorRepo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo}
}

// Create crea un proveedor del tenant con saldo inicial opcional.
func (uc *VendorUseCase) Create(client domain.ClientRef, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	balance := decimal.Zero
	if in.Balance != nil {
		balance = *in.Balance
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:         uuid.New().String(),
		ClientID:   client.ID,
		ClientKind: string(client.Kind),
		Name:       in.Name,
		Balance:    balance,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.vendorRepo.Create(vendor); err != nil {
		return nil, err
	}
	return ToVendorResponse(vendor), nil
}

// List lista los proveedores del tenant.
func (uc *VendorUseCase) List(client domain.ClientRef) ([]dto.VendorResponse, error) {
	vendors, err := uc.vendorRepo.ListByClient(client)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		items = append(items, *ToVendorResponse(v))
	}
	return items, nil
}

// Update actualiza nombre y/o saldo. El ajuste directo de saldo es un camino
// deliberadamente sin guarda: solo los pagos pasan por el libro.
func (uc *VendorUseCase) Update(client domain.ClientRef, id string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.vendorRepo.GetByIDAndClient(id, client)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		vendor.Name = *in.Name
	}
	if in.Balance != nil {
		vendor.Balance = *in.Balance
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.vendorRepo.Update(vendor); err != nil {
		return nil, err
	}
	return ToVendorResponse(vendor), nil
}

// Delete borra un proveedor del tenant.
func (uc *VendorUseCase) Delete(client domain.ClientRef, id string) error {
	deleted, err := uc.vendorRepo.DeleteByIDAndClient(id, client)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// ToVendorResponse convierte la entidad a su representación pública.
func ToVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
	return &dto.VendorResponse{
		ID:         v.ID,
		ClientID:   v.ClientID,
		ClientKind: v.ClientKind,
		Name:       v.Name,
		Balance:    v.Balance,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
