package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// CompanyUserUseCase aprovisionamiento de usuarios de empresa por un admin de
// empresa. El alta consume un asiento de la licencia limited, así que revalida
// el cupo justo antes de insertar (la puerta de licencia no corta lecturas).
type CompanyUserUseCase struct {
	userRepo repository.UserRepository
}

// NewCompanyUserUseCase construye el caso de uso.
func NewCompanyUserUseCase(userRepo repository.UserRepository) *CompanyUserUseCase {
	return &CompanyUserUseCase{userRepo: userRepo}
}

// List lista los usuarios rol company de la empresa del solicitante.
func (uc *CompanyUserUseCase) List(companyID string) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Create crea un usuario rol company dentro de la empresa del solicitante.
// license es la licencia vigente que dejó la puerta en el contexto; si es
// limited se recuenta el cupo aquí, en el punto de creación del asiento, y se
// devuelve domain.ErrSeatLimitReached al llegar al tope.
func (uc *CompanyUserUseCase) Create(ctx context.Context, companyID string, license *entity.License, in dto.CreateCompanyUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	if license != nil && license.Type == entity.LicenseLimited && license.MaxUsers != nil {
		count, err := uc.userRepo.CountActiveClients(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if count >= *license.MaxUsers {
			return nil, domain.ErrSeatLimitReached
		}
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleCompany,
		CompanyID:    &companyID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update actualiza nombre/email de un usuario de la propia empresa.
// Un usuario de otra empresa se comporta como inexistente.
func (uc *CompanyUserUseCase) Update(companyID, userID string, in dto.UpdateCompanyUserRequest) (*dto.UserResponse, error) {
	user, err := uc.findCompanyUser(companyID, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Deactivate desactiva (nunca borra) un usuario de la propia empresa.
// El asiento queda liberado para el recuento de la licencia.
func (uc *CompanyUserUseCase) Deactivate(companyID, userID string) (*dto.UserResponse, error) {
	user, err := uc.findCompanyUser(companyID, userID)
	if err != nil {
		return nil, err
	}
	user.IsActive = false
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (uc *CompanyUserUseCase) findCompanyUser(companyID, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != entity.RoleCompany || user.CompanyID == nil || *user.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
