package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/application/usecase"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
	"github.com/tariqinfo304/PixsaLink/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, registro y perfil.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	licenseSvc  *usecase.LicenseService
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	licenseSvc *usecase.LicenseService,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, licenseSvc: licenseSvc, jwtCfg: jwtCfg}
}

// Login verifica email/password y estado de cuenta, valida la licencia del
// tenant (los super_admin no la necesitan) y emite el JWT.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}
	if user.Role != entity.RoleSuperAdmin {
		if _, err := uc.licenseSvc.CheckLicense(ctx, user); err != nil {
			return nil, err
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Status: "success",
		Token:  token,
		Role:   user.Role,
		User:   *ToUserResponse(user),
	}, nil
}

// Register crea un principal de cualquier rol (operación exclusiva del
// super_admin; la ruta lo garantiza). Hashea el password con bcrypt.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if in.Role == entity.RoleCompany && in.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	var companyID *string
	if in.Role == entity.RoleCompany {
		company, err := uc.companyRepo.GetByID(in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound // la empresa no existe
		}
		companyID = &in.CompanyID
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
		Role:         in.Role,
		CompanyID:    companyID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Status: "success",
		Token:  token,
		Role:   user.Role,
		User:   *ToUserResponse(user),
	}, nil
}

// Me devuelve el perfil del usuario autenticado junto a su licencia vigente
// (o la última emitida si ya venció; nil para super_admin).
func (uc *AuthUseCase) Me(ctx context.Context, user *entity.User) (*dto.MeResponse, error) {
	license, err := uc.licenseSvc.CurrentLicense(ctx, user)
	if err != nil && !errors.Is(err, domain.ErrNoClientContext) {
		return nil, err
	}
	return &dto.MeResponse{
		User:    *ToUserResponse(user),
		License: ToLicenseResponse(license),
	}, nil
}

// ToUserResponse convierte la entidad a su representación pública.
func ToUserResponse(u *entity.User) *dto.UserResponse {
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

// ToLicenseResponse convierte la entidad a su representación pública.
func ToLicenseResponse(l *entity.License) *dto.LicenseResponse {
	if l == nil {
		return nil
	}
	return &dto.LicenseResponse{
		ID:         l.ID,
		ClientID:   l.ClientID,
		ClientKind: l.ClientKind,
		Type:       l.Type,
		MaxUsers:   l.MaxUsers,
		ExpiryDate: l.ExpiryDate,
		Status:     l.Status,
		IssuedBy:   l.IssuedBy,
		CreatedAt:  l.CreatedAt,
	}
}
