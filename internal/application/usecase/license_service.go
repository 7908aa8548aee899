package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

// LicenseService es el único punto de la aplicación que conoce la lógica de
// vigencia de licencias. La validez se rederiva en cada petición (no hay caché):
// el vencimiento y las acciones del admin (borrado de empresa, reemisión) deben
// surtir efecto de inmediato, sin canal de invalidación aparte.
type LicenseService struct {
	licenseRepo repository.LicenseRepository
	now         func() time.Time
}

// NewLicenseService construye el servicio de licencias.
func NewLicenseService(licenseRepo repository.LicenseRepository) *LicenseService {
	return &LicenseService{licenseRepo: licenseRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (s *LicenseService) WithClock(now func() time.Time) *LicenseService {
	s.now = now
	return s
}

// CheckLicense valida el acceso del usuario según su licencia vigente.
//
//  1. super_admin pasa siempre, sin consulta.
//  2. Resuelve el tenant; domain.ErrNoClientContext si no se puede.
//  3. Busca la licencia vigente (activa con mayor expiryDate);
//     domain.ErrNoActiveLicense si no hay.
//  4. Si ya venció, la marca expired (escritura perezosa e idempotente) y
//     devuelve domain.ErrLicenseExpired. Un fallo al persistir la transición
//     se devuelve como error de infraestructura, no enmascara el vencimiento.
//  5. En éxito devuelve la licencia para que el cupo de asientos se verifique
//     en el punto de creación sin una segunda consulta.
//
// El cupo de asientos NO corta aquí: las operaciones de lectura sobre recursos
// existentes pasan aunque la licencia esté llena. Solo la creación de un nuevo
// asiento (alta de usuario de empresa) revalida el cupo.
func (s *LicenseService) CheckLicense(ctx context.Context, user *entity.User) (*entity.License, error) {
	if user.Role == entity.RoleSuperAdmin {
		return nil, nil
	}
	client, err := domain.ResolveClient(user)
	if err != nil {
		return nil, err
	}
	license, err := s.licenseRepo.GetCurrent(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("consultar licencia vigente: %w", err)
	}
	if license == nil {
		return nil, domain.ErrNoActiveLicense
	}
	if license.Expired(s.now()) {
		if err := s.licenseRepo.MarkExpired(ctx, license.ID); err != nil {
			return nil, fmt.Errorf("marcar licencia expirada: %w", err)
		}
		return nil, domain.ErrLicenseExpired
	}
	return license, nil
}

// CurrentLicense devuelve la licencia a mostrar en el perfil del usuario:
// la vigente si existe (expirándola perezosamente si corresponde) o, en su
// defecto, la última emitida aunque esté vencida. nil para super_admin o
// tenants sin licencias.
func (s *LicenseService) CurrentLicense(ctx context.Context, user *entity.User) (*entity.License, error) {
	if user.Role == entity.RoleSuperAdmin {
		return nil, nil
	}
	client, err := domain.ResolveClient(user)
	if err != nil {
		return nil, err
	}
	license, err := s.licenseRepo.GetCurrent(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("consultar licencia vigente: %w", err)
	}
	if license != nil && license.Expired(s.now()) {
		if err := s.licenseRepo.MarkExpired(ctx, license.ID); err != nil {
			return nil, fmt.Errorf("marcar licencia expirada: %w", err)
		}
		license = nil
	}
	if license != nil {
		return license, nil
	}
	// Sin licencia activa: mostrar la última emitida (probablemente expired).
	latest, err := s.licenseRepo.GetLatestAny(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("consultar última licencia: %w", err)
	}
	return latest, nil
}
