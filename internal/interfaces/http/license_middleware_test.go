package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tariqinfo304/PixsaLink/internal/application/usecase"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	apphttp "github.com/tariqinfo304/PixsaLink/internal/interfaces/http"
	"github.com/tariqinfo304/PixsaLink/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake LicenseRepository — alimenta al LicenseService real bajo el middleware
// ──────────────────────────────────────────────────────────────────────────────

type stubLicenseRepo struct {
	licenses []*entity.License
}

func (s *stubLicenseRepo) Create(l *entity.License) error { return nil }

func (s *stubLicenseRepo) GetCurrent(_ context.Context, client domain.ClientRef) (*entity.License, error) {
	var current *entity.License
	for _, l := range s.licenses {
		if l.ClientID != client.ID || l.ClientKind != string(client.Kind) || l.Status != entity.LicenseActive {
			continue
		}
		if current == nil || l.ExpiryDate.After(current.ExpiryDate) {
			current = l
		}
	}
	return current, nil
}

func (s *stubLicenseRepo) GetLatestAny(context.Context, domain.ClientRef) (*entity.License, error) {
	return nil, nil
}

func (s *stubLicenseRepo) MarkExpired(_ context.Context, id string) error {
	for _, l := range s.licenses {
		if l.ID == id && l.Status == entity.LicenseActive {
			l.Status = entity.LicenseExpired
		}
	}
	return nil
}

func (s *stubLicenseRepo) ExpireAllForClient(context.Context, domain.ClientRef) error { return nil }

// buildLicensedApp monta AuthMiddleware + CheckLicense + ClientContext sobre
// una ruta dummy, como las rutas de vendors/pagos reales.
func buildLicensedApp(userRepo *stubUserRepo, licenseRepo *stubLicenseRepo) *fiber.App {
	svc := usecase.NewLicenseService(licenseRepo)
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	app := fiber.New()
	app.Get("/tenant-data",
		apphttp.AuthMiddleware(testJWTSecret, userRepo),
		apphttp.CheckLicense(svc, log),
		apphttp.ClientContext(),
		func(c *fiber.Ctx) error {
			client := apphttp.GetClient(c)
			return c.JSON(fiber.Map{
				"clientId":   client.ID,
				"clientKind": string(client.Kind),
			})
		},
	)
	return app
}

func activeLicense(clientID string, kind domain.ClientKind, expiry time.Time) *entity.License {
	return &entity.License{
		ID: "l-" + clientID, ClientID: clientID, ClientKind: string(kind),
		Type: entity.LicenseUnlimited, Status: entity.LicenseActive, ExpiryDate: expiry,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la puerta de licencia
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckLicense_DirectClientConLicencia_Pasa(t *testing.T) {
	userRepo := repoWithUser(entity.RoleDirectClient, true)
	licenseRepo := &stubLicenseRepo{licenses: []*entity.License{
		activeLicense(testUserID, domain.ClientUser, time.Now().Add(24*time.Hour)),
	}}
	app := buildLicensedApp(userRepo, licenseRepo)

	req := httptest.NewRequest(http.MethodGet, "/tenant-data", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleDirectClient))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCheckLicense_SinLicencia_Retorna403(t *testing.T) {
	userRepo := repoWithUser(entity.RoleDirectClient, true)
	app := buildLicensedApp(userRepo, &stubLicenseRepo{})

	req := httptest.NewRequest(http.MethodGet, "/tenant-data", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleDirectClient))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"sin licencia activa el tenant no accede a sus datos")
}

func TestCheckLicense_LicenciaVencida_Retorna403YLaExpira(t *testing.T) {
	userRepo := repoWithUser(entity.RoleDirectClient, true)
	licenseRepo := &stubLicenseRepo{licenses: []*entity.License{
		activeLicense(testUserID, domain.ClientUser, time.Now().Add(-time.Hour)),
	}}
	app := buildLicensedApp(userRepo, licenseRepo)

	req := httptest.NewRequest(http.MethodGet, "/tenant-data", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleDirectClient))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, entity.LicenseExpired, licenseRepo.licenses[0].Status,
		"la petición que observa el vencimiento debe persistir el paso a expired")
}

func TestClientContext_SuperAdminSinTenant_Retorna403(t *testing.T) {
	// El super_admin pasa la puerta de licencia pero no tiene tenant propio:
	// las rutas de datos de tenant lo rechazan en ClientContext.
	userRepo := repoWithUser(entity.RoleSuperAdmin, true)
	app := buildLicensedApp(userRepo, &stubLicenseRepo{})

	req := httptest.NewRequest(http.MethodGet, "/tenant-data", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleSuperAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
