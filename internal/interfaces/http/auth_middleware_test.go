package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	apphttp "github.com/tariqinfo304/PixsaLink/internal/interfaces/http"
	pkgjwt "github.com/tariqinfo304/PixsaLink/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "pixsalink-test"
	testExpMin    = 60
)

// stubUserRepo sirve el principal que AuthMiddleware recarga en cada petición.
type stubUserRepo struct {
	users map[string]*entity.User
}

func (s *stubUserRepo) Create(*entity.User) error { return nil }
func (s *stubUserRepo) GetByID(id string) (*entity.User, error) {
	return s.users[id], nil
}
func (s *stubUserRepo) GetByEmail(string) (*entity.User, error)           { return nil, nil }
func (s *stubUserRepo) Update(*entity.User) error                         { return nil }
func (s *stubUserRepo) ListByCompany(string) ([]*entity.User, error)      { return nil, nil }
func (s *stubUserRepo) ListDirectClients() ([]*entity.User, error)        { return nil, nil }
func (s *stubUserRepo) CountActiveClients(context.Context, string) (int, error) {
	return 0, nil
}
func (s *stubUserRepo) DeactivateByCompany(context.Context, string) error { return nil }

func repoWithUser(role string, active bool) *stubUserRepo {
	return &stubUserRepo{users: map[string]*entity.User{
		testUserID: {ID: testUserID, Name: "Tester", Email: "tester@pixsalink.test",
			Role: role, IsActive: active},
	}}
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el JWT y recargar el usuario
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(repo *stubUserRepo, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, repo),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetUser(c).Role,
			})
		},
	)
	return app
}

// tokenFor genera un JWT firmado para el usuario de prueba.
func tokenFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_SuperAdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleSuperAdmin, true), entity.RoleSuperAdmin)
	resp := doRequest(t, app, tokenFor(t, entity.RoleSuperAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"super_admin debe poder acceder a ruta restringida a super_admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleSuperAdmin, body["role"])
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_DirectClientAccedeRutaTenant(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleDirectClient, true),
		entity.RoleCompany, entity.RoleDirectClient)
	resp := doRequest(t, app, tokenFor(t, entity.RoleDirectClient))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"direct_client debe poder acceder a ruta que permite company o direct_client")
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_CompanyBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleCompany, true), entity.RoleSuperAdmin)
	resp := doRequest(t, app, tokenFor(t, entity.RoleCompany))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"company no debe poder acceder a ruta restringida a super_admin")
}

// Caso 2b: sin jerarquía de roles — super_admin también se bloquea en rutas de
// tenant que no lo incluyen de forma explícita.
func TestRequireRole_SuperAdminBloqueadoEnRutaTenant(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleSuperAdmin, true),
		entity.RoleCompany, entity.RoleDirectClient)
	resp := doRequest(t, app, tokenFor(t, entity.RoleSuperAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — validación del token y recarga del principal
// ──────────────────────────────────────────────────────────────────────────────

// Caso 3: Sin header Authorization → HTTP 401.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleCompany, true), entity.RoleCompany)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: Token inválido / malformado → HTTP 401.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleCompany, true), entity.RoleCompany)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token firmado con otro secret → HTTP 401.
func TestAuthMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleCompany, true), entity.RoleCompany)
	tok, err := pkgjwt.Generate("otro-secret", testUserID, entity.RoleCompany, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: Token válido pero el usuario ya no existe en la DB → HTTP 401.
func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(&stubUserRepo{users: map[string]*entity.User{}}, entity.RoleCompany)
	resp := doRequest(t, app, tokenFor(t, entity.RoleCompany))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token de usuario borrado no debe abrir la sesión")
}

// Caso 7: Cuenta desactivada después de emitido el token → HTTP 401 inmediato.
func TestAuthMiddleware_CuentaDesactivada_Retorna401(t *testing.T) {
	app := buildTestApp(repoWithUser(entity.RoleCompany, false), entity.RoleCompany)
	resp := doRequest(t, app, tokenFor(t, entity.RoleCompany))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"la desactivación surte efecto aunque el token siga vigente")
}

// Caso 8: El rol efectivo es el persistido en la DB, no el del claim del token.
func TestAuthMiddleware_RolEfectivoEsElDeLaDB(t *testing.T) {
	// El token dice super_admin pero la DB dice company.
	app := buildTestApp(repoWithUser(entity.RoleCompany, true), entity.RoleSuperAdmin)
	resp := doRequest(t, app, tokenFor(t, entity.RoleSuperAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un claim de rol manipulado no debe escalar privilegios")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleDirectClient, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, entity.RoleDirectClient, role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleCompany, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}
