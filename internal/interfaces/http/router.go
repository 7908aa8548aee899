package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tariqinfo304/PixsaLink/internal/application/auth"
	"github.com/tariqinfo304/PixsaLink/internal/application/ledger"
	"github.com/tariqinfo304/PixsaLink/internal/application/usecase"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
	"github.com/tariqinfo304/PixsaLink/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName       string
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	LicenseUC     *usecase.LicenseUseCase
	AdminUC       *usecase.AdminUseCase
	CompanyUserUC *usecase.CompanyUserUseCase
	VendorUC      *usecase.VendorUseCase
	PaymentUC     *ledger.PaymentUseCase
	LicenseSvc    *usecase.LicenseService
	UserRepo      repository.UserRepository
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API. Cada ruta declara sus roles permitidos
// de forma explícita; no hay jerarquía implícita para super_admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Liveness, bajo el mismo prefijo que el resto de la API.
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	authRequired := AuthMiddleware(deps.JWTSecret, deps.UserRepo)
	licensed := CheckLicense(deps.LicenseSvc, deps.Log)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authRequired, RequireRole(entity.RoleSuperAdmin), authHandler.Register)
	authGroup.Get("/me", authRequired, authHandler.Me)

	// Admin (solo super_admin)
	admin := api.Group("/admin", authRequired, RequireRole(entity.RoleSuperAdmin))
	adminHandler := NewAdminHandler(deps.CompanyUC, deps.LicenseUC, deps.AdminUC)
	admin.Post("/create-company", adminHandler.CreateCompany)
	admin.Get("/companies", adminHandler.ListCompanies)
	admin.Put("/company/:id", adminHandler.UpdateCompany)
	admin.Delete("/company/:id", adminHandler.DeleteCompany)
	admin.Post("/issue-license", adminHandler.IssueLicense)
	admin.Get("/vendors", adminHandler.ListVendors)
	admin.Get("/direct-clients", adminHandler.ListDirectClients)

	// Usuarios de empresa (rol company, con licencia vigente)
	companyUsers := api.Group("/company/users", authRequired, RequireRole(entity.RoleCompany), licensed)
	companyUserHandler := NewCompanyUserHandler(deps.CompanyUserUC)
	companyUsers.Get("/", companyUserHandler.List)
	companyUsers.Post("/", companyUserHandler.Create)
	companyUsers.Put("/:id", companyUserHandler.Update)
	companyUsers.Patch("/:id/deactivate", companyUserHandler.Deactivate)

	// Vendors (tenant: company o direct_client, con licencia vigente)
	vendors := api.Group("/vendors", authRequired,
		RequireRole(entity.RoleCompany, entity.RoleDirectClient), licensed, ClientContext())
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Get("/", vendorHandler.List)
	vendors.Post("/", vendorHandler.Create)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	// Pagos (tenant: company o direct_client, con licencia vigente)
	payments := api.Group("/payments", authRequired,
		RequireRole(entity.RoleCompany, entity.RoleDirectClient), licensed, ClientContext())
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Get("/", paymentHandler.List)
	payments.Post("/", paymentHandler.Create)
	payments.Delete("/:id", paymentHandler.Delete)
}
