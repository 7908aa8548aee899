package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tariqinfo304/PixsaLink/internal/application/auth"
	"github.com/tariqinfo304/PixsaLink/internal/application/ledger"
	"github.com/tariqinfo304/PixsaLink/internal/application/usecase"
	"github.com/tariqinfo304/PixsaLink/internal/infrastructure/postgres"
	httpRouter "github.com/tariqinfo304/PixsaLink/internal/interfaces/http"
	"github.com/tariqinfo304/PixsaLink/pkg/config"
	"github.com/tariqinfo304/PixsaLink/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	licenseSvc := usecase.NewLicenseService(licenseRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, licenseSvc, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, userRepo, licenseRepo, log)
	licenseUC := usecase.NewLicenseUseCase(licenseRepo, companyRepo)
	adminUC := usecase.NewAdminUseCase(vendorRepo, userRepo)
	companyUserUC := usecase.NewCompanyUserUseCase(userRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	paymentUC := ledger.NewPaymentUseCase(txRunner, paymentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		LicenseUC:     licenseUC,
		AdminUC:       adminUC,
		CompanyUserUC: companyUserUC,
		VendorUC:      vendorUC,
		PaymentUC:     paymentUC,
		LicenseSvc:    licenseSvc,
		UserRepo:      userRepo,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
