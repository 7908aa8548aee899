package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/infrastructure/postgres"
	"github.com/tariqinfo304/PixsaLink/pkg/config"
	"github.com/tariqinfo304/PixsaLink/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Crea el super_admin inicial si no existe. Idempotente: si el email ya está
// registrado no hace nada. Credenciales via SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByEmail(cfg.Seed.AdminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin existente")
	}
	if existing != nil {
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("super_admin ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	now := time.Now().UTC()
	admin := &entity.User{
		ID:           uuid.NewString(),
		Name:         cfg.Seed.AdminName,
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear super_admin")
	}

	log.Info().Str("email", admin.Email).Msg("super_admin creado")
}
