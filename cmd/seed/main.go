// seed aplica las migraciones SQL y crea el usuario demo si no existe.
// Las credenciales salen de SEED_EMAIL / SEED_PASSWORD (con defaults de
// desarrollo). Idempotente: correrlo dos veces no duplica nada.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pedidos-api/internal/application/auth"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/pedidos-api/pkg/config"
	"github.com/tu-usuario/pedidos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Migraciones en orden lexicográfico (001_, 002_, ...).
	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		log.Fatal().Err(err).Msg("listar migraciones")
	}
	sort.Strings(files)
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("leer migración")
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("aplicar migración")
		}
		log.Info().Str("file", f).Msg("migración aplicada")
	}

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.GetByEmail(cfg.Seed.Email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario demo")
	}
	if existing != nil {
		log.Info().Str("email", cfg.Seed.Email).Msg("usuario demo ya existe, nada que hacer")
		return
	}

	hash, err := auth.NewBcryptHasher(0).Hash(cfg.Seed.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password demo")
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        cfg.Seed.Email,
		PasswordHash: hash,
		Name:         "Demo User",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(user); err != nil {
		log.Fatal().Err(err).Msg("crear usuario demo")
	}
	log.Info().Str("email", user.Email).Str("id", user.ID).Msg("usuario demo creado")
}
