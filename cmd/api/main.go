package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/pedidos-api/internal/application/auth"
	"github.com/tu-usuario/pedidos-api/internal/application/orders"
	infrapdf "github.com/tu-usuario/pedidos-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/pedidos-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/pedidos-api/internal/interfaces/http"
	"github.com/tu-usuario/pedidos-api/pkg/config"
	"github.com/tu-usuario/pedidos-api/pkg/jwt"
	"github.com/tu-usuario/pedidos-api/pkg/logger"
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
	orderRepo := postgres.NewOrderRepository(pool)

	tokens := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	authUC := auth.NewAuthUseCase(userRepo, auth.NewBcryptHasher(0), tokens)
	orderUC := orders.NewOrderUseCase(orderRepo, nil)
	receiptUC := orders.NewReceiptUseCase(orderRepo, userRepo, infrapdf.NewMarotoReceiptGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// CORS: con orígenes explícitos se permiten credenciales; con "*" Fiber
	// los prohíbe, así que solo se activan en el primer caso.
	corsCfg := cors.Config{AllowOrigins: "*"}
	if len(cfg.HTTP.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = strings.Join(cfg.HTTP.AllowOrigins, ",")
		corsCfg.AllowCredentials = true
	}
	app.Use(cors.New(corsCfg))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Pedidos API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		OrderUC:   orderUC,
		ReceiptUC: receiptUC,
		Tokens:    tokens,
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
