package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/pedidos-api/internal/application/auth"
	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/orders"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	OrderUC   *orders.OrderUseCase
	ReceiptUC *orders.ReceiptUseCase
	Tokens    auth.TokenService
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	requireAuth := AuthMiddleware(deps.Tokens)

	userHandler := NewUserHandler(deps.AuthUC)
	app.Get("/me", requireAuth, userHandler.Me)

	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	ordersGroup := app.Group("/orders", requireAuth)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Get("/:id/pdf", orderHandler.Receipt)
}

// internalError responde 500 con mensaje genérico; el detalle queda en el log
// del servidor, nunca en el cliente.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error inesperado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error inesperado del servidor"})
}
