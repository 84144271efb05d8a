package http

import (
	"github.com/gofiber/fiber/v2"

	"salesbi-api/internal/application/analytics"
	"salesbi-api/internal/application/auth"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Analytics *analytics.Service
	AuthUC    *auth.UseCase
	JWTSecret string
}

// Router registra las rutas de la API. Executive y manager comparten las dos
// vistas gerenciales; la vista de jefe de división está abierta a los tres
// roles (el token del divisionshead la acota a su propia división).
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Dashboard (protegido: Bearer Token + RBAC)
	dashboard := api.Group("/dashboard", AuthMiddleware(deps.JWTSecret))
	dashboardHandler := NewDashboardHandler(deps.Analytics)
	dashboard.Get("/executive",
		RequireRole(auth.RoleExecutive, auth.RoleManager),
		dashboardHandler.Executive)
	dashboard.Get("/manager",
		RequireRole(auth.RoleExecutive, auth.RoleManager),
		dashboardHandler.Manager)
	dashboard.Get("/divisionhead",
		RequireRole(auth.RoleExecutive, auth.RoleManager, auth.RoleDivisionHead),
		dashboardHandler.DivisionHead)
}
