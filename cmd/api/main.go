package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"salesbi-api/internal/application/analytics"
	"salesbi-api/internal/application/auth"
	"salesbi-api/internal/infrastructure/itemstore"
	httpRouter "salesbi-api/internal/interfaces/http"
	"salesbi-api/pkg/config"
	"salesbi-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.BaseURL).
		Msg("iniciando aplicación")
	zl := log.Zerolog()

	// Cliente del item store y sus tres puertas de lectura. No hay base de
	// datos propia: todo el estado vive en el CMS remoto.
	storeClient := itemstore.NewClient(cfg.Store, zl)
	catalogSrc := itemstore.NewCatalogSource(storeClient)
	salesSrc := itemstore.NewSalesSource(storeClient)
	stockSrc := itemstore.NewStockSource(storeClient)

	analyticsSvc := analytics.NewService(catalogSrc, salesSrc, stockSrc, zl)

	authUC, err := auth.NewUseCase(cfg.Dash, cfg.JWT, zl)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializando cuentas del dashboard")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 90, // las vistas esperan al item store
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(zl))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sales BI API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Analytics: analyticsSvc,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
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
