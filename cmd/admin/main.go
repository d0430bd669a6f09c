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
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	infrapdf "github.com/tu-usuario/catalogo-admin/internal/infrastructure/pdf"
	"github.com/tu-usuario/catalogo-admin/internal/infrastructure/restapi"
	"github.com/tu-usuario/catalogo-admin/internal/interfaces/http"
	"github.com/tu-usuario/catalogo-admin/pkg/config"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	client := restapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), log)

	productRepo := restapi.NewProductRepository(client)
	stockRepo := restapi.NewStockRepository(client)
	discountRepo := restapi.NewDiscountRepository(client)
	movementRepo := restapi.NewMovementRepository(client)
	warehouseRepo := restapi.NewWarehouseRepository(client)
	catalogRepo := restapi.NewCatalogRepository(client)
	profileRepo := restapi.NewProfileRepository(client)

	listExporter := infrapdf.NewMarotoListExporter()

	productUC := usecase.NewProductUseCase(productRepo, listExporter, cfg.List.LowStockThreshold)
	stockUC := usecase.NewStockUseCase(stockRepo, cfg.Backend.StockLookupTimeout(), log)
	discountUC := usecase.NewDiscountUseCase(discountRepo)
	movementUC := usecase.NewMovementUseCase(movementRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, warehouseRepo, log)
	profileUC := usecase.NewProfileUseCase(profileRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	http.Router(app, http.RouterDeps{
		ProductUC:       productUC,
		StockUC:         stockUC,
		DiscountUC:      discountUC,
		MovementUC:      movementUC,
		WarehouseUC:     warehouseUC,
		CatalogUC:       catalogUC,
		ProfileUC:       profileUC,
		JWTSecret:       cfg.JWT.Secret,
		DefaultPageSize: cfg.List.DefaultPageSize,
		MaxPageSize:     cfg.List.MaxPageSize,
		Log:             log,
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
