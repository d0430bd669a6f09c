package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	StockUC         *usecase.StockUseCase
	DiscountUC      *usecase.DiscountUseCase
	MovementUC      *usecase.MovementUseCase
	WarehouseUC     *usecase.WarehouseUseCase
	CatalogUC       *usecase.CatalogUseCase
	ProfileUC       *usecase.ProfileUseCase
	JWTSecret       string
	DefaultPageSize int
	MaxPageSize     int
	Log             *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Todas las rutas requieren Bearer Token del backend.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC, deps.DefaultPageSize, deps.MaxPageSize, deps.Log)
	products.Get("/", productHandler.List)
	products.Get("/export.pdf", productHandler.Export)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/active", productHandler.SetActive)
	products.Get("/:id/stock", productHandler.StockSummary)

	// Discounts por producto (protegido)
	discountHandler := NewDiscountHandler(deps.DiscountUC)
	products.Get("/:id/discounts", discountHandler.ListByProduct)
	products.Post("/:id/discounts", discountHandler.Create)
	products.Delete("/:id/discounts/:discount_id", discountHandler.Delete)
	products.Patch("/:id/discounts/:discount_id/active", discountHandler.SetActive)

	// Warehouses (protegido; las mutaciones exigen rol de bodega)
	soloBodega := RequireRole("admin", "bodeguero")
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", soloBodega, warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", soloBodega, warehouseHandler.Update)
	warehouses.Delete("/:id", soloBodega, warehouseHandler.Delete)

	// Inventory movements (protegido; registrar exige rol de bodega)
	invGroup := protected.Group("/inventory")
	movementHandler := NewMovementHandler(deps.MovementUC)
	invGroup.Get("/movements", movementHandler.List)
	invGroup.Post("/movements", soloBodega, movementHandler.Register)

	// Catálogos y perfil (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.ProfileUC)
	protected.Get("/catalog", catalogHandler.Bootstrap)
	protected.Get("/customers", catalogHandler.Customers)
	protected.Get("/profile", catalogHandler.Profile)
	protected.Get("/businesses", catalogHandler.Businesses)
}
