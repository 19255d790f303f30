package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	ReportUC      *usecase.ReportUseCase
	StockLedger   *inventory.StockLedgerUseCase
	MovementQuery *inventory.MovementQueryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/alerts/low-stock", productHandler.ListLowStock)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock movements
	movements := api.Group("/movements")
	inventoryHandler := NewInventoryHandler(deps.StockLedger, deps.MovementQuery)
	movements.Post("/inflow", inventoryHandler.RegisterInflow)
	movements.Post("/outflow", inventoryHandler.RegisterOutflow)
	movements.Get("/", inventoryHandler.List)
	movements.Get("/:id", inventoryHandler.GetByID)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/valuation", reportHandler.Valuation)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/expiring", reportHandler.Expiring)
	reports.Get("/expired", reportHandler.Expired)
	reports.Get("/dashboard", reportHandler.Dashboard)
}
