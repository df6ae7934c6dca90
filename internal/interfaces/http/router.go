package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/salon-api/internal/application/analytics"
	"github.com/glowdesk/salon-api/internal/application/inventory"
	"github.com/glowdesk/salon-api/internal/application/reports"
	"github.com/glowdesk/salon-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	StockMovement  *inventory.StockMovementUseCase
	DashboardUC    *analytics.DashboardUseCase
	UsageReportUC  *reports.UsageReportUseCase
	PeriodReportUC *reports.PeriodReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/export", productHandler.ExportCSV)
	products.Post("/bulk-delete", productHandler.BulkDelete)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock (protegido): uso y reabastecimiento con historial atómico
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockMovement)
	invGroup.Post("/usage", inventoryHandler.RecordUsage)
	invGroup.Post("/restock", inventoryHandler.Restock)

	// Dashboard y categorías (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
	protected.Get("/categories", dashboardHandler.ListCategories)

	// Reportes (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.UsageReportUC, deps.PeriodReportUC)
	reportsGroup.Get("/usage", reportHandler.GetUsageReport)
	reportsGroup.Post("/period", reportHandler.GeneratePeriodReport)
}
