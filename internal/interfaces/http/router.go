package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pos/internal/application/analytics"
	"github.com/tu-usuario/resto-pos/internal/application/auth"
	"github.com/tu-usuario/resto-pos/internal/application/catalog"
	"github.com/tu-usuario/resto-pos/internal/application/inventory"
	"github.com/tu-usuario/resto-pos/internal/application/purchasing"
	"github.com/tu-usuario/resto-pos/internal/application/sales"
	"github.com/tu-usuario/resto-pos/internal/application/workforce"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CatalogUC    *catalog.CatalogUseCase
	SalesUC      *sales.SalesUseCase
	PurchasingUC *purchasing.PurchasingUseCase
	WorkforceUC  *workforce.WorkforceUseCase
	InventoryUC  *inventory.InventoryUseCase
	DashboardUC  *analytics.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token; el subject se resuelve contra
	// la tabla de usuarios en cada petición)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CatalogUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.SalesUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)

	// Suppliers y purchases (protegido)
	purchasingHandler := NewSupplierHandler(deps.PurchasingUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", purchasingHandler.Create)
	suppliers.Get("/", purchasingHandler.List)

	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchasingUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)

	// Employees (protegido + RBAC declarativo)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.WorkforceUC)
	employees.Post("/", RequireRole(entity.RoleManager), employeeHandler.Create)
	employees.Get("/", RequireRole(entity.RoleManager, entity.RoleAccountant), employeeHandler.List)

	// Stock movements (protegido, solo lectura)
	stockHandler := NewStockHandler(deps.InventoryUC)
	protected.Get("/stock-movements", stockHandler.ListMovements)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
}
