package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/resto-pos/internal/application/analytics"
	"github.com/tu-usuario/resto-pos/internal/application/auth"
	"github.com/tu-usuario/resto-pos/internal/application/catalog"
	"github.com/tu-usuario/resto-pos/internal/application/inventory"
	"github.com/tu-usuario/resto-pos/internal/application/purchasing"
	"github.com/tu-usuario/resto-pos/internal/application/sales"
	"github.com/tu-usuario/resto-pos/internal/application/workforce"
	"github.com/tu-usuario/resto-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/resto-pos/internal/seed"
	httpRouter "github.com/tu-usuario/resto-pos/internal/interfaces/http"
	"github.com/tu-usuario/resto-pos/pkg/config"
	"github.com/tu-usuario/resto-pos/pkg/logger"
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), "file://migrations"); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	if cfg.Seed.OnStart {
		if err := seed.Run(seed.Repos{
			Users:      userRepo,
			Categories: categoryRepo,
			Products:   productRepo,
			Suppliers:  supplierRepo,
			Employees:  employeeRepo,
		}, log); err != nil {
			log.Fatal().Err(err).Msg("siembra inicial")
		}
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewCatalogUseCase(categoryRepo, productRepo)
	salesUC := sales.NewSalesUseCase(txRunner, invoiceRepo)
	purchasingUC := purchasing.NewPurchasingUseCase(txRunner, purchaseRepo, supplierRepo)
	workforceUC := workforce.NewWorkforceUseCase(employeeRepo)
	inventoryUC := inventory.NewInventoryUseCase(movementRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Resto POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CatalogUC:    catalogUC,
		SalesUC:      salesUC,
		PurchasingUC: purchasingUC,
		WorkforceUC:  workforceUC,
		InventoryUC:  inventoryUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
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
