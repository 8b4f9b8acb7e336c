// Siembra manual de datos iniciales, útil cuando SEED_ON_START está apagado.
package main

import (
	"context"

	"github.com/tu-usuario/resto-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/resto-pos/internal/seed"
	"github.com/tu-usuario/resto-pos/pkg/config"
	"github.com/tu-usuario/resto-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), "file://migrations"); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	err = seed.Run(seed.Repos{
		Users:      postgres.NewUserRepository(pool),
		Categories: postgres.NewCategoryRepository(pool),
		Products:   postgres.NewProductRepository(pool),
		Suppliers:  postgres.NewSupplierRepository(pool),
		Employees:  postgres.NewEmployeeRepository(pool),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("siembra")
	}

	log.Info().Msg("siembra completada")
}
