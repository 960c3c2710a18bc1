// Package persistence elige el almacén según DB_DRIVER y entrega los repositorios listos.
package persistence

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/menuqr-api/internal/application/usecase"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/memory"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/postgres"
	"github.com/jhoicas/menuqr-api/pkg/config"
)

// DriverMemory almacén en proceso, sin persistencia entre reinicios.
const DriverMemory = "memory"

// Store repositorios de un mismo almacén. Close libera conexiones.
type Store struct {
	Businesses         repository.BusinessRepository
	BusinessCategories repository.BusinessCategoryRepository
	Categories         repository.CategoryRepository
	Products           repository.ProductRepository
	Tx                 usecase.CatalogTxRunner
	Close              func()
}

// Open conecta el almacén configurado. Con postgres y AutoMigrate aplica las migraciones antes.
func Open(ctx context.Context, cfg config.DBConfig, log zerolog.Logger) (*Store, error) {
	if cfg.Driver == DriverMemory {
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		m := memory.NewStore()
		return &Store{
			Businesses:         m.Businesses(),
			BusinessCategories: m.BusinessCategories(),
			Categories:         m.Categories(),
			Products:           m.Products(),
			Tx:                 m,
			Close:              func() {},
		}, nil
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(cfg.ConnectionString()); err != nil {
			return nil, fmt.Errorf("migraciones: %w", err)
		}
		log.Info().Msg("migraciones aplicadas")
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{
		Businesses:         postgres.NewBusinessRepository(pool),
		BusinessCategories: postgres.NewBusinessCategoryRepository(pool),
		Categories:         postgres.NewCategoryRepository(pool),
		Products:           postgres.NewProductRepository(pool),
		Tx:                 postgres.NewTxRunner(pool),
		Close:              pool.Close,
	}, nil
}
