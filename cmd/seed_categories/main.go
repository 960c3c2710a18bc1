// seed_categories carga rubros de negocio (categorías del directorio) en el almacén configurado.
//
// Uso: go run ./cmd/seed_categories [ruta/rubros.txt]
// Un rubro por línea; "#" inicia comentario. Acepta UTF-8 o ISO-8859-1 (exportes de Excel).
// Sin archivo carga la lista por defecto. Los rubros ya existentes se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/application/usecase"
	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/persistence"
	"github.com/jhoicas/menuqr-api/pkg/config"
	"github.com/jhoicas/menuqr-api/pkg/logger"
	"github.com/jhoicas/menuqr-api/pkg/validation"
)

func main() {
	names := defaultCategories
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Abrir archivo: %v\n", err)
			os.Exit(1)
		}
		names, err = parseCategories(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer rubros: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, File: cfg.Log.File}).Zerolog()

	ctx := context.Background()
	store, err := persistence.Open(ctx, cfg.DB, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar al almacén: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	uc := usecase.NewBusinessCategoryUseCase(store.BusinessCategories, store.Businesses, validation.New())
	created, skipped, err := seed(ctx, uc, names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear rubros: %v\n", err)
		store.Close()
		os.Exit(1)
	}
	fmt.Printf("Rubros: %d creados, %d ya existían\n", created, skipped)
}

func seed(ctx context.Context, uc *usecase.BusinessCategoryUseCase, names []string) (created, skipped int, err error) {
	for _, name := range names {
		_, err := uc.Create(ctx, dto.BusinessCategoryRequest{Name: name})
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrConflict):
			skipped++
		default:
			return created, skipped, fmt.Errorf("%s: %w", name, err)
		}
	}
	return created, skipped, nil
}
