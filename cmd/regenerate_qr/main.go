// regenerate_qr reemite el QR de todos los negocios apuntando a un dominio nuevo.
//
// Uso: go run ./cmd/regenerate_qr <dominio>
// El dominio sin esquema recibe https://. Usa la misma configuración (env) que la API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/menuqr-api/internal/application/qr"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/persistence"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/qrcode"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/storage"
	"github.com/jhoicas/menuqr-api/pkg/config"
	"github.com/jhoicas/menuqr-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 || qr.NormalizeDomain(os.Args[1]) == "" {
		fmt.Fprintln(os.Stderr, "Uso: regenerate_qr <dominio>  (ej. menu.example.com)")
		os.Exit(1)
	}
	base := qr.NormalizeDomain(os.Args[1])

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

	uploader, err := storage.New(cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hosting de imágenes: %v\n", err)
		os.Exit(1)
	}

	svc := qr.NewService(qrcode.NewEncoder(), uploader, cfg.Storage.UploadTimeout, log)
	report, err := svc.RegenerateAll(ctx, store.Businesses, base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar negocios: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("Dominio: %s\n", report.BaseURL)
	fmt.Printf("Negocios: %d, regenerados: %d, fallidos: %d\n", report.Total, report.Succeeded, len(report.Failed))
	for _, f := range report.Failed {
		fmt.Printf("  - %s (%s): %v\n", f.Slug, f.BusinessID, f.Err)
	}
}
