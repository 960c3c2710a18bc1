package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/menuqr-api/internal/application/auth"
	"github.com/jhoicas/menuqr-api/internal/application/qr"
	"github.com/jhoicas/menuqr-api/internal/application/tenant"
	"github.com/jhoicas/menuqr-api/internal/application/usecase"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/menuqr-api/internal/infrastructure/pdf"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/persistence"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/qrcode"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/menuqr-api/internal/interfaces/http"
	"github.com/jhoicas/menuqr-api/pkg/config"
	"github.com/jhoicas/menuqr-api/pkg/logger"
	"github.com/jhoicas/menuqr-api/pkg/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")
	zl := log.Zerolog()

	ctx := context.Background()
	store, err := persistence.Open(ctx, cfg.DB, zl)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}
	defer store.Close()

	uploader, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("hosting de imágenes")
	}
	if cfg.Admin.Email == "" || cfg.Admin.PasswordHash == "" {
		log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD_HASH vacíos: el login de administrador queda deshabilitado")
	}

	validator := validation.New()
	qrService := qr.NewService(qrcode.NewEncoder(), uploader, cfg.Storage.UploadTimeout, zl)

	businessUC := usecase.NewBusinessUseCase(usecase.BusinessDeps{
		Businesses:    store.Businesses,
		Categories:    store.BusinessCategories,
		Tx:            store.Tx,
		Uploader:      uploader,
		QR:            qrService,
		Card:          infrapdf.NewQRCardGenerator(),
		Exporter:      export.NewXLSXExporter(),
		Validator:     validator,
		UploadTimeout: cfg.Storage.UploadTimeout,
		Log:           zl,
	})
	businessCategoryUC := usecase.NewBusinessCategoryUseCase(store.BusinessCategories, store.Businesses, validator)
	catalogUC := usecase.NewCatalogUseCase(store.Categories, store.Products, store.Tx, validator)
	publicUC := usecase.NewPublicUseCase(
		tenant.NewResolver(store.Businesses), store.Businesses,
		store.BusinessCategories, store.Categories, store.Products, zl,
	)
	authUC := auth.NewAuthUseCase(store.Businesses,
		auth.AdminCredentials{Email: cfg.Admin.Email, PasswordHash: cfg.Admin.PasswordHash},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    httpRouter.MaxLogoBytes + 1<<20,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(zl))
	app.Use(httpRouter.Metrics())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MenuQR API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:             authUC,
		BusinessUC:         businessUC,
		BusinessCategoryUC: businessCategoryUC,
		CatalogUC:          catalogUC,
		PublicUC:           publicUC,
		Businesses:         store.Businesses,
		Validator:          validator,
		Public:             cfg.Public,
		JWTSecret:          cfg.JWT.Secret,
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
