package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuqr-api/internal/application/auth"
	"github.com/jhoicas/menuqr-api/internal/application/usecase"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/pkg/config"
	"github.com/jhoicas/menuqr-api/pkg/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC             *auth.AuthUseCase
	BusinessUC         *usecase.BusinessUseCase
	BusinessCategoryUC *usecase.BusinessCategoryUseCase
	CatalogUC          *usecase.CatalogUseCase
	PublicUC           *usecase.PublicUseCase
	Businesses         businessGetter
	Validator          *validation.Validator
	Public             config.PublicConfig
	JWTSecret          string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Validator)
	authGroup.Post("/admin/login", authHandler.AdminLogin)
	authGroup.Post("/business/login", authHandler.BusinessLogin)

	// Menú público
	public := api.Group("/public")
	publicHandler := NewPublicHandler(deps.PublicUC)
	public.Get("/business/:slug", publicHandler.Menu)
	public.Post("/business/:slug/share", publicHandler.Share)

	// Admin. La cadena de middleware va por grupo, nunca sobre /api.
	authn := AuthMiddleware(deps.JWTSecret)
	adminOnly := []fiber.Handler{authn, RequireRole(entity.RoleAdmin)}

	categoryHandler := NewBusinessCategoryHandler(deps.BusinessCategoryUC)
	bizCats := api.Group("/business-categories", adminOnly...)
	bizCats.Get("/", categoryHandler.List)
	bizCats.Post("/", categoryHandler.Create)
	bizCats.Put("/:id", categoryHandler.Update)
	bizCats.Delete("/:id", categoryHandler.Delete)

	businessHandler := NewBusinessHandler(deps.BusinessUC, deps.Public)
	business := api.Group("/business", adminOnly...)
	business.Post("/", businessHandler.Create)
	business.Get("/", businessHandler.List)
	business.Get("/export", businessHandler.Export)
	business.Get("/:id", businessHandler.GetByID)
	business.Put("/:id", businessHandler.Update)
	business.Delete("/:id", businessHandler.Delete)
	business.Post("/:id/qr", businessHandler.RegenerateQR)
	business.Get("/:id/qr-card", businessHandler.QRCard)

	// Negocio autenticado
	ownerOnly := []fiber.Handler{authn, RequireRole(entity.RoleBusiness), RequireActiveBusiness(deps.Businesses)}
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.BusinessUC, deps.Public)
	me := api.Group("/me", ownerOnly...)
	me.Get("/", catalogHandler.Me)
	me.Put("/", catalogHandler.UpdateMe)

	categories := api.Group("/categories", ownerOnly...)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)

	products := api.Group("/products", ownerOnly...)
	products.Get("/", catalogHandler.ListProducts)
	products.Post("/", catalogHandler.CreateProduct)
	products.Put("/:id", catalogHandler.UpdateProduct)
	products.Delete("/:id", catalogHandler.DeleteProduct)
}
