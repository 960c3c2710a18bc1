package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/application/usecase"
	"github.com/jhoicas/menuqr-api/pkg/config"
)

// CatalogHandler rutas del negocio autenticado: su perfil, secciones y productos.
// El negocio sale siempre del token, nunca del body.
type CatalogHandler struct {
	catalog    *usecase.CatalogUseCase
	businesses *usecase.BusinessUseCase
	public     config.PublicConfig
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *usecase.CatalogUseCase, businesses *usecase.BusinessUseCase, public config.PublicConfig) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, businesses: businesses, public: public}
}

// Me godoc
// @Summary      Perfil del negocio autenticado
// @Tags         me
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessResponse
// @Router       /api/me [get]
func (h *CatalogHandler) Me(c *fiber.Ctx) error {
	out, err := h.businesses.GetByID(c.UserContext(), GetBusinessID(c), requestBaseURL(c, h.public))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Actualizar perfil propio
// @Description  No permite cambiar estado ni rubro.
// @Tags         me
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body  dto.UpdateBusinessRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BusinessResponse
// @Router       /api/me [put]
func (h *CatalogHandler) UpdateMe(c *fiber.Ctx) error {
	return updateBusiness(c, h.businesses, GetBusinessID(c), false)
}

// ListCategories godoc
// @Summary      Secciones del menú
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.catalog.ListCategories(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateCategory godoc
// @Summary      Crear sección del menú
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Sección"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.catalog.CreateCategory(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar sección
// @Description  Los productos de la sección quedan sin sección.
// @Tags         catalog
// @Security     Bearer
// @Param        id   path  string  true  "ID de la sección"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.catalog.DeleteCategory(c.UserContext(), GetBusinessID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListProducts godoc
// @Summary      Productos del negocio
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.catalog.ListProducts(c.UserContext(), GetBusinessID(c), pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.catalog.CreateProduct(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProduct godoc
// @Summary      Actualizar producto
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.catalog.UpdateProduct(c.UserContext(), GetBusinessID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteProduct godoc
// @Summary      Eliminar producto
// @Tags         catalog
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.catalog.DeleteProduct(c.UserContext(), GetBusinessID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
