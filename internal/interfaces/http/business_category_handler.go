package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/application/usecase"
)

// BusinessCategoryHandler CRUD de rubros (solo admin).
type BusinessCategoryHandler struct {
	uc *usecase.BusinessCategoryUseCase
}

// NewBusinessCategoryHandler construye el handler.
func NewBusinessCategoryHandler(uc *usecase.BusinessCategoryUseCase) *BusinessCategoryHandler {
	return &BusinessCategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear rubro
// @Tags         business-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BusinessCategoryRequest  true  "Rubro"
// @Success      201   {object}  dto.BusinessCategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/business-categories [post]
func (h *BusinessCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.BusinessCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar rubros
// @Tags         business-categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BusinessCategoryResponse
// @Router       /api/business-categories [get]
func (h *BusinessCategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar rubro
// @Tags         business-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del rubro"
// @Param        body  body  dto.BusinessCategoryRequest  true  "Rubro"
// @Success      200   {object}  dto.BusinessCategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/business-categories/{id} [put]
func (h *BusinessCategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.BusinessCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar rubro
// @Description  400 CONFLICT si todavía hay negocios en el rubro.
// @Tags         business-categories
// @Security     Bearer
// @Param        id   path  string  true  "ID del rubro"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/business-categories/{id} [delete]
func (h *BusinessCategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
