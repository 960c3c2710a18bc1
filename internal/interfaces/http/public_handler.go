package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/application/tenant"
	"github.com/jhoicas/menuqr-api/internal/application/usecase"
)

// PublicHandler menú público por slug (sin autenticación).
type PublicHandler struct {
	uc *usecase.PublicUseCase
}

// NewPublicHandler construye el handler.
func NewPublicHandler(uc *usecase.PublicUseCase) *PublicHandler {
	return &PublicHandler{uc: uc}
}

// Menu godoc
// @Summary      Menú público de un negocio
// @Description  Resuelve el slug de forma tolerante (mayúsculas, espacios, URL-encoding). 403 si el negocio está inactivo.
// @Tags         public
// @Produce      json
// @Param        slug  path  string  true  "Slug del negocio"
// @Success      200   {object}  dto.PublicMenuResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/business/{slug} [get]
func (h *PublicHandler) Menu(c *fiber.Ctx) error {
	res, err := h.uc.Menu(c.UserContext(), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	switch res.Outcome {
	case tenant.Found:
		return c.JSON(res.Menu)
	case tenant.Inactive:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "INACTIVE", Message: "el negocio no está disponible", Query: res.Query,
		})
	default:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "negocio no encontrado", Query: res.Query,
		})
	}
}

// Share godoc
// @Summary      Registrar que el menú fue compartido
// @Tags         public
// @Produce      json
// @Param        slug  path  string  true  "Slug del negocio"
// @Success      200   {object}  dto.ShareResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/business/{slug}/share [post]
func (h *PublicHandler) Share(c *fiber.Ctx) error {
	out, err := h.uc.Share(c.UserContext(), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
