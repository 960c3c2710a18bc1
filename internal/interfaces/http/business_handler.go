package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/application/usecase"
	"github.com/jhoicas/menuqr-api/pkg/config"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// BusinessHandler administración de negocios (solo admin).
type BusinessHandler struct {
	uc     *usecase.BusinessUseCase
	public config.PublicConfig
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase, public config.PublicConfig) *BusinessHandler {
	return &BusinessHandler{uc: uc, public: public}
}

// Create godoc
// @Summary      Crear negocio
// @Description  Multipart: campos del negocio y archivo "logo". Genera slug y QR.
// @Tags         business
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        name         formData  string  true   "Nombre"
// @Param        category_id  formData  string  true   "Rubro"
// @Param        email        formData  string  true   "Email de acceso"
// @Param        password     formData  string  true   "Password"
// @Param        logo         formData  file    true   "Logo"
// @Success      201  {object}  dto.BusinessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/business [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	logo, err := formFile(c, "logo")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), usecase.CreateBusinessInput{
		Request: in,
		Logo:    logo,
		BaseURL: requestBaseURL(c, h.public),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar negocios
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.BusinessListResponse
// @Router       /api/business [get]
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c), requestBaseURL(c, h.public))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener negocio por ID
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business/{id} [get]
func (h *BusinessHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"), requestBaseURL(c, h.public))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar negocio
// @Description  JSON o multipart (con "logo" opcional). El slug y el QR no cambian.
// @Tags         business
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        id    path  string  true  "ID del negocio"
// @Param        body  body  dto.UpdateBusinessRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/business/{id} [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	return updateBusiness(c, h.uc, c.Params("id"), true)
}

// Delete godoc
// @Summary      Eliminar negocio con su menú
// @Tags         business
// @Security     Bearer
// @Param        id   path  string  true  "ID del negocio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business/{id} [delete]
func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegenerateQR godoc
// @Summary      Reemitir el QR del negocio contra el dominio actual
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.RegenerateQRResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/business/{id}/qr [post]
func (h *BusinessHandler) RegenerateQR(c *fiber.Ctx) error {
	out, err := h.uc.RegenerateQR(c.UserContext(), c.Params("id"), requestBaseURL(c, h.public))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// QRCard godoc
// @Summary      Tarjeta PDF imprimible con el QR
// @Tags         business
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del negocio"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business/{id}/qr-card [get]
func (h *BusinessHandler) QRCard(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.QRCard(c.UserContext(), id, requestBaseURL(c, h.public))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, mimePDF)
	c.Attachment("qr-" + id + ".pdf")
	return c.Send(pdf)
}

// Export godoc
// @Summary      Exportar negocios a XLSX
// @Tags         business
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/business/export [get]
func (h *BusinessHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export(c.UserContext(), requestBaseURL(c, h.public))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment("negocios.xlsx")
	c.Set(fiber.HeaderContentType, mimeXLSX)
	return c.Send(data)
}

// updateBusiness compartido por admin y por /api/me. Sin allowStatus el negocio no puede
// activarse ni desactivarse a sí mismo.
func updateBusiness(c *fiber.Ctx, uc *usecase.BusinessUseCase, id string, allowStatus bool) error {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if !allowStatus {
		in.Status = nil
		in.CategoryID = nil
	}
	logo, err := formFile(c, "logo")
	if err != nil {
		return writeError(c, err)
	}
	out, err := uc.Update(c.UserContext(), id, in, logo)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
