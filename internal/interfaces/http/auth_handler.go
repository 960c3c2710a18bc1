package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuqr-api/internal/application/auth"
	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/pkg/validation"
)

// AuthHandler login de administrador y de negocios (público).
type AuthHandler struct {
	uc        *auth.AuthUseCase
	validator *validation.Validator
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, v *validation.Validator) *AuthHandler {
	return &AuthHandler{uc: uc, validator: v}
}

// AdminLogin godoc
// @Summary      Login de administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	return h.login(c, h.uc.AdminLogin)
}

// BusinessLogin godoc
// @Summary      Login de negocio
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/business/login [post]
func (h *AuthHandler) BusinessLogin(c *fiber.Ctx) error {
	return h.login(c, h.uc.BusinessLogin)
}

func (h *AuthHandler) login(c *fiber.Ctx, fn func(context.Context, dto.LoginRequest) (*dto.LoginResponse, error)) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.validator.Validate(in); err != nil {
		return writeError(c, err)
	}
	out, err := fn(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
