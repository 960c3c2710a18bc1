package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/domain"
)

// writeError traduce errores de dominio a status HTTP. Lo no tipado es 500 y se registra.
func writeError(c *fiber.Ctx, err error) error {
	var (
		verr *domain.ValidationError
		cerr *domain.ConflictError
		uerr *domain.UpstreamError
	)
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error(), Field: verr.Field})
	case errors.As(err, &cerr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: cerr.Error(), Field: cerr.Field})
	case errors.As(err, &uerr):
		loggerFrom(c).Error().Err(err).Str("service", uerr.Service).Msg("fallo de servicio externo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "servicio externo no disponible: " + uerr.Service})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInactiveTenant):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INACTIVE", Message: "el negocio no está disponible"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	loggerFrom(c).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
