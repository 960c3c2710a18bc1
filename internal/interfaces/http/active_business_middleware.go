package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
)

// businessGetter es el contrato mínimo que necesita el middleware para verificar el negocio.
// Lo implementa cualquier repository.BusinessRepository.
type businessGetter interface {
	GetByID(ctx context.Context, id string) (*entity.Business, error)
}

// RequireActiveBusiness verifica que el negocio del token siga activo. Un token emitido antes de
// una desactivación deja de servir. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 Unauthorized → el token no trae business_id.
//   - 403 Forbidden → negocio desactivado o eliminado.
//   - 503 Service Unavailable → fallo del almacén al consultar.
func RequireActiveBusiness(repo businessGetter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		businessID := GetBusinessID(c)
		if businessID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "business_id no encontrado en el token",
			})
		}

		b, err := repo.GetByID(c.UserContext(), businessID)
		if err != nil {
			loggerFrom(c).Error().Err(err).Str("business_id", businessID).Msg("verificación de negocio activo")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "BUSINESS_CHECK_FAILED",
				Message: "no se pudo verificar el negocio, intente más tarde",
			})
		}

		if b == nil || !b.Status {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "INACTIVE",
				Message: "el negocio no está activo",
			})
		}

		return c.Next()
	}
}
