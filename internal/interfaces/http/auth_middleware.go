package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/pkg/jwt"
)

// LocalPrincipal key de Fiber Locals donde AuthMiddleware deja el Principal.
const LocalPrincipal = "principal"

// Principal identidad autenticada extraída del token.
type Principal struct {
	Subject    string
	BusinessID string // vacío para admin
	Role       string
}

// AuthMiddleware valida el Bearer Token JWT y deja el Principal en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipal, Principal{Subject: claims.Subject, BusinessID: claims.BusinessID, Role: claims.Role})
		return c.Next()
	}
}

// RequireRole deja pasar solo los roles indicados. Debe usarse DESPUÉS de AuthMiddleware.
// Token sin rol → 401 MISSING_ROLE; rol distinto → 403 FORBIDDEN.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para este recurso"})
	}
}

// GetPrincipal devuelve el Principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(Principal)
	return p, ok
}

// GetRole devuelve el rol del token, o "" sin autenticar.
func GetRole(c *fiber.Ctx) string {
	p, _ := GetPrincipal(c)
	return p.Role
}

// GetBusinessID devuelve el negocio del token, o "" para admin o sin autenticar.
func GetBusinessID(c *fiber.Ctx) string {
	p, _ := GetPrincipal(c)
	return p.BusinessID
}
