package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/everledger-liquor/internal/application/dto"
	"github.com/jhoicas/everledger-liquor/pkg/jwt"
)

// LocalCallerAddress key en c.Locals con la dirección verificada del llamador.
const LocalCallerAddress = "caller_address"

// AuthMiddleware valida el Bearer Token JWT y deja la dirección del llamador en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
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
		address, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalCallerAddress, address)
		return c.Next()
	}
}

// GetCallerAddress devuelve la dirección del llamador (después del middleware de auth).
func GetCallerAddress(c *fiber.Ctx) string {
	v := c.Locals(LocalCallerAddress)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
