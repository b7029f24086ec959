package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/everledger-liquor/internal/domain"
)

// pathParam devuelve el parámetro de ruta decodificado ("Jacob%20Daniels" -> "Jacob Daniels").
// fiber entrega c.Params tal como viene en la URL.
func pathParam(c *fiber.Ctx, key string) (string, error) {
	raw := c.Params(key)
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("parámetro %s %q: %w", key, raw, domain.ErrInvalidInput)
	}
	return v, nil
}

// bodyError responde al fallo de BodyParser. Un JSON mal formado es INVALID_BODY;
// un valor que no cabe en el campo (costo negativo, cantidad no entera, volumen no numérico)
// es INVALID_INPUT, igual que los rechazos del dominio.
func bodyError(c *fiber.Ctx, err error) error {
	var (
		syntaxErr *json.SyntaxError
		fiberErr  *fiber.Error
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &fiberErr) {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return badRequest(c, domain.KindInvalidInput, fmt.Sprintf("campo %s: valor %s no admitido", typeErr.Field, typeErr.Value))
	}
	return badRequest(c, domain.KindInvalidInput, err.Error())
}
