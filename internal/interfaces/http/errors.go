package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/everledger-liquor/internal/application/dto"
	"github.com/jhoicas/everledger-liquor/internal/domain"
	"github.com/jhoicas/everledger-liquor/pkg/logger"
)

// statusByKind traduce el código de error de dominio a HTTP.
var statusByKind = map[string]int{
	domain.KindInvalidInput:       fiber.StatusBadRequest,
	domain.KindUnauthorizedVendor: fiber.StatusForbidden,
	domain.KindNotFound:           fiber.StatusNotFound,
	domain.KindNotRegistered:      fiber.StatusNotFound,
	domain.KindDuplicateName:      fiber.StatusConflict,
	domain.KindDuplicateProductID: fiber.StatusConflict,
	domain.KindUnknownVendor:      fiber.StatusUnprocessableEntity,
	domain.KindUnknownCostEntry:   fiber.StatusUnprocessableEntity,
}

// StatusFor devuelve el status HTTP para err (500 si no es de dominio).
func StatusFor(err error) int {
	if status, ok := statusByKind[domain.KindOf(err)]; ok {
		return status
	}
	return fiber.StatusInternalServerError
}

// writeError responde con dto.ErrorResponse. Los 5xx no exponen el detalle y se registran.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	kind := domain.KindOf(err)
	status := StatusFor(err)
	msg := err.Error()
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		msg = "error interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: kind, Message: msg})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
