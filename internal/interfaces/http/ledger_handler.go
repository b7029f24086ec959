package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/everledger-liquor/internal/application/manager"
	"github.com/jhoicas/everledger-liquor/pkg/logger"
)

// LedgerHandler expone el log de operaciones para auditoría.
type LedgerHandler struct {
	m   *manager.Manager
	log *logger.Logger
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(m *manager.Manager, log *logger.Logger) *LedgerHandler {
	return &LedgerHandler{m: m, log: log}
}

// ListOperations godoc
// @Summary      Listar operaciones aplicadas
// @Tags         ledger
// @Produce      json
// @Param        after  query  int  false  "Devolver operaciones con seq mayor"  default(0)
// @Param        limit  query  int  false  "Límite"                              default(100)
// @Success      200    {object}  dto.OperationListResponse
// @Router       /api/ledger/operations [get]
func (h *LedgerHandler) ListOperations(c *fiber.Ctx) error {
	after, err := strconv.ParseUint(c.Query("after", "0"), 10, 64)
	if err != nil {
		return badRequest(c, "VALIDATION", "after debe ser un entero no negativo")
	}
	limit := c.QueryInt("limit", 100)
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	out, err := h.m.ListOperations(c.UserContext(), after, limit)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
