package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/everledger-liquor/internal/application/dto"
	"github.com/jhoicas/everledger-liquor/internal/application/manager"
	"github.com/jhoicas/everledger-liquor/pkg/logger"
)

// CostHandler maneja el catálogo de costos de etiquetas.
type CostHandler struct {
	m   *manager.Manager
	log *logger.Logger
}

// NewCostHandler construye el handler.
func NewCostHandler(m *manager.Manager, log *logger.Logger) *CostHandler {
	return &CostHandler{m: m, log: log}
}

// Add godoc
// @Summary      Publicar costo estándar de una etiqueta
// @Tags         costs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddLabelCostRequest  true  "Proveedor, etiqueta y costo"
// @Success      201   {object}  dto.OperationResult
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/costs [post]
func (h *CostHandler) Add(c *fiber.Ctx) error {
	var in dto.AddLabelCostRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c, err)
	}
	out, err := h.m.AddLabelStandardCost(c.UserContext(), GetCallerAddress(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Consultar costo de una etiqueta
// @Tags         costs
// @Produce      json
// @Param        vendor  path  string  true  "Proveedor de etiquetas"
// @Param        label   path  string  true  "Etiqueta"
// @Success      200     {object}  dto.LabelCostResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/costs/{vendor}/{label} [get]
func (h *CostHandler) Get(c *fiber.Ctx) error {
	vendor, err := pathParam(c, "vendor")
	if err != nil {
		return writeError(c, h.log, err)
	}
	label, err := pathParam(c, "label")
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.m.GetLabelCost(vendor, label)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
