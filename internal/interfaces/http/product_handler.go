package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/everledger-liquor/internal/application/dto"
	"github.com/jhoicas/everledger-liquor/internal/application/manager"
	"github.com/jhoicas/everledger-liquor/pkg/logger"
)

// ProductHandler maneja los registros de procedencia.
type ProductHandler struct {
	m   *manager.Manager
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(m *manager.Manager, log *logger.Logger) *ProductHandler {
	return &ProductHandler{m: m, log: log}
}

// Fill godoc
// @Summary      Registrar un lote de producción
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FillProductRequest  true  "Datos del lote"
// @Success      201   {object}  dto.OperationResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Fill(c *fiber.Ctx) error {
	var in dto.FillProductRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c, err)
	}
	out, err := h.m.FillProduct(c.UserContext(), GetCallerAddress(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de procedencia
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "product_id"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.m.GetProduct(id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Exists godoc
// @Summary      Verificar si un product_id ya fue registrado
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "product_id"
// @Success      200  {object}  dto.ProductExistsResponse
// @Router       /api/products/{id}/exists [get]
func (h *ProductHandler) Exists(c *fiber.Ctx) error {
	id, err := pathParam(c, "id")
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ProductExistsResponse{ProductID: id, Exists: h.m.ProductExists(id)})
}

// ListByVendor godoc
// @Summary      Listar lotes de un fabricante de bebidas
// @Tags         products
// @Produce      json
// @Param        vendor  query  string  true   "Dirección del fabricante"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) ListByVendor(c *fiber.Ctx) error {
	vendor := c.Query("vendor")
	if vendor == "" {
		return badRequest(c, "VALIDATION", "vendor es requerido")
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", dto.DefaultPageLimit), Offset: c.QueryInt("offset", 0)}
	page.Normalize()
	out, err := h.m.ListProductsByVendor(c.UserContext(), vendor, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
