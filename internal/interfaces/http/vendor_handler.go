package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/everledger-liquor/internal/application/dto"
	"github.com/jhoicas/everledger-liquor/internal/application/manager"
	"github.com/jhoicas/everledger-liquor/internal/domain/entity"
	"github.com/jhoicas/everledger-liquor/pkg/logger"
)

// VendorHandler maneja el registro de identidades de proveedores.
type VendorHandler struct {
	m   *manager.Manager
	log *logger.Logger
}

// NewVendorHandler construye el handler.
func NewVendorHandler(m *manager.Manager, log *logger.Logger) *VendorHandler {
	return &VendorHandler{m: m, log: log}
}

// Register godoc
// @Summary      Registrar identidad del llamador
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        role  path  string                 true  "label | beverage"
// @Param        body  body  dto.VendorNameRequest  true  "Nombre de la empresa"
// @Success      201   {object}  dto.OperationResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendors/{role}/identity [post]
func (h *VendorHandler) Register(c *fiber.Ctx) error {
	role, ok := entity.ParseVendorRole(c.Params("role"))
	if !ok {
		return badRequest(c, "INVALID_ROLE", "role debe ser label o beverage")
	}
	var in dto.VendorNameRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c, err)
	}
	out, err := h.m.RegisterMyIdentity(c.UserContext(), GetCallerAddress(c), role, in.Name)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Cambiar el nombre de la empresa del llamador
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        role  path  string                 true  "label | beverage"
// @Param        body  body  dto.VendorNameRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.OperationResult
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendors/{role}/identity [put]
func (h *VendorHandler) Rename(c *fiber.Ctx) error {
	role, ok := entity.ParseVendorRole(c.Params("role"))
	if !ok {
		return badRequest(c, "INVALID_ROLE", "role debe ser label o beverage")
	}
	var in dto.VendorNameRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c, err)
	}
	out, err := h.m.UpdateCompanyName(c.UserContext(), GetCallerAddress(c), role, in.Name)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetAddress godoc
// @Summary      Resolver la dirección de un proveedor
// @Tags         vendors
// @Produce      json
// @Param        role  path  string  true  "label | beverage"
// @Param        name  path  string  true  "Nombre de la empresa"
// @Success      200   {object}  dto.VendorAddressResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendors/{role}/{name} [get]
func (h *VendorHandler) GetAddress(c *fiber.Ctx) error {
	role, ok := entity.ParseVendorRole(c.Params("role"))
	if !ok {
		return badRequest(c, "INVALID_ROLE", "role debe ser label o beverage")
	}
	name, err := pathParam(c, "name")
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.m.GetVendorAddress(role, name)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
