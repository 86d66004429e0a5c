package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
)

// ProductHandler maneja el alta de productos.
type ProductHandler struct {
	uc ProductCreator
}

// NewProductHandler construye el handler.
func NewProductHandler(uc ProductCreator) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto con saldo inicial
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido: price e initial_quantity deben ser numéricos")
	}
	out, err := h.uc.CreateProduct(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
