package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
)

// DiscountHandler maneja los descuentos por cliente de un producto (protegido).
type DiscountHandler struct {
	uc *usecase.DiscountUseCase
}

// NewDiscountHandler construye el handler.
func NewDiscountHandler(uc *usecase.DiscountUseCase) *DiscountHandler {
	return &DiscountHandler{uc: uc}
}

// ListByProduct godoc
// @Summary      Listar descuentos de un producto
// @Tags         discounts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.DiscountListResponse
// @Router       /api/products/{id}/discounts [get]
func (h *DiscountHandler) ListByProduct(c *fiber.Ctx) error {
	productID, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListByProduct(c.UserContext(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear descuento para un producto
// @Tags         discounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.CreateDiscountRequest  true  "Cliente y porcentaje"
// @Success      201   {object}  dto.DiscountListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/discounts [post]
func (h *DiscountHandler) Create(c *fiber.Ctx) error {
	productID, ok := parseID(c)
	if !ok {
		return nil
	}
	var in dto.CreateDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), productID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar un descuento
// @Tags         discounts
// @Security     Bearer
// @Produce      json
// @Param        id           path   int  true  "ID del producto"
// @Param        discount_id  path   int  true  "ID del descuento"
// @Success      200  {object}  dto.DiscountListResponse
// @Router       /api/products/{id}/discounts/{discount_id} [delete]
func (h *DiscountHandler) Delete(c *fiber.Ctx) error {
	productID, ok := parseID(c)
	if !ok {
		return nil
	}
	discountID, ok := parseParamID(c, "discount_id")
	if !ok {
		return nil
	}
	out, err := h.uc.Delete(c.UserContext(), productID, discountID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Activar o desactivar un descuento
// @Tags         discounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id           path  int  true  "ID del producto"
// @Param        discount_id  path  int  true  "ID del descuento"
// @Param        body         body  object{is_active=bool}  true  "Bandera de activo"
// @Success      200  {object}  dto.DiscountListResponse
// @Router       /api/products/{id}/discounts/{discount_id}/active [patch]
func (h *DiscountHandler) SetActive(c *fiber.Ctx) error {
	productID, ok := parseID(c)
	if !ok {
		return nil
	}
	discountID, ok := parseParamID(c, "discount_id")
	if !ok {
		return nil
	}
	var in struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&in); err != nil || in.IsActive == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "is_active es requerido"})
	}
	out, err := h.uc.SetActive(c.UserContext(), productID, discountID, *in.IsActive)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
