package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pymesoft/gestion-pyme/internal/application/dto"
	"github.com/pymesoft/gestion-pyme/internal/application/pos"
	"github.com/pymesoft/gestion-pyme/internal/domain"
)

// POSHandler maneja el checkout del punto de venta.
type POSHandler struct {
	uc *pos.CheckoutUseCase
}

// NewPOSHandler construye el handler.
func NewPOSHandler(uc *pos.CheckoutUseCase) *POSHandler {
	return &POSHandler{uc: uc}
}

// Checkout recibe el estado del carrito y lo factura.
// POST /api/pos/checkout
func (h *POSHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.uc.Checkout(c.Context(), cartFromRequest(in), in.CustomerID)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el carrito está vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// cartFromRequest reconstruye el carrito a partir del body del request.
// Items repetidos del mismo producto colapsan en una sola línea (se pisa la
// cantidad, no se suma), igual que en el carrito interactivo.
func cartFromRequest(in dto.CheckoutRequest) *pos.Cart {
	cart := pos.NewCart()
	for _, item := range in.Items {
		cart.Add(item.ProductID, item.Name, item.Price)
		if item.Quantity > 0 {
			cart.SetQuantity(item.ProductID, item.Quantity)
		}
		if !item.Discount.IsZero() {
			cart.SetDiscount(item.ProductID, item.Discount)
		}
	}
	return cart
}
