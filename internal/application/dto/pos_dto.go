package dto

import "github.com/shopspring/decimal"

// CheckoutRequest body para POST /api/pos/checkout: el estado del carrito
// tal como lo acumuló el cliente.
type CheckoutRequest struct {
	CustomerID string         `json:"customerId,omitempty"`
	Items      []CheckoutItem `json:"items"`
}

// CheckoutItem línea del carrito: producto, cantidad, descuento % y precio
// unitario (posiblemente sobrescrito por el operador).
type CheckoutItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Discount  decimal.Decimal `json:"discount"`
	Price     decimal.Decimal `json:"price"`
}
