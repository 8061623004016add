package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/facturacion.
// Todos los campos son punteros (o slice) para poder distinguir "ausente" de
// "cero": la validación es solo de presencia, no de rango.
type CreateInvoiceRequest struct {
	Amount     *decimal.Decimal `json:"amount"`
	ProductIDs []string         `json:"productIds"`
	CustomerID *string          `json:"customerId"`
	CbteTipo   *int             `json:"cbteTipo"`
	PtoVta     *int             `json:"ptoVta"`
	Concepto   *int             `json:"concepto"`
	DocTipo    *int             `json:"docTipo"`
	DocNro     *string          `json:"docNro"`
	ImpNeto    *decimal.Decimal `json:"impNeto"`
	ImpIVA     *decimal.Decimal `json:"impIVA"`

	// Items es opcional: solo se usa cuando la configuración
	// Billing.PreserveLineQuantities está activa, para conservar la cantidad
	// real por línea en vez del valor fijo 1.
	Items []InvoiceItemRequest `json:"items,omitempty"`
}

// InvoiceItemRequest línea explícita (producto, cantidad).
type InvoiceItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// InvoiceResponse factura recién creada: solo IDs y montos, sin expandir
// cliente ni productos.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	CustomerID string          `json:"customerId,omitempty"`
	CbteTipo   int             `json:"cbteTipo"`
	PtoVta     int             `json:"ptoVta"`
	Concepto   int             `json:"concepto"`
	DocTipo    int             `json:"docTipo"`
	DocNro     string          `json:"docNro"`
	ImpNeto    decimal.Decimal `json:"impNeto"`
	ImpIVA     decimal.Decimal `json:"impIVA"`
	ImpTotal   decimal.Decimal `json:"impTotal"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// InvoiceDetailedResponse factura con cliente y líneas expandidas
// (GET /api/facturacion y GET /api/facturacion/:id).
type InvoiceDetailedResponse struct {
	InvoiceResponse
	Customer *CustomerResponse     `json:"customer,omitempty"`
	Products []InvoiceLineResponse `json:"products"`
}

// InvoiceLineResponse línea de factura con el producto anidado.
type InvoiceLineResponse struct {
	ID       string        `json:"id"`
	Quantity int           `json:"quantity"`
	Product  *ProductBrief `json:"product,omitempty"`
}

// GeneratePDFRequest body para POST /api/facturacion?action=generate-pdf.
type GeneratePDFRequest struct {
	InvoiceID string `json:"invoiceId"`
}
