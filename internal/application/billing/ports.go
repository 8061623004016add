package billing

import (
	"context"

	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta una función con el repo de facturas atado a una transacción:
// cabecera y líneas se confirman o descartan juntas.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator renderiza la representación gráfica de una factura.
// customerName/customerEmail ya vienen resueltos (con placeholder si el
// cliente fue borrado); productNames es un nombre por línea, sin cantidades.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data InvoicePDFData) ([]byte, error)
}

// InvoicePDFData datos planos para el layout fijo del PDF.
type InvoicePDFData struct {
	InvoiceID     string
	CustomerName  string
	CustomerEmail string
	ProductNames  []string
	Amount        decimal.Decimal
	ImpIVA        decimal.Decimal
	ImpTotal      decimal.Decimal
}
