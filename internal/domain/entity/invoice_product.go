package entity

// InvoiceProduct es la línea de detalle de una factura (join Invoice-Product).
// La cantidad por defecto es 1: el flujo POS aplana el carrito a ids distintos
// y descarta cantidades y descuentos por línea.
type InvoiceProduct struct {
	ID        string
	InvoiceID string
	ProductID string
	Quantity  int
}
