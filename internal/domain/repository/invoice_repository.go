package repository

import "github.com/pymesoft/gestion-pyme/internal/domain/entity"

// InvoiceRepository puerto de persistencia para facturas y sus líneas.
// Las facturas se crean una sola vez; no hay camino de edición.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateProduct(line *entity.InvoiceProduct) error
	GetByID(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	GetProductsByInvoiceID(invoiceID string) ([]*entity.InvoiceProduct, error)
	Delete(id string) error
}
