package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de una factura. customer_id NULL si no hay cliente.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (
			id, amount, customer_id,
			cbte_tipo, pto_vta, concepto, doc_tipo, doc_nro,
			imp_neto, imp_iva, imp_total,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Amount, nullIfEmpty(invoice.CustomerID),
		invoice.CbteTipo, invoice.PtoVta, invoice.Concepto, invoice.DocTipo, invoice.DocNro,
		invoice.ImpNeto, invoice.ImpIVA, invoice.ImpTotal,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateProduct persiste una línea de factura.
func (r *InvoiceRepo) CreateProduct(line *entity.InvoiceProduct) error {
	query := `
		INSERT INTO invoice_products (id, invoice_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.InvoiceID, line.ProductID, line.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert invoice line: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, amount, COALESCE(customer_id::text, ''),
			cbte_tipo, pto_vta, concepto, doc_tipo, doc_nro,
			imp_neto, imp_iva, imp_total,
			created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.Amount, &inv.CustomerID,
		&inv.CbteTipo, &inv.PtoVta, &inv.Concepto, &inv.DocTipo, &inv.DocNro,
		&inv.ImpNeto, &inv.ImpIVA, &inv.ImpTotal,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List devuelve todas las facturas, más recientes primero.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	query := `
		SELECT id, amount, COALESCE(customer_id::text, ''),
			cbte_tipo, pto_vta, concepto, doc_tipo, doc_nro,
			imp_neto, imp_iva, imp_total,
			created_at, updated_at
		FROM invoices ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.Amount, &inv.CustomerID,
			&inv.CbteTipo, &inv.PtoVta, &inv.Concepto, &inv.DocTipo, &inv.DocNro,
			&inv.ImpNeto, &inv.ImpIVA, &inv.ImpTotal,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetProductsByInvoiceID devuelve las líneas de una factura.
func (r *InvoiceRepo) GetProductsByInvoiceID(invoiceID string) ([]*entity.InvoiceProduct, error) {
	query := `
		SELECT id, invoice_id, product_id, quantity
		FROM invoice_products WHERE invoice_id = $1`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.InvoiceProduct
	for rows.Next() {
		var l entity.InvoiceProduct
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// Delete elimina la factura; sus líneas caen por cascada.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
