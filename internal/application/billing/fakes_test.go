package billing_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// memInvoiceRepo repo de facturas en memoria para los tests.
type memInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	lines    []*entity.InvoiceProduct
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
}

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *memInvoiceRepo) CreateProduct(line *entity.InvoiceProduct) error {
	cp := *line
	r.lines = append(r.lines, &cp)
	return nil
}

func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	return inv, nil
}

func (r *memInvoiceRepo) List() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r *memInvoiceRepo) GetProductsByInvoiceID(invoiceID string) ([]*entity.InvoiceProduct, error) {
	var out []*entity.InvoiceProduct
	for _, line := range r.lines {
		if line.InvoiceID == invoiceID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (r *memInvoiceRepo) Delete(id string) error {
	delete(r.invoices, id)
	return nil
}

// memTxRunner pasa el repo en memoria como si fuera transaccional.
type memTxRunner struct {
	repo *memInvoiceRepo
}

func (t *memTxRunner) RunBilling(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(t.repo)
}

// memCustomerRepo repo de clientes en memoria (solo lo que usan los tests).
type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *memCustomerRepo) List(string) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) Delete(id string) error {
	delete(r.customers, id)
	return nil
}

// memProductRepo repo de productos en memoria.
type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *memProductRepo) List(string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}
