package billing

import (
	"github.com/pymesoft/gestion-pyme/internal/application/dto"
	"github.com/pymesoft/gestion-pyme/internal/domain"
	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
)

// QueryUseCase consultas de facturas con cliente y líneas expandidos.
type QueryUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository) *QueryUseCase {
	return &QueryUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo, productRepo: productRepo}
}

// List devuelve todas las facturas con cliente y líneas anidados. Sin paginación.
func (uc *QueryUseCase) List() ([]*dto.InvoiceDetailedResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceDetailedResponse, 0, len(invoices))
	for _, inv := range invoices {
		detailed, err := uc.expand(inv)
		if err != nil {
			return nil, err
		}
		out = append(out, detailed)
	}
	return out, nil
}

// Get devuelve una factura expandida.
// Una factura inexistente es ErrNotFound, nunca un error genérico.
func (uc *QueryUseCase) Get(id string) (*dto.InvoiceDetailedResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.expand(inv)
}

// Delete elimina la factura; las líneas caen por cascada en la DB.
func (uc *QueryUseCase) Delete(id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

func (uc *QueryUseCase) expand(inv *entity.Invoice) (*dto.InvoiceDetailedResponse, error) {
	detailed := &dto.InvoiceDetailedResponse{InvoiceResponse: *toInvoiceResponse(inv)}

	if inv.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(inv.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			detailed.Customer = &dto.CustomerResponse{
				ID:        customer.ID,
				Name:      customer.Name,
				CUIT:      customer.CUIT,
				Email:     customer.Email,
				Phone:     customer.Phone,
				CreatedAt: customer.CreatedAt,
				UpdatedAt: customer.UpdatedAt,
			}
		}
	}

	lines, err := uc.invoiceRepo.GetProductsByInvoiceID(inv.ID)
	if err != nil {
		return nil, err
	}
	detailed.Products = make([]dto.InvoiceLineResponse, 0, len(lines))
	for _, line := range lines {
		resp := dto.InvoiceLineResponse{ID: line.ID, Quantity: line.Quantity}
		if product, err := uc.productRepo.GetByID(line.ProductID); err == nil && product != nil {
			resp.Product = &dto.ProductBrief{ID: product.ID, Name: product.Name, Price: product.Price}
		}
		detailed.Products = append(detailed.Products, resp)
	}
	return detailed, nil
}
