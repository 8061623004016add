package billing

import (
	"context"
	"fmt"

	"github.com/pymesoft/gestion-pyme/internal/domain"
	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
)

// Placeholder cuando la factura no tiene cliente o el cliente fue borrado.
const unknownCustomerName = "Desconocido"

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF recupera la factura con cliente y líneas y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//
// Si el cliente fue borrado (o la factura nunca tuvo), el PDF se genera igual
// con "Desconocido" como nombre y email vacío.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	customerName := unknownCustomerName
	customerEmail := ""
	if inv.CustomerID != "" {
		customer, cErr := uc.customerRepo.GetByID(inv.CustomerID)
		if cErr == nil && customer != nil {
			customerName = customer.Name
			customerEmail = customer.Email
		}
	}

	lines, err := uc.invoiceRepo.GetProductsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		name := "Producto " + line.ProductID // fallback
		if product, pErr := uc.productRepo.GetByID(line.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		names = append(names, name)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, InvoicePDFData{
		InvoiceID:     inv.ID,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		ProductNames:  names,
		Amount:        inv.Amount,
		ImpIVA:        inv.ImpIVA,
		ImpTotal:      inv.ImpTotal,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("invoice_%s.pdf", inv.ID)
	return pdfBytes, filename, nil
}
