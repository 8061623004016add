package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymesoft/gestion-pyme/internal/application/billing"
	"github.com/pymesoft/gestion-pyme/internal/domain"
	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
)

// capturePDFGenerator captura los datos que recibiría el renderer.
type capturePDFGenerator struct {
	last billing.InvoicePDFData
}

func (g *capturePDFGenerator) GenerateInvoicePDF(_ context.Context, data billing.InvoicePDFData) ([]byte, error) {
	g.last = data
	return []byte("%PDF-fake"), nil
}

func seedInvoice(repo *memInvoiceRepo, customerID string) *entity.Invoice {
	inv := &entity.Invoice{
		ID:         "inv-1",
		Amount:     dec("100"),
		CustomerID: customerID,
		CbteTipo:   1, PtoVta: 1, Concepto: 1, DocTipo: 80, DocNro: "12345678",
		ImpNeto: dec("100"), ImpIVA: dec("21"), ImpTotal: dec("121"),
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	_ = repo.Create(inv)
	return inv
}

func TestDownloadInvoicePDF_FacturaInexistente(t *testing.T) {
	gen := &capturePDFGenerator{}
	uc := billing.NewPDFUseCase(newMemInvoiceRepo(), newMemCustomerRepo(), newMemProductRepo(), gen)

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Cliente borrado (o factura sin cliente): el PDF sale igual con "Desconocido".
func TestDownloadInvoicePDF_ClienteBorrado_UsaDesconocido(t *testing.T) {
	invRepo := newMemInvoiceRepo()
	seedInvoice(invRepo, "cust-borrado")
	gen := &capturePDFGenerator{}
	uc := billing.NewPDFUseCase(invRepo, newMemCustomerRepo(), newMemProductRepo(), gen)

	pdfBytes, filename, err := uc.DownloadInvoicePDF(context.Background(), "inv-1")

	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "invoice_inv-1.pdf", filename)
	assert.Equal(t, "Desconocido", gen.last.CustomerName)
	assert.Empty(t, gen.last.CustomerEmail)
}

func TestDownloadInvoicePDF_ResuelveClienteYProductos(t *testing.T) {
	invRepo := newMemInvoiceRepo()
	inv := seedInvoice(invRepo, "cust-1")
	_ = invRepo.CreateProduct(&entity.InvoiceProduct{ID: "l1", InvoiceID: inv.ID, ProductID: "p1", Quantity: 1})
	_ = invRepo.CreateProduct(&entity.InvoiceProduct{ID: "l2", InvoiceID: inv.ID, ProductID: "p-borrado", Quantity: 1})

	custRepo := newMemCustomerRepo()
	_ = custRepo.Create(&entity.Customer{ID: "cust-1", Name: "Juana Pérez", CUIT: "20-12345678-3", Email: "juana@example.com"})

	prodRepo := newMemProductRepo()
	_ = prodRepo.Create(&entity.Product{ID: "p1", Name: "Yerba", Price: dec("100")})

	gen := &capturePDFGenerator{}
	uc := billing.NewPDFUseCase(invRepo, custRepo, prodRepo, gen)

	_, _, err := uc.DownloadInvoicePDF(context.Background(), inv.ID)

	require.NoError(t, err)
	assert.Equal(t, "Juana Pérez", gen.last.CustomerName)
	assert.Equal(t, "juana@example.com", gen.last.CustomerEmail)
	require.Len(t, gen.last.ProductNames, 2)
	assert.Equal(t, "Yerba", gen.last.ProductNames[0])
	assert.Equal(t, "Producto p-borrado", gen.last.ProductNames[1],
		"producto borrado usa el placeholder con su id")
	assert.True(t, dec("100").Equal(gen.last.Amount))
	assert.True(t, dec("21").Equal(gen.last.ImpIVA))
	assert.True(t, dec("121").Equal(gen.last.ImpTotal))
}
