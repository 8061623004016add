package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymesoft/gestion-pyme/internal/application/billing"
	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
	"github.com/pymesoft/gestion-pyme/internal/infrastructure/pdf"
	apphttp "github.com/pymesoft/gestion-pyme/internal/interfaces/http"
)

// Fakes mínimos para montar el handler de facturación sobre memoria.

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

type memTxRunner struct{ repo *memInvoiceRepo }

func (t *memTxRunner) RunBilling(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(t.repo)
}

type nilCustomerRepo struct{}

func (nilCustomerRepo) Create(*entity.Customer) error                 { return nil }
func (nilCustomerRepo) GetByID(string) (*entity.Customer, error)      { return nil, nil }
func (nilCustomerRepo) List(string) ([]*entity.Customer, error)       { return nil, nil }
func (nilCustomerRepo) Update(*entity.Customer) error                 { return nil }
func (nilCustomerRepo) Delete(string) error                           { return nil }

type nilProductRepo struct{}

func (nilProductRepo) Create(*entity.Product) error            { return nil }
func (nilProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (nilProductRepo) List(string) ([]*entity.Product, error)  { return nil, nil }
func (nilProductRepo) Update(*entity.Product) error            { return nil }
func (nilProductRepo) Delete(string) error                     { return nil }

func buildInvoiceApp(repo *memInvoiceRepo) *fiber.App {
	createUC := billing.NewCreateInvoiceUseCase(&memTxRunner{repo: repo}, repo, false)
	queryUC := billing.NewQueryUseCase(repo, nilCustomerRepo{}, nilProductRepo{})
	pdfUC := billing.NewPDFUseCase(repo, nilCustomerRepo{}, nilProductRepo{}, pdf.NewMarotoPDFGenerator(""))

	app := fiber.New()
	handler := apphttp.NewInvoiceHandler(createUC, queryUC, pdfUC)
	group := app.Group("/api/facturacion")
	group.Get("/", handler.List)
	group.Post("/", handler.Create)
	group.Get("/:id", handler.GetByID)
	group.Delete("/:id", handler.Delete)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func validInvoiceBody() map[string]any {
	return map[string]any{
		"amount":     "100",
		"productIds": []string{"p1", "p2"},
		"customerId": "cust-1",
		"cbteTipo":   1,
		"ptoVta":     1,
		"concepto":   1,
		"docTipo":    80,
		"docNro":     "12345678",
		"impNeto":    "100",
		"impIVA":     "21",
	}
}

func TestInvoiceHandler_Create_Retorna201(t *testing.T) {
	repo := newMemInvoiceRepo()
	app := buildInvoiceApp(repo)

	resp := postJSON(t, app, "/api/facturacion", validInvoiceBody())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["id"])
	assert.Len(t, repo.invoices, 1)
}

func TestInvoiceHandler_Create_CampoFaltante_Retorna400(t *testing.T) {
	repo := newMemInvoiceRepo()
	app := buildInvoiceApp(repo)

	body := validInvoiceBody()
	delete(body, "docNro")

	resp := postJSON(t, app, "/api/facturacion", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.invoices)
}

func TestInvoiceHandler_GetByID_Inexistente_Retorna404(t *testing.T) {
	app := buildInvoiceApp(newMemInvoiceRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/facturacion/no-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// La exportación comparte el POST con ?action=generate-pdf y responde el
// binario con los headers de descarga.
func TestInvoiceHandler_GeneratePDF_DevuelvePDF(t *testing.T) {
	repo := newMemInvoiceRepo()
	require.NoError(t, repo.Create(&entity.Invoice{
		ID:       "inv-1",
		Amount:   decimal.NewFromInt(100),
		ImpNeto:  decimal.NewFromInt(100),
		ImpIVA:   decimal.NewFromInt(21),
		ImpTotal: decimal.NewFromInt(121),
		CbteTipo: 1, PtoVta: 1, Concepto: 1, DocTipo: 80, DocNro: "12345678",
	}))
	app := buildInvoiceApp(repo)

	resp := postJSON(t, app, "/api/facturacion?action=generate-pdf", map[string]any{"invoiceId": "inv-1"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "invoice_inv-1.pdf")
}

func TestInvoiceHandler_GeneratePDF_FacturaInexistente_Retorna404(t *testing.T) {
	app := buildInvoiceApp(newMemInvoiceRepo())

	resp := postJSON(t, app, "/api/facturacion?action=generate-pdf", map[string]any{"invoiceId": "nada"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
