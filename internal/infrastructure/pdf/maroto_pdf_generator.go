// Package pdf implementa la generación del comprobante imprimible de una
// factura usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  [logo opcional]   Factura                  │
//	│  ─────────────────────────────────────────  │
//	│  Cliente: <nombre>                          │
//	│  Email: <email>                             │
//	│  ─────────────────────────────────────────  │
//	│  Producto: <nombre>        (una por línea)  │
//	│  ─────────────────────────────────────────  │
//	│  Monto / IVA / Total                        │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/pymesoft/gestion-pyme/internal/application/billing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	// logoPath es opcional; si está presente y el archivo no puede
	// leerse, la generación falla (no hay fallback silencioso).
	logoPath string
}

// NewMarotoPDFGenerator construye el generador. logoPath puede ser vacío.
func NewMarotoPDFGenerator(logoPath string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{logoPath: logoPath}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	data appbilling.InvoicePDFData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Factura", true).
		Build()

	m := maroto.New(cfg)

	if g.logoPath != "" {
		logoRow, err := g.logoRow()
		if err != nil {
			return nil, err
		}
		m.AddRows(logoRow)
	}

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRows(data)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(productRows(data.ProductNames)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// logoRow lee el archivo de logo y lo embebe. Soporta png y jpg.
func (g *MarotoPDFGenerator) logoRow() (core.Row, error) {
	raw, err := os.ReadFile(g.logoPath)
	if err != nil {
		return nil, fmt.Errorf("pdf: leer logo %s: %w", g.logoPath, err)
	}
	ext := extension.Png
	if strings.HasSuffix(strings.ToLower(g.logoPath), ".jpg") ||
		strings.HasSuffix(strings.ToLower(g.logoPath), ".jpeg") {
		ext = extension.Jpg
	}
	return row.New(20).Add(
		col.New(3).Add(image.NewFromBytes(raw, ext, props.Rect{
			Center: false, Percent: 90,
		})),
		col.New(9),
	), nil
}

// titleRow: título "Factura" centrado.
func titleRow() core.Row {
	return row.New(14).Add(
		col.New(12).Add(text.New("Factura", props.Text{
			Style: fontstyle.Bold, Size: 18, Align: align.Center,
			Color: colorPrimary, Top: 2,
		})),
	)
}

// customerRows: nombre del cliente y email en líneas separadas.
func customerRows(data appbilling.InvoicePDFData) []core.Row {
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("Cliente: "+data.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 1,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Email: "+data.CustomerEmail, props.Text{
				Size: 9, Color: colorGray, Top: 1,
			}),
		)),
	}
}

// productRows: una fila por nombre de producto.
func productRows(names []string) []core.Row {
	rows := make([]core.Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Producto: "+name, props.Text{Size: 9, Top: 1}),
		)))
	}
	return rows
}

// totalsRows: Monto, IVA y Total, una línea cada uno.
func totalsRows(data appbilling.InvoicePDFData) []core.Row {
	plain := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			})),
			col.New(2).Add(text.New(value, props.Text{
				Size: 9, Align: align.Right, Right: 1,
			})),
		)
	}
	grand := func(label, value string) core.Row {
		return row.New(8).Add(
			col.New(8),
			col.New(2).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2,
			})),
			col.New(2).Add(text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1,
			})),
		)
	}
	return []core.Row{
		plain("Monto:", "$"+data.Amount.StringFixed(2)),
		plain("IVA:", "$"+data.ImpIVA.StringFixed(2)),
		grand("Total:", "$"+data.ImpTotal.StringFixed(2)),
	}
}
