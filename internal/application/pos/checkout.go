package pos

import (
	"context"

	"github.com/pymesoft/gestion-pyme/internal/application/dto"
	"github.com/pymesoft/gestion-pyme/internal/domain"
)

// Valores fiscales fijos del POS: factura tipo 1, punto de venta 1,
// concepto productos, documento DNI genérico.
const (
	posCbteTipo = 1
	posPtoVta   = 1
	posConcepto = 1
	posDocTipo  = 80
	posDocNro   = "12345678"
)

// InvoiceCreator es el puerto hacia el constructor de facturas.
type InvoiceCreator interface {
	CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
}

// CheckoutUseCase aplana el carrito y lo envía al constructor de facturas.
type CheckoutUseCase struct {
	invoices InvoiceCreator
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(invoices InvoiceCreator) *CheckoutUseCase {
	return &CheckoutUseCase{invoices: invoices}
}

// Checkout factura el contenido del carrito. El carrito se vacía únicamente
// si la factura se creó con éxito; ante error queda intacto para reintentar.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, cart *Cart, customerID string) (*dto.InvoiceResponse, error) {
	if cart == nil || cart.Empty() {
		return nil, domain.ErrInvalidInput
	}
	resp, err := uc.invoices.CreateInvoice(ctx, FlattenRequest(cart, customerID))
	if err != nil {
		return nil, err
	}
	cart.Clear()
	return resp, nil
}

// FlattenRequest arma el request del constructor de facturas a partir del
// carrito: ids de producto (las cantidades y descuentos quedan absorbidos en
// amount), monto total, IVA 21% y los campos fiscales fijos del POS.
// Los Items explícitos viajan también, por si la configuración de facturación
// conserva cantidades por línea.
func FlattenRequest(cart *Cart, customerID string) dto.CreateInvoiceRequest {
	lines := cart.Lines()
	productIDs := make([]string, 0, len(lines))
	items := make([]dto.InvoiceItemRequest, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
		items = append(items, dto.InvoiceItemRequest{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	amount := cart.Total()
	impIVA := cart.IVA()
	impNeto := amount
	cbteTipo := posCbteTipo
	ptoVta := posPtoVta
	concepto := posConcepto
	docTipo := posDocTipo
	docNro := posDocNro

	return dto.CreateInvoiceRequest{
		Amount:     &amount,
		ProductIDs: productIDs,
		CustomerID: &customerID,
		CbteTipo:   &cbteTipo,
		PtoVta:     &ptoVta,
		Concepto:   &concepto,
		DocTipo:    &docTipo,
		DocNro:     &docNro,
		ImpNeto:    &impNeto,
		ImpIVA:     &impIVA,
		Items:      items,
	}
}
