package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pymesoft/gestion-pyme/internal/application/dto"
	"github.com/pymesoft/gestion-pyme/internal/domain"
	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
)

// CreateInvoiceUseCase crea una factura con sus líneas en una sola transacción.
//
// El contrato es el del checkout del POS: los diez campos del request se validan
// solo por presencia, impTotal se calcula una única vez como amount + impIVA,
// y cada id de producto distinto genera una línea con cantidad fija 1 (las
// cantidades y descuentos del carrito ya fueron aplanados en amount).
// La creación de la factura NO descuenta stock.
type CreateInvoiceUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository

	// preserveQuantities habilita el punto de extensión: cuando el request
	// trae Items explícitos se persiste la cantidad real por línea.
	preserveQuantities bool
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(txRunner TxRunner, invoiceRepo repository.InvoiceRepository, preserveQuantities bool) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:           txRunner,
		invoiceRepo:        invoiceRepo,
		preserveQuantities: preserveQuantities,
	}
}

// CreateInvoice valida presencia de los diez campos, calcula impTotal y
// persiste cabecera + líneas. Si falta un campo no se toca el almacenamiento.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Amount == nil || in.ProductIDs == nil || in.CustomerID == nil ||
		in.CbteTipo == nil || in.PtoVta == nil || in.Concepto == nil ||
		in.DocTipo == nil || in.DocNro == nil || in.ImpNeto == nil || in.ImpIVA == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		Amount:     *in.Amount,
		CustomerID: *in.CustomerID,
		CbteTipo:   *in.CbteTipo,
		PtoVta:     *in.PtoVta,
		Concepto:   *in.Concepto,
		DocTipo:    *in.DocTipo,
		DocNro:     *in.DocNro,
		ImpNeto:    *in.ImpNeto,
		ImpIVA:     *in.ImpIVA,
		ImpTotal:   in.Amount.Add(*in.ImpIVA),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	lines := uc.buildLines(inv.ID, in)

	err := uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, line := range lines {
			if err := invoiceRepo.CreateProduct(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv), nil
}

// buildLines aplana los ids a una línea por producto distinto con cantidad 1.
// Con preserveQuantities activo y Items presentes, se respetan las cantidades.
func (uc *CreateInvoiceUseCase) buildLines(invoiceID string, in dto.CreateInvoiceRequest) []*entity.InvoiceProduct {
	if uc.preserveQuantities && len(in.Items) > 0 {
		lines := make([]*entity.InvoiceProduct, 0, len(in.Items))
		seen := make(map[string]*entity.InvoiceProduct)
		for _, item := range in.Items {
			if item.ProductID == "" {
				continue
			}
			if existing, ok := seen[item.ProductID]; ok {
				existing.Quantity += item.Quantity
				continue
			}
			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			line := &entity.InvoiceProduct{
				ID:        uuid.New().String(),
				InvoiceID: invoiceID,
				ProductID: item.ProductID,
				Quantity:  qty,
			}
			seen[item.ProductID] = line
			lines = append(lines, line)
		}
		return lines
	}

	seen := make(map[string]struct{}, len(in.ProductIDs))
	lines := make([]*entity.InvoiceProduct, 0, len(in.ProductIDs))
	for _, productID := range in.ProductIDs {
		if _, ok := seen[productID]; ok {
			continue
		}
		seen[productID] = struct{}{}
		lines = append(lines, &entity.InvoiceProduct{
			ID:        uuid.New().String(),
			InvoiceID: invoiceID,
			ProductID: productID,
			Quantity:  1,
		})
	}
	return lines
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		Amount:     inv.Amount,
		CustomerID: inv.CustomerID,
		CbteTipo:   inv.CbteTipo,
		PtoVta:     inv.PtoVta,
		Concepto:   inv.Concepto,
		DocTipo:    inv.DocTipo,
		DocNro:     inv.DocNro,
		ImpNeto:    inv.ImpNeto,
		ImpIVA:     inv.ImpIVA,
		ImpTotal:   inv.ImpTotal,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}
