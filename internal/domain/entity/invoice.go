package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura.
// Los campos fiscales AFIP (CbteTipo, PtoVta, Concepto, DocTipo, DocNro) se
// almacenan tal cual llegan; solo se exige presencia, no rango.
// ImpTotal se calcula una única vez al crear: amount + impIVA. No hay camino de edición.
type Invoice struct {
	ID         string
	Amount     decimal.Decimal
	CustomerID string // vacío = factura sin cliente asociado
	CbteTipo   int
	PtoVta     int
	Concepto   int
	DocTipo    int
	DocNro     string
	ImpNeto    decimal.Decimal
	ImpIVA     decimal.Decimal
	ImpTotal   decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
