package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible.
// UserID referencia al usuario dueño. Un producto puede tener varias filas de Stock.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precio de venta, positivo
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
