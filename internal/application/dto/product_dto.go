package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Quantity es el stock inicial que se crea junto con el producto.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	UserID   string          `json:"userId"`
	Quantity int64           `json:"quantity"`
}

// DeleteProductRequest body para DELETE /api/products (id en el cuerpo).
type DeleteProductRequest struct {
	ID string `json:"id"`
}

// UpdateProductRequest body para PUT /api/products (id en el cuerpo).
// Quantity reemplaza la cantidad de la primera fila de stock del producto.
type UpdateProductRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// ProductResponse producto con sus filas de stock.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	UserID    string          `json:"userId,omitempty"`
	Stocks    []StockResponse `json:"stocks,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProductBrief versión reducida para anidar en otras respuestas.
type ProductBrief struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
