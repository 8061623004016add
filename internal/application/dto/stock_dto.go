package dto

import "time"

// CreateStockRequest body para POST /api/stock.
type CreateStockRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// AdjustStockRequest body para PATCH /api/stock: ajuste relativo (±).
type AdjustStockRequest struct {
	ID         string `json:"id"`
	Adjustment int64  `json:"adjustment"`
}

// StockResponse fila de stock; Product viene anidado en listados y ajustes.
type StockResponse struct {
	ID        string        `json:"id"`
	ProductID string        `json:"productId"`
	Quantity  int64         `json:"quantity"`
	Product   *ProductBrief `json:"product,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
