package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create inserta una fila de stock. No se valida unicidad por producto.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.ProductID, stock.Quantity, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de stock por ID.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `SELECT id, product_id, quantity, updated_at FROM stock WHERE id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// List lista todas las filas de stock.
func (r *StockRepo) List() ([]*entity.Stock, error) {
	return r.list(`SELECT id, product_id, quantity, updated_at FROM stock ORDER BY updated_at DESC`)
}

// ListByProduct lista las filas de stock de un producto.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.Stock, error) {
	return r.list(`SELECT id, product_id, quantity, updated_at FROM stock WHERE product_id = $1 ORDER BY updated_at DESC`, productID)
}

func (r *StockRepo) list(query string, args ...any) ([]*entity.Stock, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Adjust aplica el delta en una sola sentencia atómica: ajustes concurrentes
// sobre la misma fila no se pierden entre sí. Sin piso en cero.
// Devuelve nil, nil si la fila no existe.
func (r *StockRepo) Adjust(id string, delta int64) (*entity.Stock, error) {
	query := `
		UPDATE stock
		SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1
		RETURNING id, product_id, quantity, updated_at`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(
		&s.ID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	return &s, nil
}

// Update reemplaza la cantidad de una fila (set absoluto, usado al editar producto).
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `UPDATE stock SET quantity = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, stock.ID, stock.Quantity, stock.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}
