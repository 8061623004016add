package repository

import "github.com/pymesoft/gestion-pyme/internal/domain/entity"

// StockRepository puerto de persistencia para el libro de stock.
type StockRepository interface {
	// Create inserta una fila nueva; no verifica si ya existe una fila
	// para el mismo producto (se permiten duplicados).
	Create(stock *entity.Stock) error
	GetByID(id string) (*entity.Stock, error)
	List() ([]*entity.Stock, error)
	ListByProduct(productID string) ([]*entity.Stock, error)
	// Adjust incrementa la cantidad de la fila en delta (positivo o negativo)
	// en una sola sentencia atómica y devuelve la fila actualizada.
	// No se aplica piso: la cantidad puede quedar negativa.
	Adjust(id string, delta int64) (*entity.Stock, error)
	Update(stock *entity.Stock) error
}
