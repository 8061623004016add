package repository

import "github.com/pymesoft/gestion-pyme/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// List devuelve todos los productos; si search no es vacío filtra por
	// nombre (contiene, case-insensitive).
	List(search string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete elimina el producto sin verificar referencias desde líneas de factura.
	Delete(id string) error
}
