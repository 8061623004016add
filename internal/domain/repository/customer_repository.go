package repository

import "github.com/pymesoft/gestion-pyme/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
// Las implementaciones devuelven (nil, nil) cuando no hay fila.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// List devuelve todos los clientes; si search no es vacío filtra por
	// nombre (contiene, case-insensitive). Sin paginación.
	List(search string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
