package entity

import "time"

// Customer representa un cliente de la pyme (facturación).
// CUIT se trata como string opaco obligatorio; no se valida formato ni unicidad.
type Customer struct {
	ID        string
	Name      string
	CUIT      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
