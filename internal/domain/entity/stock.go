package entity

import "time"

// Stock representa una fila del libro de stock: cantidad disponible de un producto.
// Puede haber más de una fila por producto y la cantidad puede quedar negativa;
// el ajuste relativo es la única operación que la muta de a incrementos.
type Stock struct {
	ID        string
	ProductID string
	Quantity  int64
	UpdatedAt time.Time
}
