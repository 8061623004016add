// Package pos implementa el carrito del punto de venta y su checkout.
//
// El carrito es una secuencia ordenada de líneas indexada por producto:
// agregar un producto ya presente incrementa su cantidad en vez de duplicar
// la entrada. El total es Σ precio × cantidad × (1 − descuento/100) y el IVA
// se deriva como el 21% del total. Al hacer checkout el carrito se aplana a
// una lista de ids de producto distintos más el monto y el IVA calculados;
// las cantidades y descuentos por línea se pierden en ese aplanado.
package pos

import "github.com/shopspring/decimal"

// Alícuota de IVA aplicada sobre el total del carrito.
var ivaRate = decimal.NewFromFloat(0.21)

var oneHundred = decimal.NewFromInt(100)

// Line es una línea del carrito: producto, cantidad, descuento % y precio
// unitario (el operador puede sobrescribir el precio de lista).
type Line struct {
	ProductID string
	Name      string
	Quantity  int
	Discount  decimal.Decimal // porcentaje 0..100
	Price     decimal.Decimal
}

// Subtotal devuelve precio × cantidad × (1 − descuento/100).
func (l Line) Subtotal() decimal.Decimal {
	qty := decimal.NewFromInt(int64(l.Quantity))
	factor := decimal.NewFromInt(1).Sub(l.Discount.Div(oneHundred))
	return l.Price.Mul(qty).Mul(factor)
}

// Cart acumula líneas en memoria, en orden de inserción.
type Cart struct {
	lines []*Line
}

// NewCart crea un carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

// Add agrega un producto. Si ya está en el carrito incrementa su cantidad;
// si no, lo agrega al final con cantidad 1, sin descuento y precio de lista.
func (c *Cart) Add(productID, name string, price decimal.Decimal) {
	if line := c.find(productID); line != nil {
		line.Quantity++
		return
	}
	c.lines = append(c.lines, &Line{
		ProductID: productID,
		Name:      name,
		Quantity:  1,
		Discount:  decimal.Zero,
		Price:     price,
	})
}

// Remove quita la línea del producto, si existe.
func (c *Cart) Remove(productID string) {
	for i, line := range c.lines {
		if line.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity fija la cantidad de la línea del producto.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if line := c.find(productID); line != nil {
		line.Quantity = quantity
	}
}

// SetDiscount fija el descuento (porcentaje) de la línea del producto.
func (c *Cart) SetDiscount(productID string, discount decimal.Decimal) {
	if line := c.find(productID); line != nil {
		line.Discount = discount
	}
}

// SetPrice sobrescribe el precio unitario de la línea del producto.
func (c *Cart) SetPrice(productID string, price decimal.Decimal) {
	if line := c.find(productID); line != nil {
		line.Price = price
	}
}

// Total devuelve Σ precio × cantidad × (1 − descuento/100).
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// IVA devuelve el 21% del total.
func (c *Cart) IVA() decimal.Decimal {
	return c.Total().Mul(ivaRate)
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}

// Empty indica si el carrito no tiene líneas.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear vacía el carrito. Solo debe llamarse tras un checkout exitoso.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) find(productID string) *Line {
	for _, line := range c.lines {
		if line.ProductID == productID {
			return line
		}
	}
	return nil
}
