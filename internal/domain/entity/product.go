package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto. La perecibilidad es el bit con significado de negocio:
// obliga lote y fecha de vencimiento en cada entrada.
const (
	CategoryPerishable    = "PERISHABLE"
	CategoryNonPerishable = "NON_PERISHABLE"
)

// IsValidCategory verifica que la categoría sea una de las conocidas.
func IsValidCategory(category string) bool {
	return category == CategoryPerishable || category == CategoryNonPerishable
}

// Product representa un producto o SKU del inventario.
// CurrentQuantity inicia en 0 y solo lo muta el motor de movimientos (stock ledger):
// siempre equivale a la suma neta de entradas menos salidas registradas.
type Product struct {
	ID              string
	SKU             string // código único en todo el catálogo
	Name            string
	Category        string          // PERISHABLE, NON_PERISHABLE
	UnitPrice       decimal.Decimal // precio unitario, siempre > 0
	MinimumQuantity int             // umbral de reorden
	CurrentQuantity int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPerishable indica si el producto exige lote y vencimiento en sus entradas.
func (p *Product) IsPerishable() bool {
	return p.Category == CategoryPerishable
}

// IsLowStock indica si el saldo está por debajo del umbral de reorden (alerta).
func (p *Product) IsLowStock() bool {
	return p.CurrentQuantity < p.MinimumQuantity
}

// HasSufficientStock verifica si hay saldo para una salida de la cantidad dada.
func (p *Product) HasSufficientStock(quantity int) bool {
	return p.CurrentQuantity >= quantity
}

// InventoryValue devuelve el valor del saldo actual (cantidad × precio unitario).
func (p *Product) InventoryValue() decimal.Decimal {
	return decimal.NewFromInt(int64(p.CurrentQuantity)).Mul(p.UnitPrice)
}
