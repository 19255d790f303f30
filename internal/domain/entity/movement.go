package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeInflow  = "INFLOW"  // entrada
	MovementTypeOutflow = "OUTFLOW" // salida
)

// IsValidMovementType verifica que el tipo sea uno de los conocidos.
func IsValidMovementType(movementType string) bool {
	return movementType == MovementTypeInflow || movementType == MovementTypeOutflow
}

// Movement representa un movimiento de stock (entrada o salida) contra un producto.
// Es un registro append-only: una vez persistido no se altera; las correcciones
// serían movimientos compensatorios nuevos.
// Lot y ExpiryDate viajan juntos y son obligatorios cuando el producto es perecedero.
type Movement struct {
	ID         string
	ProductID  string // referencia no-propietaria al producto
	Type       string // INFLOW, OUTFLOW
	Quantity   int    // siempre > 0; el tipo define el signo del efecto
	Lot        string
	ExpiryDate *time.Time
	Note       string
	CreatedAt  time.Time
}

// HasExpiry indica si el movimiento lleva fecha de vencimiento.
func (m *Movement) HasExpiry() bool {
	return m.ExpiryDate != nil
}

// IsExpired indica si el vencimiento ya pasó respecto a la fecha de referencia.
// Compara solo la componente de fecha, no la hora.
func (m *Movement) IsExpired(ref time.Time) bool {
	if m.ExpiryDate == nil {
		return false
	}
	return DateOnly(*m.ExpiryDate).Before(DateOnly(ref))
}

// IsExpiringWithin indica si el movimiento vence dentro de los próximos días
// contados desde ref (inclusive), sin estar ya vencido.
func (m *Movement) IsExpiringWithin(ref time.Time, days int) bool {
	if m.ExpiryDate == nil {
		return false
	}
	expiry := DateOnly(*m.ExpiryDate)
	today := DateOnly(ref)
	limit := today.AddDate(0, 0, days)
	return !expiry.Before(today) && !expiry.After(limit)
}

// DateOnly trunca un instante a su componente de fecha (medianoche local).
// Las comparaciones de vencimiento se hacen siempre a nivel de día.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
