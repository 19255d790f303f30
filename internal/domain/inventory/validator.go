// Package inventory contiene los servicios de dominio del motor de stock.
package inventory

import (
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ValidateMovement decide si un movimiento propuesto es admisible contra el
// producto que referencia (servicio de dominio, función pura sin I/O).
//
// today es la fecha de referencia para las comparaciones de vencimiento; se
// inyecta en lugar de leer el reloj del sistema para que los tests sean
// deterministas. Mismas entradas, mismo veredicto.
//
// Reglas:
//   - Quantity debe ser mayor que cero.
//   - Producto perecedero: Lot y ExpiryDate son obligatorios.
//   - ExpiryDate, si viene, no puede ser anterior a la fecha de hoy.
//   - OUTFLOW: el saldo actual debe cubrir la cantidad solicitada.
func ValidateMovement(movement *entity.Movement, product *entity.Product, today time.Time) error {
	if movement.Quantity <= 0 {
		return &domain.ValidationError{Field: "quantity", Reason: "la cantidad debe ser mayor que cero"}
	}

	if product.IsPerishable() {
		if strings.TrimSpace(movement.Lot) == "" {
			return &domain.ValidationError{Field: "lot", Reason: "el lote es obligatorio para productos perecederos"}
		}
		if movement.ExpiryDate == nil {
			return &domain.ValidationError{Field: "expiry_date", Reason: "la fecha de vencimiento es obligatoria para productos perecederos"}
		}
	}

	if movement.ExpiryDate != nil {
		if entity.DateOnly(*movement.ExpiryDate).Before(entity.DateOnly(today)) {
			return &domain.ValidationError{Field: "expiry_date", Reason: "la fecha de vencimiento no puede ser anterior a la fecha actual"}
		}
	}

	if movement.Type == entity.MovementTypeOutflow && !product.HasSufficientStock(movement.Quantity) {
		return &domain.InsufficientStockError{
			Available: product.CurrentQuantity,
			Requested: movement.Quantity,
		}
	}

	return nil
}
