package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de persistencia,
// pasando repositorios atados a esa transacción. La actualización del saldo y
// el insert del movimiento deben confirmarse o revertirse juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
