package memory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner versión en memoria del runner transaccional. No hay rollback real:
// la atomicidad la da la serialización por producto del caso de uso más el
// compare-and-swap del saldo, que es lo que ejercitan los tests.
type TxRunner struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewTxRunner construye el runner sobre los repositorios en memoria.
func NewTxRunner(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) *TxRunner {
	return &TxRunner{productRepo: productRepo, movementRepo: movementRepo}
}

// Run ejecuta fn con los repositorios del almacén.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(r.productRepo, r.movementRepo)
}
