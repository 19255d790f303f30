// Package inventory implementa el caso de uso del libro de stock: el único
// escritor del saldo de productos.
package inventory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// maxBalanceRetries intentos ante ErrConcurrentUpdate antes de rendirse.
const maxBalanceRetries = 3

// StockLedgerUseCase registra entradas y salidas de stock garantizando que el
// saldo del producto siempre sea la suma neta de sus movimientos.
//
// La sección crítica "cargar producto → validar → actualizar saldo → insertar
// movimiento" se serializa por producto: un mutex por ID dentro del proceso y
// una escritura compare-and-swap del saldo en la persistencia. El CAS cubre
// despliegues con varias instancias, donde el mutex local no alcanza; si la
// escritura pierde la carrera se reintenta desde la carga, con tope acotado.
type StockLedgerUseCase struct {
	txRunner TxRunner
	locks    sync.Map // product ID -> *sync.Mutex
	now      func() time.Time
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner) *StockLedgerUseCase {
	return &StockLedgerUseCase{
		txRunner: txRunner,
		now:      time.Now,
	}
}

// InflowInputDTO entrada para registrar una entrada de stock.
// Lot y ExpiryDate son obligatorios si el producto es perecedero.
type InflowInputDTO struct {
	ProductID  string
	Quantity   int
	Lot        string
	ExpiryDate *time.Time
	Note       string
}

// OutflowInputDTO entrada para registrar una salida de stock.
type OutflowInputDTO struct {
	ProductID string
	Quantity  int
	Note      string
}

// RegisterInflow valida y registra una entrada: suma Quantity al saldo del
// producto y persiste el movimiento en la misma transacción.
func (uc *StockLedgerUseCase) RegisterInflow(ctx context.Context, input InflowInputDTO) (*entity.Movement, error) {
	movement := &entity.Movement{
		ProductID:  input.ProductID,
		Type:       entity.MovementTypeInflow,
		Quantity:   input.Quantity,
		Lot:        input.Lot,
		ExpiryDate: input.ExpiryDate,
		Note:       input.Note,
	}
	return uc.register(ctx, movement, input.Quantity)
}

// RegisterOutflow valida y registra una salida: resta Quantity del saldo.
// La salida no acepta lote ni vencimiento; descuenta del saldo global.
func (uc *StockLedgerUseCase) RegisterOutflow(ctx context.Context, input OutflowInputDTO) (*entity.Movement, error) {
	movement := &entity.Movement{
		ProductID: input.ProductID,
		Type:      entity.MovementTypeOutflow,
		Quantity:  input.Quantity,
		Note:      input.Note,
	}
	return uc.register(ctx, movement, -input.Quantity)
}

// register ejecuta la sección crítica por producto y reintenta ante conflicto
// de escritura concurrente. delta es el efecto sobre el saldo (positivo para
// entrada, negativo para salida).
func (uc *StockLedgerUseCase) register(ctx context.Context, movement *entity.Movement, delta int) (*entity.Movement, error) {
	unlock := uc.lockProduct(movement.ProductID)
	defer unlock()

	var lastErr error
	for attempt := 0; attempt < maxBalanceRetries; attempt++ {
		now := uc.now()
		movement.ID = uuid.New().String()
		movement.CreatedAt = now

		err := uc.txRunner.Run(ctx, func(
			productRepo repository.ProductRepository,
			movementRepo repository.MovementRepository,
		) error {
			product, err := productRepo.GetByID(movement.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}

			if err := domaininv.ValidateMovement(movement, product, now); err != nil {
				return err
			}

			// Saldo primero, movimiento después: misma transacción, el
			// TxRunner confirma o revierte ambos juntos.
			newQuantity := product.CurrentQuantity + delta
			if err := productRepo.UpdateQuantity(product.ID, newQuantity, product.CurrentQuantity); err != nil {
				return err
			}
			return movementRepo.Create(movement)
		})
		if err == nil {
			return movement, nil
		}
		if !errors.Is(err, domain.ErrConcurrentUpdate) {
			return nil, err
		}
		// Otra escritura ganó la carrera: recargar y reintentar desde cero.
		lastErr = err
	}
	return nil, lastErr
}

// lockProduct serializa el acceso por ID de producto dentro del proceso.
// Operaciones sobre productos distintos corren en paralelo.
func (uc *StockLedgerUseCase) lockProduct(productID string) func() {
	v, _ := uc.locks.LoadOrStore(productID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
