package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos de stock.
// Los movimientos son append-only en operación normal; Update y Delete existen
// en el contrato para correcciones administrativas y para la cascada al borrar
// un producto.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List() ([]*entity.Movement, error)
	ListByProduct(productID string) ([]*entity.Movement, error)
	ListByType(movementType string) ([]*entity.Movement, error)
	ListByLot(lot string) ([]*entity.Movement, error)
	ListByDateRange(from, to time.Time) ([]*entity.Movement, error)
	// ListExpiringWithin devuelve movimientos con vencimiento entre ref y
	// ref+days (componente fecha, inclusive), ordenados por vencimiento asc.
	ListExpiringWithin(ref time.Time, days int) ([]*entity.Movement, error)
	// ListExpired devuelve movimientos con vencimiento anterior a ref,
	// ordenados por vencimiento asc.
	ListExpired(ref time.Time) ([]*entity.Movement, error)
	Update(movement *entity.Movement) error
	Delete(id string) error
	DeleteByProduct(productID string) error
}
