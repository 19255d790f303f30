package inventory

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// MovementQueryUseCase lecturas sobre el historial de movimientos. Solo
// consulta; el registro pasa siempre por StockLedgerUseCase.
type MovementQueryUseCase struct {
	movementRepo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movementRepo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movementRepo: movementRepo}
}

// GetByID obtiene un movimiento por ID.
func (uc *MovementQueryUseCase) GetByID(id string) (*entity.Movement, error) {
	movement, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	return movement, nil
}

// List lista todos los movimientos, más reciente primero.
func (uc *MovementQueryUseCase) List() ([]*entity.Movement, error) {
	return uc.movementRepo.List()
}

// ListByProduct lista los movimientos de un producto.
func (uc *MovementQueryUseCase) ListByProduct(productID string) ([]*entity.Movement, error) {
	return uc.movementRepo.ListByProduct(productID)
}

// ListByType lista los movimientos de un tipo (INFLOW u OUTFLOW).
func (uc *MovementQueryUseCase) ListByType(movementType string) ([]*entity.Movement, error) {
	if !entity.IsValidMovementType(movementType) {
		return nil, &domain.ValidationError{Field: "type", Reason: "tipo de movimiento desconocido"}
	}
	return uc.movementRepo.ListByType(movementType)
}

// ListByLot lista los movimientos de un lote.
func (uc *MovementQueryUseCase) ListByLot(lot string) ([]*entity.Movement, error) {
	return uc.movementRepo.ListByLot(lot)
}

// ListByDateRange lista los movimientos registrados entre from y to.
func (uc *MovementQueryUseCase) ListByDateRange(from, to time.Time) ([]*entity.Movement, error) {
	if to.Before(from) {
		return nil, &domain.ValidationError{Field: "date_range", Reason: "la fecha final no puede ser anterior a la inicial"}
	}
	return uc.movementRepo.ListByDateRange(from, to)
}
