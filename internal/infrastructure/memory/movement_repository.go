package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepository)(nil)

// MovementRepository adaptador en memoria del puerto MovementRepository.
type MovementRepository struct {
	mu        sync.RWMutex
	movements map[string]*entity.Movement
}

// NewMovementRepository construye el adaptador vacío.
func NewMovementRepository() *MovementRepository {
	return &MovementRepository{movements: make(map[string]*entity.Movement)}
}

// Create persiste un movimiento; asigna ID si viene vacío.
func (r *MovementRepository) Create(movement *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	clone := cloneMovement(movement)
	r.movements[movement.ID] = clone
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *MovementRepository) GetByID(id string) (*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.movements[id]
	if !ok {
		return nil, nil
	}
	return cloneMovement(m), nil
}

// List lista todos los movimientos, más reciente primero.
func (r *MovementRepository) List() ([]*entity.Movement, error) {
	return r.filter(func(*entity.Movement) bool { return true }, byCreatedAtDesc), nil
}

// ListByProduct lista los movimientos de un producto, más reciente primero.
func (r *MovementRepository) ListByProduct(productID string) ([]*entity.Movement, error) {
	return r.filter(func(m *entity.Movement) bool { return m.ProductID == productID }, byCreatedAtDesc), nil
}

// ListByType lista los movimientos de un tipo, más reciente primero.
func (r *MovementRepository) ListByType(movementType string) ([]*entity.Movement, error) {
	return r.filter(func(m *entity.Movement) bool { return m.Type == movementType }, byCreatedAtDesc), nil
}

// ListByLot lista los movimientos de un lote.
func (r *MovementRepository) ListByLot(lot string) ([]*entity.Movement, error) {
	return r.filter(func(m *entity.Movement) bool { return m.Lot == lot }, byCreatedAtDesc), nil
}

// ListByDateRange lista movimientos registrados entre from y to (inclusive).
func (r *MovementRepository) ListByDateRange(from, to time.Time) ([]*entity.Movement, error) {
	return r.filter(func(m *entity.Movement) bool {
		return !m.CreatedAt.Before(from) && !m.CreatedAt.After(to)
	}, byCreatedAtDesc), nil
}

// ListExpiringWithin lista movimientos con vencimiento entre ref y ref+days,
// por vencimiento ascendente.
func (r *MovementRepository) ListExpiringWithin(ref time.Time, days int) ([]*entity.Movement, error) {
	return r.filter(func(m *entity.Movement) bool {
		return m.IsExpiringWithin(ref, days)
	}, byExpiryAsc), nil
}

// ListExpired lista movimientos ya vencidos, por vencimiento ascendente.
func (r *MovementRepository) ListExpired(ref time.Time) ([]*entity.Movement, error) {
	return r.filter(func(m *entity.Movement) bool {
		return m.IsExpired(ref)
	}, byExpiryAsc), nil
}

// Update reemplaza un movimiento existente.
func (r *MovementRepository) Update(movement *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movements[movement.ID]; !ok {
		return domain.ErrNotFound
	}
	r.movements[movement.ID] = cloneMovement(movement)
	return nil
}

// Delete elimina un movimiento por ID.
func (r *MovementRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movements[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.movements, id)
	return nil
}

// DeleteByProduct elimina todos los movimientos de un producto (cascada).
func (r *MovementRepository) DeleteByProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, m := range r.movements {
		if m.ProductID == productID {
			delete(r.movements, id)
		}
	}
	return nil
}

type lessFunc func(a, b *entity.Movement) bool

func byCreatedAtDesc(a, b *entity.Movement) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}

func byExpiryAsc(a, b *entity.Movement) bool {
	// Solo se usa sobre movimientos con vencimiento presente.
	if !a.ExpiryDate.Equal(*b.ExpiryDate) {
		return a.ExpiryDate.Before(*b.ExpiryDate)
	}
	return a.ID < b.ID
}

func (r *MovementRepository) filter(keep func(*entity.Movement) bool, less lessFunc) []*entity.Movement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Movement
	for _, m := range r.movements {
		if keep(m) {
			list = append(list, cloneMovement(m))
		}
	}
	sort.Slice(list, func(i, j int) bool { return less(list[i], list[j]) })
	return list
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	clone := *m
	if m.ExpiryDate != nil {
		expiry := *m.ExpiryDate
		clone.ExpiryDate = &expiry
	}
	return &clone
}
