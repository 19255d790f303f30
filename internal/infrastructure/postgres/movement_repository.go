package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, type, quantity, lot, expiry_date, note, created_at`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock; asigna ID si viene vacío.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, type, quantity, lot, expiry_date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	lot := (*string)(nil)
	if movement.Lot != "" {
		lot = &movement.Lot
	}
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		lot, movement.ExpiryDate, note, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	var m entity.Movement
	var lot, note *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity, &lot, &m.ExpiryDate, &note, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if lot != nil {
		m.Lot = *lot
	}
	if note != nil {
		m.Note = *note
	}
	return &m, nil
}

// List lista todos los movimientos, más reciente primero.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY created_at DESC`
	return r.queryList(query)
}

// ListByProduct lista los movimientos de un producto, más reciente primero.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE product_id = $1 ORDER BY created_at DESC`
	return r.queryList(query, productID)
}

// ListByType lista los movimientos de un tipo, más reciente primero.
func (r *MovementRepo) ListByType(movementType string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE type = $1 ORDER BY created_at DESC`
	return r.queryList(query, movementType)
}

// ListByLot lista los movimientos de un lote.
func (r *MovementRepo) ListByLot(lot string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE lot = $1 ORDER BY created_at DESC`
	return r.queryList(query, lot)
}

// ListByDateRange lista movimientos registrados entre from y to (inclusive).
func (r *MovementRepo) ListByDateRange(from, to time.Time) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at DESC`
	return r.queryList(query, from, to)
}

// ListExpiringWithin lista movimientos con vencimiento entre ref y ref+days
// (componente fecha, inclusive), por vencimiento ascendente.
func (r *MovementRepo) ListExpiringWithin(ref time.Time, days int) ([]*entity.Movement, error) {
	today := entity.DateOnly(ref)
	limit := today.AddDate(0, 0, days)
	query := `
		SELECT ` + movementColumns + ` FROM movements
		WHERE expiry_date IS NOT NULL AND expiry_date >= $1 AND expiry_date <= $2
		ORDER BY expiry_date ASC`
	return r.queryList(query, today, limit)
}

// ListExpired lista movimientos con vencimiento anterior a ref, ascendente.
func (r *MovementRepo) ListExpired(ref time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + ` FROM movements
		WHERE expiry_date IS NOT NULL AND expiry_date < $1
		ORDER BY expiry_date ASC`
	return r.queryList(query, entity.DateOnly(ref))
}

// Update reemplaza los campos de un movimiento existente.
func (r *MovementRepo) Update(movement *entity.Movement) error {
	lot := (*string)(nil)
	if movement.Lot != "" {
		lot = &movement.Lot
	}
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE movements SET lot = $2, expiry_date = $3, note = $4 WHERE id = $1`,
		movement.ID, lot, movement.ExpiryDate, note,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *MovementRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByProduct elimina todos los movimientos de un producto (cascada).
func (r *MovementRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete movements by product: %w", err)
	}
	return nil
}

func (r *MovementRepo) queryList(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var lot, note *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &lot, &m.ExpiryDate, &note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if lot != nil {
			m.Lot = *lot
		}
		if note != nil {
			m.Note = *note
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
