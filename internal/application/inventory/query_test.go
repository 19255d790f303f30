package inventory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

func seedMovement(t *testing.T, repo *memory.MovementRepository, productID, movementType, lot string, createdAt time.Time) *entity.Movement {
	t.Helper()
	m := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: productID,
		Type:      movementType,
		Quantity:  5,
		Lot:       lot,
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(m))
	return m
}

func TestMovementQuery_GetByID(t *testing.T) {
	repo := memory.NewMovementRepository()
	query := inventory.NewMovementQueryUseCase(repo)
	seeded := seedMovement(t, repo, "p-1", entity.MovementTypeInflow, "L-1", time.Now())

	got, err := query.GetByID(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)

	_, err = query.GetByID(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound, "un ID inexistente debe dar not found")
}

func TestMovementQuery_ListMasRecientePrimero(t *testing.T) {
	repo := memory.NewMovementRepository()
	query := inventory.NewMovementQueryUseCase(repo)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	oldest := seedMovement(t, repo, "p-1", entity.MovementTypeInflow, "", base)
	newest := seedMovement(t, repo, "p-1", entity.MovementTypeOutflow, "", base.Add(2*time.Hour))
	middle := seedMovement(t, repo, "p-2", entity.MovementTypeInflow, "", base.Add(time.Hour))

	movements, err := query.List()
	require.NoError(t, err)
	require.Len(t, movements, 3)
	assert.Equal(t, newest.ID, movements[0].ID)
	assert.Equal(t, middle.ID, movements[1].ID)
	assert.Equal(t, oldest.ID, movements[2].ID)
}

func TestMovementQuery_ListByProduct(t *testing.T) {
	repo := memory.NewMovementRepository()
	query := inventory.NewMovementQueryUseCase(repo)

	seedMovement(t, repo, "p-1", entity.MovementTypeInflow, "", time.Now())
	seedMovement(t, repo, "p-1", entity.MovementTypeOutflow, "", time.Now())
	seedMovement(t, repo, "p-2", entity.MovementTypeInflow, "", time.Now())

	movements, err := query.ListByProduct("p-1")
	require.NoError(t, err)
	assert.Len(t, movements, 2)
	for _, m := range movements {
		assert.Equal(t, "p-1", m.ProductID)
	}
}

func TestMovementQuery_ListByType(t *testing.T) {
	repo := memory.NewMovementRepository()
	query := inventory.NewMovementQueryUseCase(repo)

	seedMovement(t, repo, "p-1", entity.MovementTypeInflow, "", time.Now())
	seedMovement(t, repo, "p-1", entity.MovementTypeOutflow, "", time.Now())

	inflows, err := query.ListByType(entity.MovementTypeInflow)
	require.NoError(t, err)
	assert.Len(t, inflows, 1)
	assert.Equal(t, entity.MovementTypeInflow, inflows[0].Type)
}

func TestMovementQuery_ListByType_TipoDesconocidoRechazado(t *testing.T) {
	query := inventory.NewMovementQueryUseCase(memory.NewMovementRepository())

	_, err := query.ListByType("TRANSFER")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovementQuery_ListByLot(t *testing.T) {
	repo := memory.NewMovementRepository()
	query := inventory.NewMovementQueryUseCase(repo)

	seedMovement(t, repo, "p-1", entity.MovementTypeInflow, "L-2026-001", time.Now())
	seedMovement(t, repo, "p-1", entity.MovementTypeInflow, "L-2026-002", time.Now())

	movements, err := query.ListByLot("L-2026-001")
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "L-2026-001", movements[0].Lot)
}

func TestMovementQuery_ListByDateRange(t *testing.T) {
	repo := memory.NewMovementRepository()
	query := inventory.NewMovementQueryUseCase(repo)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	seedMovement(t, repo, "p-1", entity.MovementTypeInflow, "", base)
	inside := seedMovement(t, repo, "p-1", entity.MovementTypeInflow, "", base.AddDate(0, 0, 5))
	seedMovement(t, repo, "p-1", entity.MovementTypeInflow, "", base.AddDate(0, 0, 20))

	movements, err := query.ListByDateRange(base.AddDate(0, 0, 1), base.AddDate(0, 0, 10))
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, inside.ID, movements[0].ID)
}

func TestMovementQuery_ListByDateRange_RangoInvertidoRechazado(t *testing.T) {
	query := inventory.NewMovementQueryUseCase(memory.NewMovementRepository())

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := query.ListByDateRange(from, from.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
