package memory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

func newProduct(sku string, quantity, minimum int) *entity.Product {
	return &entity.Product{
		ID:              uuid.New().String(),
		SKU:             sku,
		Name:            "Producto " + sku,
		Category:        entity.CategoryNonPerishable,
		UnitPrice:       decimal.NewFromFloat(1.00),
		MinimumQuantity: minimum,
		CurrentQuantity: quantity,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func TestProductRepository_CreateYGetByID(t *testing.T) {
	repo := memory.NewProductRepository()
	p := newProduct("SKU-1", 5, 0)

	require.NoError(t, repo.Create(p))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.SKU, got.SKU)

	// El almacén devuelve copias: mutar lo devuelto no afecta lo guardado.
	got.CurrentQuantity = 999
	again, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, again.CurrentQuantity)
}

func TestProductRepository_GetByID_Inexistente(t *testing.T) {
	repo := memory.NewProductRepository()
	got, err := repo.GetByID(uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, got, "un ID inexistente devuelve nil sin error")
}

func TestProductRepository_CreateSKUDuplicado(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(newProduct("SKU-1", 0, 0)))

	err := repo.Create(newProduct("SKU-1", 0, 0))
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestProductRepository_ExistsBySKU(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(newProduct("SKU-1", 0, 0)))

	exists, err := repo.ExistsBySKU("SKU-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBySKU("SKU-2")
	require.NoError(t, err)
	assert.False(t, exists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compare-and-swap del saldo
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepository_UpdateQuantity_EscrituraCondicional(t *testing.T) {
	repo := memory.NewProductRepository()
	p := newProduct("SKU-1", 10, 0)
	require.NoError(t, repo.Create(p))

	require.NoError(t, repo.UpdateQuantity(p.ID, 15, 10))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, got.CurrentQuantity)
}

// Si el saldo almacenado ya no es el esperado, la escritura pierde y el saldo
// queda intacto.
func TestProductRepository_UpdateQuantity_ConflictoConcurrente(t *testing.T) {
	repo := memory.NewProductRepository()
	p := newProduct("SKU-1", 10, 0)
	require.NoError(t, repo.Create(p))

	// Otra escritura ganó la carrera y dejó el saldo en 12.
	require.NoError(t, repo.UpdateQuantity(p.ID, 12, 10))

	err := repo.UpdateQuantity(p.ID, 15, 10)
	assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)

	got, getErr := repo.GetByID(p.ID)
	require.NoError(t, getErr)
	assert.Equal(t, 12, got.CurrentQuantity, "la escritura perdedora no debe aplicar")
}

func TestProductRepository_UpdateQuantity_ProductoInexistente(t *testing.T) {
	repo := memory.NewProductRepository()
	err := repo.UpdateQuantity(uuid.New().String(), 5, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y listados
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepository_Update_PreservaElSaldo(t *testing.T) {
	repo := memory.NewProductRepository()
	p := newProduct("SKU-1", 10, 0)
	require.NoError(t, repo.Create(p))

	edited := *p
	edited.Name = "Nombre nuevo"
	edited.CurrentQuantity = 999 // un Update nunca escribe el saldo

	require.NoError(t, repo.Update(&edited))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nombre nuevo", got.Name)
	assert.Equal(t, 10, got.CurrentQuantity)
}

func TestProductRepository_Update_SKUDeOtroProducto(t *testing.T) {
	repo := memory.NewProductRepository()
	first := newProduct("SKU-1", 0, 0)
	second := newProduct("SKU-2", 0, 0)
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	second.SKU = "SKU-1"
	err := repo.Update(second)
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestProductRepository_ListBelowMinimum(t *testing.T) {
	repo := memory.NewProductRepository()
	low := newProduct("BAJO-1", 2, 10)
	require.NoError(t, repo.Create(low))
	require.NoError(t, repo.Create(newProduct("JUSTO-1", 10, 10)))
	require.NoError(t, repo.Create(newProduct("ALTO-1", 30, 10)))

	products, err := repo.ListBelowMinimum()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, low.ID, products[0].ID)
}

func TestProductRepository_Delete(t *testing.T) {
	repo := memory.NewProductRepository()
	p := newProduct("SKU-1", 0, 0)
	require.NoError(t, repo.Create(p))

	require.NoError(t, repo.Delete(p.ID))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete(p.ID), domain.ErrNotFound)
}
