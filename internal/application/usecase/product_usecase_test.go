package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newProductFixture() (*usecase.ProductUseCase, *memory.ProductRepository, *memory.MovementRepository) {
	productRepo := memory.NewProductRepository()
	movementRepo := memory.NewMovementRepository()
	return usecase.NewProductUseCase(productRepo, movementRepo), productRepo, movementRepo
}

func validCreateRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:             "ARROZ-1KG",
		Name:            "Arroz blanco 1kg",
		Category:        entity.CategoryNonPerishable,
		UnitPrice:       decimal.NewFromFloat(3.50),
		MinimumQuantity: 10,
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_IniciaConSaldoCero(t *testing.T) {
	uc, _, _ := newProductFixture()

	out, err := uc.Create(validCreateRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ARROZ-1KG", out.SKU)
	assert.Equal(t, 0, out.CurrentQuantity, "todo producto nuevo inicia con saldo 0")
	assert.True(t, out.LowStock, "saldo 0 con umbral 10 debe salir en alerta")
}

func TestProductCreate_SKUDuplicadoRechazado(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	in := validCreateRequest()
	in.Name = "Otro arroz"
	_, err = uc.Create(in)

	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestProductCreate_CamposInvalidosRechazados(t *testing.T) {
	uc, _, _ := newProductFixture()

	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
	}{
		{"sku vacío", func(in *dto.CreateProductRequest) { in.SKU = "  " }},
		{"nombre vacío", func(in *dto.CreateProductRequest) { in.Name = "" }},
		{"categoría desconocida", func(in *dto.CreateProductRequest) { in.Category = "FROZEN" }},
		{"precio cero", func(in *dto.CreateProductRequest) { in.UnitPrice = decimal.Zero }},
		{"precio negativo", func(in *dto.CreateProductRequest) { in.UnitPrice = decimal.NewFromFloat(-1) }},
		{"mínimo negativo", func(in *dto.CreateProductRequest) { in.MinimumQuantity = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateRequest()
			tc.mutate(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestProductGetByID_NoEncontrado(t *testing.T) {
	uc, _, _ := newProductFixture()
	_, err := uc.GetByID(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGetBySKU(t *testing.T) {
	uc, _, _ := newProductFixture()
	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	out, err := uc.GetBySKU("ARROZ-1KG")
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)

	_, err = uc.GetBySKU("NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductListByCategory(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	perishable := validCreateRequest()
	perishable.SKU = "LECHE-1L"
	perishable.Category = entity.CategoryPerishable
	_, err = uc.Create(perishable)
	require.NoError(t, err)

	out, err := uc.ListByCategory(entity.CategoryPerishable)
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "LECHE-1L", out.Items[0].SKU)

	_, err = uc.ListByCategory("FROZEN")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "categoría desconocida en el filtro debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_CambiaCamposSinTocarElSaldo(t *testing.T) {
	uc, productRepo, _ := newProductFixture()
	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	// Saldo movido por fuera del CRUD (simula al libro de stock).
	require.NoError(t, productRepo.UpdateQuantity(created.ID, 40, 0))

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:            strPtr("Arroz premium 1kg"),
		UnitPrice:       decPtr(decimal.NewFromFloat(4.25)),
		MinimumQuantity: intPtr(15),
	})

	require.NoError(t, err)
	assert.Equal(t, "Arroz premium 1kg", out.Name)
	assert.Equal(t, 15, out.MinimumQuantity)

	stored, err := productRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, stored.CurrentQuantity, "Update no debe alterar el saldo")
}

func TestProductUpdate_SKUEnUsoPorOtroRechazado(t *testing.T) {
	uc, _, _ := newProductFixture()

	first, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.SKU = "LENTEJA-500"
	secondOut, err := uc.Create(second)
	require.NoError(t, err)

	_, err = uc.Update(secondOut.ID, dto.UpdateProductRequest{SKU: strPtr(first.SKU)})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestProductUpdate_MismoSKUPropioAceptado(t *testing.T) {
	uc, _, _ := newProductFixture()
	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{SKU: strPtr(created.SKU)})
	require.NoError(t, err)
	assert.Equal(t, created.SKU, out.SKU)
}

func TestProductUpdate_NoEncontrado(t *testing.T) {
	uc, _, _ := newProductFixture()
	_, err := uc.Update(uuid.New().String(), dto.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete en cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_EliminaSusMovimientosEnCascada(t *testing.T) {
	uc, _, movementRepo := newProductFixture()
	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, movementRepo.Create(&entity.Movement{
			ID:        uuid.New().String(),
			ProductID: created.ID,
			Type:      entity.MovementTypeInflow,
			Quantity:  5,
			CreatedAt: time.Now(),
		}))
	}
	otherMovement := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: uuid.New().String(),
		Type:      entity.MovementTypeInflow,
		Quantity:  1,
		CreatedAt: time.Now(),
	}
	require.NoError(t, movementRepo.Create(otherMovement))

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	orphans, err := movementRepo.ListByProduct(created.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans, "los movimientos del producto eliminado no deben sobrevivir")

	remaining, err := movementRepo.List()
	require.NoError(t, err)
	require.Len(t, remaining, 1, "los movimientos de otros productos no se tocan")
	assert.Equal(t, otherMovement.ID, remaining[0].ID)
}

func TestProductDelete_NoEncontrado(t *testing.T) {
	uc, _, _ := newProductFixture()
	err := uc.Delete(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
