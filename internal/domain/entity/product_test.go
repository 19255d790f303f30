package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func TestIsValidCategory(t *testing.T) {
	assert.True(t, entity.IsValidCategory(entity.CategoryPerishable))
	assert.True(t, entity.IsValidCategory(entity.CategoryNonPerishable))
	assert.False(t, entity.IsValidCategory("FROZEN"), "una categoría desconocida no es válida")
	assert.False(t, entity.IsValidCategory(""), "la categoría vacía no es válida")
	assert.False(t, entity.IsValidCategory("perishable"), "la comparación es sensible a mayúsculas")
}

func TestProduct_IsPerishable(t *testing.T) {
	perishable := &entity.Product{Category: entity.CategoryPerishable}
	nonPerishable := &entity.Product{Category: entity.CategoryNonPerishable}

	assert.True(t, perishable.IsPerishable())
	assert.False(t, nonPerishable.IsPerishable())
}

// El umbral es estricto: saldo igual al mínimo NO es stock bajo.
func TestProduct_IsLowStock_UmbralEstricto(t *testing.T) {
	p := &entity.Product{MinimumQuantity: 10}

	p.CurrentQuantity = 9
	assert.True(t, p.IsLowStock(), "saldo por debajo del mínimo debe alertar")

	p.CurrentQuantity = 10
	assert.False(t, p.IsLowStock(), "saldo igual al mínimo no debe alertar")

	p.CurrentQuantity = 11
	assert.False(t, p.IsLowStock())
}

// Con umbral 0 nunca hay alerta: el saldo no puede ser negativo.
func TestProduct_IsLowStock_UmbralCero(t *testing.T) {
	p := &entity.Product{MinimumQuantity: 0, CurrentQuantity: 0}
	assert.False(t, p.IsLowStock())
}

func TestProduct_HasSufficientStock(t *testing.T) {
	p := &entity.Product{CurrentQuantity: 5}

	assert.True(t, p.HasSufficientStock(5), "la salida puede vaciar el saldo exacto")
	assert.True(t, p.HasSufficientStock(1))
	assert.False(t, p.HasSufficientStock(6), "no alcanza el saldo para 6 unidades")
}

func TestProduct_InventoryValue(t *testing.T) {
	p := &entity.Product{
		CurrentQuantity: 7,
		UnitPrice:       decimal.NewFromFloat(3.50),
	}
	assert.True(t, p.InventoryValue().Equal(decimal.NewFromFloat(24.50)),
		"7 × 3.50 debe dar 24.50, obtenido %s", p.InventoryValue())

	p.CurrentQuantity = 0
	assert.True(t, p.InventoryValue().Equal(decimal.Zero),
		"saldo 0 vale 0 sin importar el precio")
}
