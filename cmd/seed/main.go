// seed carga un catálogo de demostración (productos y movimientos) usando los
// casos de uso reales, para probar la API en local.
//
// Uso: go run ./cmd/seed
// Requiere una base PostgreSQL accesible con la configuración habitual.
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	appinventory "github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	productUC := usecase.NewProductUseCase(productRepo, movementRepo)
	ledger := appinventory.NewStockLedgerUseCase(postgres.NewTxRunner(pool))

	products := []dto.CreateProductRequest{
		{SKU: "ARROZ-1KG", Name: "Arroz blanco 1kg", Category: entity.CategoryNonPerishable, UnitPrice: decimal.NewFromFloat(3.50), MinimumQuantity: 20},
		{SKU: "LECHE-1L", Name: "Leche entera 1L", Category: entity.CategoryPerishable, UnitPrice: decimal.NewFromFloat(1.20), MinimumQuantity: 30},
		{SKU: "YOGUR-500", Name: "Yogur natural 500g", Category: entity.CategoryPerishable, UnitPrice: decimal.NewFromFloat(2.10), MinimumQuantity: 15},
	}

	expiry := func(days int) *time.Time {
		d := time.Now().AddDate(0, 0, days)
		return &d
	}

	for _, in := range products {
		created, err := productUC.Create(in)
		if err != nil {
			log.Warn().Err(err).Str("sku", in.SKU).Msg("producto no creado (¿ya existe?)")
			continue
		}
		log.Info().Str("sku", created.SKU).Str("id", created.ID).Msg("producto creado")

		inflow := appinventory.InflowInputDTO{ProductID: created.ID, Quantity: 50, Note: "carga inicial"}
		if in.Category == entity.CategoryPerishable {
			inflow.Lot = "L-" + created.SKU
			inflow.ExpiryDate = expiry(20)
		}
		if _, err := ledger.RegisterInflow(ctx, inflow); err != nil {
			log.Warn().Err(err).Str("sku", created.SKU).Msg("entrada no registrada")
			continue
		}
		if _, err := ledger.RegisterOutflow(ctx, appinventory.OutflowInputDTO{ProductID: created.ID, Quantity: 10, Note: "venta demo"}); err != nil {
			log.Warn().Err(err).Str("sku", created.SKU).Msg("salida no registrada")
		}
	}

	log.Info().Msg("seed completado")
}
