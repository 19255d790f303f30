package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// defaultExpiryWindowDays ventana por defecto para "próximos a vencer".
const defaultExpiryWindowDays = 7

// ReportUseCase derivaciones read-only sobre productos y movimientos: valor
// total del inventario, stock bajo, vencimientos y dashboard consolidado.
// No muta estado ni impone invariantes; solo proyecta lo almacenado.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	now          func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) *ReportUseCase {
	return &ReportUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		now:          time.Now,
	}
}

// TotalInventoryValue calcula Σ (cantidad actual × precio unitario).
func (uc *ReportUseCase) TotalInventoryValue() (decimal.Decimal, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.InventoryValue())
	}
	return total, nil
}

// LowStockProducts lista productos con saldo por debajo de su umbral.
func (uc *ReportUseCase) LowStockProducts() ([]*entity.Product, error) {
	return uc.productRepo.ListBelowMinimum()
}

// ExpiringWithin lista movimientos que vencen entre hoy y hoy+days, ordenados
// por vencimiento ascendente. days <= 0 aplica la ventana por defecto (7).
func (uc *ReportUseCase) ExpiringWithin(days int) ([]*entity.Movement, error) {
	if days <= 0 {
		days = defaultExpiryWindowDays
	}
	return uc.movementRepo.ListExpiringWithin(uc.now(), days)
}

// ExpiredMovements lista movimientos ya vencidos, ordenados por vencimiento.
func (uc *ReportUseCase) ExpiredMovements() ([]*entity.Movement, error) {
	return uc.movementRepo.ListExpired(uc.now())
}

// Dashboard consolida valor total, total de productos y las tres alertas
// (stock bajo, próximos a vencer, vencidos) con sus listas.
//
// Las cuatro consultas corren en paralelo, cada una por su canal.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type movementsResult struct {
		movements []*entity.Movement
		err       error
	}

	now := uc.now()
	allCh := make(chan productsResult, 1)
	lowCh := make(chan productsResult, 1)
	expiringCh := make(chan movementsResult, 1)
	expiredCh := make(chan movementsResult, 1)

	go func() {
		products, err := uc.productRepo.List()
		allCh <- productsResult{products, err}
	}()
	go func() {
		products, err := uc.productRepo.ListBelowMinimum()
		lowCh <- productsResult{products, err}
	}()
	go func() {
		movements, err := uc.movementRepo.ListExpiringWithin(now, defaultExpiryWindowDays)
		expiringCh <- movementsResult{movements, err}
	}()
	go func() {
		movements, err := uc.movementRepo.ListExpired(now)
		expiredCh <- movementsResult{movements, err}
	}()

	all := <-allCh
	low := <-lowCh
	expiring := <-expiringCh
	expired := <-expiredCh

	if all.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", all.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if expiring.err != nil {
		return nil, fmt.Errorf("dashboard: próximos a vencer: %w", expiring.err)
	}
	if expired.err != nil {
		return nil, fmt.Errorf("dashboard: vencidos: %w", expired.err)
	}

	totalValue := decimal.Zero
	for _, p := range all.products {
		totalValue = totalValue.Add(p.InventoryValue())
	}

	return &dto.DashboardResponse{
		TotalInventoryValue: totalValue,
		TotalProducts:       len(all.products),
		LowStockCount:       len(low.products),
		ExpiringSoonCount:   len(expiring.movements),
		ExpiredCount:        len(expired.movements),
		Alerts: dto.DashboardAlerts{
			LowStock:     toLowStockAlerts(low.products),
			ExpiringSoon: toExpiryAlerts(expiring.movements),
			Expired:      toExpiryAlerts(expired.movements),
		},
	}, nil
}

func toLowStockAlerts(products []*entity.Product) []dto.LowStockAlertDTO {
	alerts := make([]dto.LowStockAlertDTO, 0, len(products))
	for _, p := range products {
		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:       p.ID,
			SKU:             p.SKU,
			Name:            p.Name,
			CurrentQuantity: p.CurrentQuantity,
			MinimumQuantity: p.MinimumQuantity,
		})
	}
	return alerts
}

func toExpiryAlerts(movements []*entity.Movement) []dto.ExpiryAlertDTO {
	alerts := make([]dto.ExpiryAlertDTO, 0, len(movements))
	for _, m := range movements {
		alert := dto.ExpiryAlertDTO{
			MovementID: m.ID,
			ProductID:  m.ProductID,
			Lot:        m.Lot,
			Quantity:   m.Quantity,
		}
		if m.ExpiryDate != nil {
			alert.ExpiryDate = *m.ExpiryDate
		}
		alerts = append(alerts, alert)
	}
	return alerts
}
