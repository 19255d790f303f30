package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValuationResponse respuesta de GET /api/reports/valuation.
type ValuationResponse struct {
	TotalValue decimal.Decimal `json:"total_value"` // Σ cantidad × precio unitario
}

// LowStockAlertDTO producto por debajo de su umbral de reorden.
type LowStockAlertDTO struct {
	ProductID       string `json:"product_id"`
	SKU             string `json:"sku"`
	Name            string `json:"name"`
	CurrentQuantity int    `json:"current_quantity"`
	MinimumQuantity int    `json:"minimum_quantity"`
}

// ExpiryAlertDTO movimiento con vencimiento próximo o ya vencido.
type ExpiryAlertDTO struct {
	MovementID string    `json:"movement_id"`
	ProductID  string    `json:"product_id"`
	Lot        string    `json:"lot,omitempty"`
	Quantity   int       `json:"quantity"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// DashboardAlerts listas que respaldan cada contador del dashboard.
type DashboardAlerts struct {
	LowStock     []LowStockAlertDTO `json:"low_stock"`
	ExpiringSoon []ExpiryAlertDTO   `json:"expiring_soon"`
	Expired      []ExpiryAlertDTO   `json:"expired"`
}

// DashboardResponse respuesta de GET /api/reports/dashboard: valor total del
// inventario, total de productos y los contadores de alertas con sus listas.
type DashboardResponse struct {
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	TotalProducts       int             `json:"total_products"`
	LowStockCount       int             `json:"low_stock_count"`
	ExpiringSoonCount   int             `json:"expiring_soon_count"`
	ExpiredCount        int             `json:"expired_count"`
	Alerts              DashboardAlerts `json:"alerts"`
}
