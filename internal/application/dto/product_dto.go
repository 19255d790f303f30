package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. El saldo inicia en 0 y
// no es parte del request: solo los movimientos lo mutan.
type CreateProductRequest struct {
	SKU             string          `json:"sku" validate:"required,min=1,max=50"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Category        string          `json:"category" validate:"required"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	MinimumQuantity int             `json:"minimum_quantity" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// CurrentQuantity no es editable por esta vía.
type UpdateProductRequest struct {
	SKU             *string          `json:"sku"`
	Name            *string          `json:"name"`
	Category        *string          `json:"category"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	MinimumQuantity *int             `json:"minimum_quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	MinimumQuantity int             `json:"minimum_quantity"`
	CurrentQuantity int             `json:"current_quantity"`
	LowStock        bool            `json:"low_stock"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// NewProductResponse mapea la entidad al DTO de salida.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Category:        p.Category,
		UnitPrice:       p.UnitPrice,
		MinimumQuantity: p.MinimumQuantity,
		CurrentQuantity: p.CurrentQuantity,
		LowStock:        p.IsLowStock(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// NewProductListResponse mapea una colección de entidades.
func NewProductListResponse(products []*entity.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, NewProductResponse(p))
	}
	return ProductListResponse{Items: items, Total: len(items)}
}
