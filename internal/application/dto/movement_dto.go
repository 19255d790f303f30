package dto

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RegisterInflowRequest body para POST /api/movements/inflow.
// Lot y ExpiryDate son obligatorios cuando el producto es perecedero.
type RegisterInflowRequest struct {
	ProductID  string     `json:"product_id" validate:"required"`
	Quantity   int        `json:"quantity" validate:"required,gt=0"`
	Lot        string     `json:"lot,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Note       string     `json:"note,omitempty"`
}

// RegisterOutflowRequest body para POST /api/movements/outflow.
// La salida descuenta del saldo global, no de un lote puntual, por eso no
// acepta lote ni vencimiento.
type RegisterOutflowRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Note      string `json:"note,omitempty"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID         string     `json:"id"`
	ProductID  string     `json:"product_id"`
	Type       string     `json:"type"`
	Quantity   int        `json:"quantity"`
	Lot        string     `json:"lot,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Note       string     `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// MovementListResponse lista de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// NewMovementResponse mapea la entidad al DTO de salida.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		Lot:        m.Lot,
		ExpiryDate: m.ExpiryDate,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}

// NewMovementListResponse mapea una colección de entidades.
func NewMovementListResponse(movements []*entity.Movement) MovementListResponse {
	items := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, NewMovementResponse(m))
	}
	return MovementListResponse{Items: items, Total: len(items)}
}
