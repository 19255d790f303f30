package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// InventoryHandler maneja el registro y la consulta de movimientos de stock.
type InventoryHandler struct {
	ledger *inventory.StockLedgerUseCase
	query  *inventory.MovementQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.StockLedgerUseCase, query *inventory.MovementQueryUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, query: query}
}

// RegisterInflow godoc
// @Summary      Registrar entrada de stock
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterInflowRequest  true  "Datos de la entrada"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/inflow [post]
func (h *InventoryHandler) RegisterInflow(c *fiber.Ctx) error {
	var in dto.RegisterInflowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	movement, err := h.ledger.RegisterInflow(c.UserContext(), inventory.InflowInputDTO{
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		Lot:        in.Lot,
		ExpiryDate: in.ExpiryDate,
		Note:       in.Note,
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementResponse(movement))
}

// RegisterOutflow godoc
// @Summary      Registrar salida de stock
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterOutflowRequest  true  "Datos de la salida"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/outflow [post]
func (h *InventoryHandler) RegisterOutflow(c *fiber.Ctx) error {
	var in dto.RegisterOutflowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	movement, err := h.ledger.RegisterOutflow(c.UserContext(), inventory.OutflowInputDTO{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Note:      in.Note,
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementResponse(movement))
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	movement, err := h.query.GetByID(id)
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(dto.NewMovementResponse(movement))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        type        query  string  false  "Filtrar por tipo (INFLOW, OUTFLOW)"
// @Param        lot         query  string  false  "Filtrar por lote"
// @Param        from        query  string  false  "Desde (RFC 3339)"
// @Param        to          query  string  false  "Hasta (RFC 3339)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	movements, err := h.listFiltered(c)
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(dto.NewMovementListResponse(movements))
}

// listFiltered aplica a lo sumo un filtro; sin filtros lista todo.
func (h *InventoryHandler) listFiltered(c *fiber.Ctx) ([]*entity.Movement, error) {
	if productID := c.Query("product_id"); productID != "" {
		return h.query.ListByProduct(productID)
	}
	if movementType := c.Query("type"); movementType != "" {
		return h.query.ListByType(movementType)
	}
	if lot := c.Query("lot"); lot != "" {
		return h.query.ListByLot(lot)
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return nil, &domain.ValidationError{Field: "from", Reason: "fecha inválida, se espera RFC 3339"}
		}
		to := time.Now()
		if toStr := c.Query("to"); toStr != "" {
			to, err = time.Parse(time.RFC3339, toStr)
			if err != nil {
				return nil, &domain.ValidationError{Field: "to", Reason: "fecha inválida, se espera RFC 3339"}
			}
		}
		return h.query.ListByDateRange(from, to)
	}
	return h.query.List()
}

// movementError mapea errores de dominio del motor de stock a HTTP.
func movementError(c *fiber.Ctx, err error) error {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: stockErr.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrConcurrentUpdate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONCURRENT_UPDATE", Message: "conflicto de actualización concurrente, reintente"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
