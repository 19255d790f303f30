package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// ReportHandler expone los reportes read-only del inventario.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Valuation godoc
// @Summary      Valor total del inventario
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ValuationResponse
// @Router       /api/reports/valuation [get]
func (h *ReportHandler) Valuation(c *fiber.Ctx) error {
	total, err := h.uc.TotalInventoryValue()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ValuationResponse{TotalValue: total})
}

// LowStock godoc
// @Summary      Productos con stock bajo el umbral de reorden
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.uc.LowStockProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewProductListResponse(products))
}

// Expiring godoc
// @Summary      Movimientos con vencimiento dentro de la ventana
// @Tags         reports
// @Produce      json
// @Param        days  query  int  false  "Ventana en días"  default(7)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/reports/expiring [get]
func (h *ReportHandler) Expiring(c *fiber.Ctx) error {
	days := c.QueryInt("days", 0)
	movements, err := h.uc.ExpiringWithin(days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewMovementListResponse(movements))
}

// Expired godoc
// @Summary      Movimientos ya vencidos
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/reports/expired [get]
func (h *ReportHandler) Expired(c *fiber.Ctx) error {
	movements, err := h.uc.ExpiredMovements()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.NewMovementListResponse(movements))
}

// Dashboard godoc
// @Summary      Dashboard consolidado del inventario
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
