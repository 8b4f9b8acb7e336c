package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/application/inventory"
)

// StockHandler expone el libro de movimientos de stock (solo lectura).
type StockHandler struct {
	uc *inventory.InventoryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.InventoryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ListMovements godoc
// @Summary      Últimos movimientos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/stock-movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.uc.ListRecentMovements()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
