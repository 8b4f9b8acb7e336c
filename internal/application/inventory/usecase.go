package inventory

import (
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

// movementsCap tope fijo del listado de movimientos, más agresivo que el
// resto de colecciones porque el libro crece con cada línea vendida o comprada.
const movementsCap = 100

// InventoryUseCase consulta de solo lectura del libro de movimientos de stock.
// Las escrituras las hacen ventas y compras dentro de sus transacciones.
type InventoryUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(movementRepo repository.StockMovementRepository) *InventoryUseCase {
	return &InventoryUseCase{movementRepo: movementRepo}
}

// ListRecentMovements devuelve los últimos 100 movimientos, más recientes primero.
func (uc *InventoryUseCase) ListRecentMovements() ([]dto.StockMovementResponse, error) {
	movements, err := uc.movementRepo.ListRecent(movementsCap)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:            m.ID,
			ProductID:     m.ProductID,
			ProductName:   m.ProductName,
			MovementType:  m.Type,
			Quantity:      m.Quantity,
			ReferenceType: m.ReferenceType,
			ReferenceID:   m.ReferenceID,
			Notes:         m.Notes,
			CreatedBy:     m.CreatedBy,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out, nil
}
