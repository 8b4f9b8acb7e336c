package repository

import "github.com/tu-usuario/resto-pos/internal/domain/entity"

// StockMovementRepository define el puerto del libro de movimientos (append-only).
// No hay corrección ni reversa: sólo inserción y lectura reciente.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListRecent(limit int) ([]*entity.StockMovement, error)
}
