package repository

import "github.com/tu-usuario/resto-pos/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para Purchase (DIP).
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	CreateItem(purchaseID string, item *entity.PurchaseItem) error
	// List devuelve compras con sus líneas, de la más reciente a la más antigua.
	List(limit int) ([]*entity.Purchase, error)
}
