package purchasing

import (
	"context"

	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

// TxRunner ejecuta el callback de creación de compra dentro de una
// transacción: cabecera, líneas, incrementos de stock, movimientos del libro y
// el consecutivo se confirman o revierten juntos.
type TxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		sequenceRepo repository.SequenceRepository,
	) error) error
}
