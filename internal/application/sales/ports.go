package sales

import (
	"context"

	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

// TxRunner ejecuta el callback de creación de factura dentro de una
// transacción: cabecera, líneas, ajustes de stock, movimientos del libro y el
// consecutivo se confirman o revierten juntos.
// Lo implementa postgres.TxRunner; el uso de interfaz permite fakes en tests.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		sequenceRepo repository.SequenceRepository,
	) error) error
}
