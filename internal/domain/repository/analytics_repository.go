package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetSalesTotals devuelve la suma de total_amount y el número de facturas
	// con created_at >= since. Usa COALESCE para devolver cero sin filas.
	GetSalesTotals(ctx context.Context, since time.Time) (total decimal.Decimal, count int, err error)

	// CountLowStock cuenta productos activos con stock_quantity <= min_stock_level.
	CountLowStock(ctx context.Context) (int, error)

	// CountSuppliers cuenta todos los proveedores.
	CountSuppliers(ctx context.Context) (int, error)
}
