package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesTotals devuelve la suma de total_amount y el conteo de facturas
// creadas en o después de since. COALESCE devuelve cero sin filas.
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context, since time.Time) (decimal.Decimal, int, error) {
	const query = `
	SELECT
	    COALESCE(SUM(total_amount), 0) AS total,
	    COUNT(*)                       AS orders
	FROM invoices
	WHERE created_at >= $1`

	var total decimal.Decimal
	var count int
	if err := r.pool.QueryRow(ctx, query, since).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("analytics.GetSalesTotals: %w", err)
	}
	return total, count, nil
}

// CountLowStock cuenta productos activos en o bajo su umbral de reorden.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM products
	WHERE is_active = true AND stock_quantity <= min_stock_level`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountLowStock: %w", err)
	}
	return count, nil
}

// CountSuppliers cuenta todos los proveedores.
func (r *AnalyticsRepo) CountSuppliers(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountSuppliers: %w", err)
	}
	return count, nil
}
