package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-pos/internal/application/analytics"
)

type salesTotals struct {
	sales  decimal.Decimal
	orders int
}

// fakeAnalyticsRepo devuelve totales según el inicio exacto del rango
// consultado (medianoche de hoy o día 1 del mes).
type fakeAnalyticsRepo struct {
	totals    map[time.Time]salesTotals
	lowStock  int
	suppliers int
	err       error
}

func (f *fakeAnalyticsRepo) GetSalesTotals(_ context.Context, since time.Time) (decimal.Decimal, int, error) {
	if f.err != nil {
		return decimal.Zero, 0, f.err
	}
	t := f.totals[since]
	return t.sales, t.orders, nil
}

func (f *fakeAnalyticsRepo) CountLowStock(context.Context) (int, error) {
	return f.lowStock, f.err
}

func (f *fakeAnalyticsRepo) CountSuppliers(context.Context) (int, error) {
	return f.suppliers, f.err
}

// rangeStarts calcula los mismos inicios de rango que el caso de uso.
func rangeStarts() (todayStart, monthStart time.Time) {
	now := time.Now()
	todayStart = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return
}

func TestGetStats_AgregaLasCuatroConsultas(t *testing.T) {
	todayStart, monthStart := rangeStarts()
	totals := map[time.Time]salesTotals{
		monthStart: {sales: decimal.NewFromInt(9800), orders: 310},
	}
	// El día 1 ambos rangos arrancan igual y la clave de hoy pisa la del mes.
	totals[todayStart] = salesTotals{sales: decimal.NewFromFloat(350.50), orders: 12}

	repo := &fakeAnalyticsRepo{
		totals:    totals,
		lowStock:  3,
		suppliers: 5,
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.True(t, out.TodaySales.Equal(decimal.NewFromFloat(350.50)), "today_sales: %s", out.TodaySales)
	assert.Equal(t, 12, out.TodayOrders)
	if !todayStart.Equal(monthStart) {
		assert.True(t, out.MonthSales.Equal(decimal.NewFromInt(9800)), "month_sales: %s", out.MonthSales)
		assert.Equal(t, 310, out.MonthOrders)
	}
	assert.Equal(t, 3, out.LowStockAlerts)
	assert.Equal(t, 5, out.TotalSuppliers)
}

func TestGetStats_SinVentas_DevuelveCeros(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{totals: map[time.Time]salesTotals{}})

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.True(t, out.TodaySales.IsZero())
	assert.Zero(t, out.TodayOrders)
	assert.Zero(t, out.LowStockAlerts)
}

func TestGetStats_ErrorDeConsulta_SePropaga(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{err: errors.New("db caída")})

	_, err := uc.GetStats(context.Background())
	assert.Error(t, err)
}
