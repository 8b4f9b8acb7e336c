// Package analytics contiene el caso de uso del dashboard operativo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

// DashboardUseCase genera el resumen de ventas del día y del mes en curso,
// más alertas de stock bajo y conteo de proveedores.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Todo se calcula
// bajo demanda, sin caché.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats construye el DashboardStatsDTO.
//
// Cuatro llamadas en paralelo:
//  1. GetSalesTotals(hoy)  → TodaySales + TodayOrders
//  2. GetSalesTotals(mes)  → MonthSales + MonthOrders
//  3. CountLowStock        → LowStockAlerts
//  4. CountSuppliers       → TotalSuppliers
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()

	// Hoy desde las 00:00 local; mes en curso desde el día 1 a las 00:00.
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		sales  decimal.Decimal
		orders int
		err    error
	}
	type countResult struct {
		n   int
		err error
	}

	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	lowStockCh := make(chan countResult, 1)
	suppliersCh := make(chan countResult, 1)

	go func() {
		sales, orders, err := uc.analyticsRepo.GetSalesTotals(ctx, todayStart)
		todayCh <- totalsResult{sales, orders, err}
	}()
	go func() {
		sales, orders, err := uc.analyticsRepo.GetSalesTotals(ctx, monthStart)
		monthCh <- totalsResult{sales, orders, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountSuppliers(ctx)
		suppliersCh <- countResult{n, err}
	}()

	today := <-todayCh
	month := <-monthCh
	lowStock := <-lowStockCh
	suppliers := <-suppliersCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if suppliers.err != nil {
		return nil, fmt.Errorf("dashboard: proveedores: %w", suppliers.err)
	}

	return &dto.DashboardStatsDTO{
		TodaySales:     today.sales.Round(2),
		TodayOrders:    today.orders,
		MonthSales:     month.sales.Round(2),
		MonthOrders:    month.orders,
		LowStockAlerts: lowStock.n,
		TotalSuppliers: suppliers.n,
	}, nil
}
