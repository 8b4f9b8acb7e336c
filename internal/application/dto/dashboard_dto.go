package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO agregados del dashboard, calculados bajo demanda
// (sin caché) a partir de los datos almacenados.
type DashboardStatsDTO struct {
	TodaySales     decimal.Decimal `json:"today_sales"`
	TodayOrders    int             `json:"today_orders"`
	MonthSales     decimal.Decimal `json:"month_sales"`
	MonthOrders    int             `json:"month_orders"`
	LowStockAlerts int             `json:"low_stock_alerts"`
	TotalSuppliers int             `json:"total_suppliers"`
}
