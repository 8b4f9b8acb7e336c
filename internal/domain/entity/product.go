package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible con su nivel de stock.
// StockQuantity se ajusta sólo vía facturas y compras (incremento atómico en DB);
// puede quedar negativo si se sobrevende, no hay guarda de stock insuficiente.
type Product struct {
	ID            string
	Name          string
	NameAr        string
	CategoryID    string
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	Unit          string
	UnitAr        string
	Description   string
	ImageURL      string
	IsActive      bool
	StockQuantity int64
	MinStockLevel int64 // umbral de reorden: stock <= MinStockLevel cuenta como alerta
	CreatedAt     time.Time
}
