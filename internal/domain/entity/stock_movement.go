package entity

import "time"

// Direcciones de movimiento de stock.
const (
	MovementIn  = "in"
	MovementOut = "out"
)

// Tipos de referencia que originan un movimiento.
const (
	RefSale       = "sale"
	RefPurchase   = "purchase"
	RefAdjustment = "adjustment"
)

// StockMovement registro append-only de un cambio de cantidad en un producto.
// ReferenceID apunta (por id, sin cascada) a la factura o compra que lo originó;
// se escribe en la misma transacción que el ajuste de stock.
type StockMovement struct {
	ID            string
	ProductID     string
	ProductName   string
	Type          string // in, out
	Quantity      int64
	ReferenceType string // sale, purchase, adjustment
	ReferenceID   string
	Notes         string
	CreatedBy     string // UserID
	CreatedAt     time.Time
}
