package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una compra.
const (
	PurchasePending = "pending"
	PurchasePaid    = "paid"
	PurchasePartial = "partial"
)

// ValidPaymentStatus indica si el string corresponde a un estado de pago conocido.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PurchasePending, PurchasePaid, PurchasePartial:
		return true
	}
	return false
}

// PurchaseItem línea de compra a proveedor. Igual que en facturas, TotalPrice
// se confía del cliente.
type PurchaseItem struct {
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// Purchase cabecera de una compra a proveedor con sus líneas embebidas.
// Invariante: TotalAmount = Subtotal + TaxAmount - Discount.
type Purchase struct {
	ID             string
	PurchaseNumber string // PUR-000001, consecutivo atómico (tabla sequences)
	SupplierID     string
	SupplierName   string
	Items          []PurchaseItem
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentStatus  string // pending, paid, partial
	PaidAmount     decimal.Decimal
	Notes          string
	CreatedBy      string // UserID
	CreatedAt      time.Time
}
