package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago de factura.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentDeferred = "deferred"
)

// ValidPaymentMethod indica si el string corresponde a un método de pago conocido.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentDeferred:
		return true
	}
	return false
}

// InvoiceItem línea de factura. TotalPrice llega del cliente y no se recalcula
// por línea; el servidor sólo recalcula subtotal/impuesto/total de la cabecera.
type InvoiceItem struct {
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// Invoice cabecera de una venta con sus líneas embebidas.
// Invariante: TotalAmount = Subtotal + TaxAmount - Discount, TaxAmount = Subtotal * TaxRate.
type Invoice struct {
	ID            string
	InvoiceNumber string // INV-000001, consecutivo atómico (tabla sequences)
	CustomerName  string
	CustomerPhone string
	Items         []InvoiceItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	PaymentMethod string
	Status        string
	Notes         string
	CreatedBy     string // UserID
	CreatedAt     time.Time
}
