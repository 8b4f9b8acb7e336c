package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest datos para crear un proveedor.
type CreateSupplierRequest struct {
	Name          string          `json:"name" validate:"required"`
	NameAr        string          `json:"name_ar" validate:"required"`
	ContactPerson string          `json:"contact_person" validate:"required"`
	Phone         string          `json:"phone" validate:"required"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Address       string          `json:"address"`
	Balance       decimal.Decimal `json:"balance"`
}

// SupplierResponse proveedor público.
type SupplierResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	NameAr        string          `json:"name_ar"`
	ContactPerson string          `json:"contact_person"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email,omitempty"`
	Address       string          `json:"address,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PurchaseItemRequest línea de compra; misma confianza en total_price que en facturas.
type PurchaseItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// CreatePurchaseRequest datos para crear una compra a proveedor.
type CreatePurchaseRequest struct {
	SupplierID    string                `json:"supplier_id" validate:"required"`
	SupplierName  string                `json:"supplier_name"`
	Items         []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
	Discount      decimal.Decimal       `json:"discount"`
	TaxAmount     decimal.Decimal       `json:"tax_amount"`
	PaymentStatus string                `json:"payment_status" validate:"omitempty,oneof=pending paid partial"`
	PaidAmount    decimal.Decimal       `json:"paid_amount"`
	Notes         string                `json:"notes"`
}

// PurchaseItemResponse línea de compra en respuestas.
type PurchaseItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// PurchaseResponse compra con totales calculados por el servidor.
type PurchaseResponse struct {
	ID             string                 `json:"id"`
	PurchaseNumber string                 `json:"purchase_number"`
	SupplierID     string                 `json:"supplier_id"`
	SupplierName   string                 `json:"supplier_name"`
	Items          []PurchaseItemResponse `json:"items"`
	Subtotal       decimal.Decimal        `json:"subtotal"`
	Discount       decimal.Decimal        `json:"discount"`
	TaxAmount      decimal.Decimal        `json:"tax_amount"`
	TotalAmount    decimal.Decimal        `json:"total_amount"`
	PaymentStatus  string                 `json:"payment_status"`
	PaidAmount     decimal.Decimal        `json:"paid_amount"`
	Notes          string                 `json:"notes,omitempty"`
	CreatedBy      string                 `json:"created_by"`
	CreatedAt      time.Time              `json:"created_at"`
}
