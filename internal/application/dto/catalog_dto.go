package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest datos para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	NameAr      string `json:"name_ar" validate:"required"`
	Description string `json:"description"`
}

// CategoryResponse categoría pública.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameAr      string    `json:"name_ar"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProductRequest datos para crear un producto. No se valida precio ni
// stock en esta capa (se aceptan tal cual llegan).
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required"`
	NameAr        string          `json:"name_ar" validate:"required"`
	CategoryID    string          `json:"category_id" validate:"required"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Unit          string          `json:"unit"`
	UnitAr        string          `json:"unit_ar"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"image_url"`
	StockQuantity int64           `json:"stock_quantity"`
	MinStockLevel int64           `json:"min_stock_level"`
}

// UpdateProductRequest reemplazo total del producto (sin merge parcial),
// stock_quantity incluido: es la vía de corrección manual de stock.
type UpdateProductRequest struct {
	Name          string          `json:"name" validate:"required"`
	NameAr        string          `json:"name_ar" validate:"required"`
	CategoryID    string          `json:"category_id" validate:"required"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Unit          string          `json:"unit"`
	UnitAr        string          `json:"unit_ar"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"image_url"`
	IsActive      bool            `json:"is_active"`
	StockQuantity int64           `json:"stock_quantity"`
	MinStockLevel int64           `json:"min_stock_level"`
}

// ProductResponse producto público.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	NameAr        string          `json:"name_ar"`
	CategoryID    string          `json:"category_id"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Unit          string          `json:"unit,omitempty"`
	UnitAr        string          `json:"unit_ar,omitempty"`
	Description   string          `json:"description,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	IsActive      bool            `json:"is_active"`
	StockQuantity int64           `json:"stock_quantity"`
	MinStockLevel int64           `json:"min_stock_level"`
	CreatedAt     time.Time       `json:"created_at"`
}
