package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, name_ar, category_id, cost_price, selling_price, unit, unit_ar,
		description, image_url, is_active, stock_quantity, min_stock_level, created_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.NameAr, product.CategoryID,
		product.CostPrice, product.SellingPrice, product.Unit, product.UnitAr,
		product.Description, product.ImageURL, product.IsActive,
		product.StockQuantity, product.MinStockLevel, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.NameAr, &p.CategoryID, &p.CostPrice, &p.SellingPrice,
		&p.Unit, &p.UnitAr, &p.Description, &p.ImageURL, &p.IsActive,
		&p.StockQuantity, &p.MinStockLevel, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update reemplaza el producto completo (sin merge parcial), stock_quantity
// incluido. Los deltas transaccionales de ventas y compras van por AdjustStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, name_ar = $3, category_id = $4, cost_price = $5,
			selling_price = $6, unit = $7, unit_ar = $8, description = $9, image_url = $10,
			is_active = $11, stock_quantity = $12, min_stock_level = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.NameAr, product.CategoryID,
		product.CostPrice, product.SellingPrice, product.Unit, product.UnitAr,
		product.Description, product.ImageURL, product.IsActive,
		product.StockQuantity, product.MinStockLevel,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListActive devuelve productos activos hasta el límite dado.
func (r *ProductRepo) ListActive(limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = true ORDER BY created_at LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.NameAr, &p.CategoryID, &p.CostPrice, &p.SellingPrice,
			&p.Unit, &p.UnitAr, &p.Description, &p.ImageURL, &p.IsActive,
			&p.StockQuantity, &p.MinStockLevel, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AdjustStock aplica un incremento atómico sobre stock_quantity (delta negativo
// para ventas). Sin guarda de stock insuficiente: puede quedar negativo.
func (r *ProductRepo) AdjustStock(productID string, delta int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = stock_quantity + $2 WHERE id = $1`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}
