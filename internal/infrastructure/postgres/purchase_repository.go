package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de una compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, purchase_number, supplier_id, supplier_name, subtotal,
			discount, tax_amount, total_amount, payment_status, paid_amount, notes,
			created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.PurchaseNumber, purchase.SupplierID, purchase.SupplierName,
		purchase.Subtotal, purchase.Discount, purchase.TaxAmount, purchase.TotalAmount,
		purchase.PaymentStatus, purchase.PaidAmount, purchase.Notes,
		purchase.CreatedBy, purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la compra.
func (r *PurchaseRepo) CreateItem(purchaseID string, item *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (id, purchase_id, product_id, product_name, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		uuid.New().String(), purchaseID, item.ProductID, item.ProductName,
		item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

// List devuelve compras con sus líneas, de la más reciente a la más antigua.
func (r *PurchaseRepo) List(limit int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, purchase_number, supplier_id, supplier_name, subtotal, discount,
			tax_amount, total_amount, payment_status, paid_amount, notes, created_by, created_at
		FROM purchases ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	byID := make(map[string]*entity.Purchase)
	ids := make([]string, 0)
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.PurchaseNumber, &p.SupplierID, &p.SupplierName,
			&p.Subtotal, &p.Discount, &p.TaxAmount, &p.TotalAmount,
			&p.PaymentStatus, &p.PaidAmount, &p.Notes, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
		byID[p.ID] = &p
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	itemsQuery := `
		SELECT purchase_id, product_id, product_name, quantity, unit_price, total_price
		FROM purchase_items WHERE purchase_id = ANY($1) ORDER BY line_no`
	itemRows, err := r.q.Query(context.Background(), itemsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var purchaseID string
		var item entity.PurchaseItem
		if err := itemRows.Scan(&purchaseID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		if p, ok := byID[purchaseID]; ok {
			p.Items = append(p.Items, item)
		}
	}
	return list, itemRows.Err()
}
