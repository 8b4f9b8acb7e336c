package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de una factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, invoice_number, customer_name, customer_phone, subtotal,
			discount, tax_rate, tax_amount, total_amount, payment_method, status, notes,
			created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.CustomerName, invoice.CustomerPhone,
		invoice.Subtotal, invoice.Discount, invoice.TaxRate, invoice.TaxAmount,
		invoice.TotalAmount, invoice.PaymentMethod, invoice.Status, invoice.Notes,
		invoice.CreatedBy, invoice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la factura (poseída por valor, sin endpoint propio).
func (r *InvoiceRepo) CreateItem(invoiceID string, item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, product_id, product_name, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		uuid.New().String(), invoiceID, item.ProductID, item.ProductName,
		item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// List devuelve facturas con sus líneas, de la más reciente a la más antigua.
func (r *InvoiceRepo) List(limit int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, customer_name, customer_phone, subtotal, discount,
			tax_rate, tax_amount, total_amount, payment_method, status, notes, created_by, created_at
		FROM invoices ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	byID := make(map[string]*entity.Invoice)
	ids := make([]string, 0)
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.CustomerName, &inv.CustomerPhone,
			&inv.Subtotal, &inv.Discount, &inv.TaxRate, &inv.TaxAmount, &inv.TotalAmount,
			&inv.PaymentMethod, &inv.Status, &inv.Notes, &inv.CreatedBy, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
		byID[inv.ID] = &inv
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	itemsQuery := `
		SELECT invoice_id, product_id, product_name, quantity, unit_price, total_price
		FROM invoice_items WHERE invoice_id = ANY($1) ORDER BY line_no`
	itemRows, err := r.q.Query(context.Background(), itemsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var invoiceID string
		var item entity.InvoiceItem
		if err := itemRows.Scan(&invoiceID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		if inv, ok := byID[invoiceID]; ok {
			inv.Items = append(inv.Items, item)
		}
	}
	return list, itemRows.Err()
}
