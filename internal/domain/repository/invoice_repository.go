package repository

import "github.com/tu-usuario/resto-pos/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice (DIP).
// Las líneas se poseen por valor: sólo son direccionables a través de su factura.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(invoiceID string, item *entity.InvoiceItem) error
	// List devuelve facturas con sus líneas, de la más reciente a la más antigua.
	List(limit int) ([]*entity.Invoice, error)
}
