package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor.
// Balance se almacena y se devuelve tal cual; la creación de compras no lo
// modifica (comportamiento heredado, ver DESIGN.md).
type Supplier struct {
	ID            string
	Name          string
	NameAr        string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	Balance       decimal.Decimal
	CreatedAt     time.Time
}
