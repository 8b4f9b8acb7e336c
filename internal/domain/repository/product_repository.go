package repository

import "github.com/tu-usuario/resto-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// Update reemplaza todos los campos mutables (semántica de reemplazo total, sin merge parcial).
	Update(product *entity.Product) error
	ListActive(limit int) ([]*entity.Product, error)
	// AdjustStock aplica un incremento atómico (delta negativo para ventas).
	// Sin guarda: el stock puede quedar negativo.
	AdjustStock(productID string, delta int64) error
}
