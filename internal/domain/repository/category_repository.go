package repository

import "github.com/tu-usuario/resto-pos/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	List(limit int) ([]*entity.Category, error)
}
