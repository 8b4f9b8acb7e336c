package repository

import "github.com/tu-usuario/resto-pos/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	ListActive(limit int) ([]*entity.Employee, error)
}
