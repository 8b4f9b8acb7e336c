package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, name_ar, national_id, phone, email, department,
			department_ar, position, position_ar, salary, hire_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.NameAr, employee.NationalID,
		employee.Phone, employee.Email, employee.Department, employee.DepartmentAr,
		employee.Position, employee.PositionAr, employee.Salary, employee.HireDate,
		employee.IsActive, employee.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// ListActive devuelve empleados activos hasta el límite dado.
func (r *EmployeeRepo) ListActive(limit int) ([]*entity.Employee, error) {
	query := `
		SELECT id, name, name_ar, national_id, phone, email, department, department_ar,
			position, position_ar, salary, hire_date, is_active, created_at
		FROM employees WHERE is_active = true ORDER BY created_at LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.NameAr, &e.NationalID, &e.Phone, &e.Email,
			&e.Department, &e.DepartmentAr, &e.Position, &e.PositionAr, &e.Salary,
			&e.HireDate, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
