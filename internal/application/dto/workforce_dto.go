package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest datos para crear un empleado.
type CreateEmployeeRequest struct {
	Name         string          `json:"name" validate:"required"`
	NameAr       string          `json:"name_ar" validate:"required"`
	NationalID   string          `json:"national_id" validate:"required"`
	Phone        string          `json:"phone" validate:"required"`
	Email        string          `json:"email" validate:"omitempty,email"`
	Department   string          `json:"department" validate:"required"`
	DepartmentAr string          `json:"department_ar"`
	Position     string          `json:"position" validate:"required"`
	PositionAr   string          `json:"position_ar"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     time.Time       `json:"hire_date"`
}

// EmployeeResponse empleado público.
type EmployeeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	NameAr       string          `json:"name_ar"`
	NationalID   string          `json:"national_id"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email,omitempty"`
	Department   string          `json:"department"`
	DepartmentAr string          `json:"department_ar,omitempty"`
	Position     string          `json:"position"`
	PositionAr   string          `json:"position_ar,omitempty"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     time.Time       `json:"hire_date"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}
