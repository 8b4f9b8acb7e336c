package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un empleado del restaurante (nombre y cargo bilingües).
type Employee struct {
	ID           string
	Name         string
	NameAr       string
	NationalID   string
	Phone        string
	Email        string
	Department   string
	DepartmentAr string
	Position     string
	PositionAr   string
	Salary       decimal.Decimal
	HireDate     time.Time
	IsActive     bool
	CreatedAt    time.Time
}
