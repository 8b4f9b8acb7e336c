package entity

import "time"

// Category representa una categoría de productos del menú (nombre bilingüe).
type Category struct {
	ID          string
	Name        string
	NameAr      string
	Description string
	CreatedAt   time.Time
}
