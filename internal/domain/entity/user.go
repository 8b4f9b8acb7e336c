package entity

import "time"

// Roles válidos para User.
const (
	RoleManager           = "manager"
	RoleAccountant        = "accountant"
	RoleWorker            = "worker"
	RoleKitchenSupervisor = "kitchen_supervisor"
)

// ValidRole indica si el string corresponde a un rol conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleManager, RoleAccountant, RoleWorker, RoleKitchenSupervisor:
		return true
	}
	return false
}

// User representa un usuario del sistema. Username y Email son únicos.
type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	Role         string // manager, accountant, worker, kitchen_supervisor
	IsActive     bool
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
