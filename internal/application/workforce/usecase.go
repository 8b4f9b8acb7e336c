package workforce

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

const listCap = 1000

// WorkforceUseCase alta y listado de empleados.
type WorkforceUseCase struct {
	employeeRepo repository.EmployeeRepository
}

// NewWorkforceUseCase construye el caso de uso.
func NewWorkforceUseCase(employeeRepo repository.EmployeeRepository) *WorkforceUseCase {
	return &WorkforceUseCase{employeeRepo: employeeRepo}
}

// CreateEmployee persiste un empleado nuevo, activo por defecto. Si no llega
// hire_date se toma el momento de creación.
func (uc *WorkforceUseCase) CreateEmployee(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	now := time.Now()
	hireDate := in.HireDate
	if hireDate.IsZero() {
		hireDate = now
	}
	employee := &entity.Employee{
		ID:           uuid.New().String(),
		Name:         in.Name,
		NameAr:       in.NameAr,
		NationalID:   in.NationalID,
		Phone:        in.Phone,
		Email:        in.Email,
		Department:   in.Department,
		DepartmentAr: in.DepartmentAr,
		Position:     in.Position,
		PositionAr:   in.PositionAr,
		Salary:       in.Salary,
		HireDate:     hireDate,
		IsActive:     true,
		CreatedAt:    now,
	}
	if err := uc.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// ListActiveEmployees devuelve los empleados con is_active = true (tope 1000).
func (uc *WorkforceUseCase) ListActiveEmployees() ([]dto.EmployeeResponse, error) {
	employees, err := uc.employeeRepo.ListActive(listCap)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		NameAr:       e.NameAr,
		NationalID:   e.NationalID,
		Phone:        e.Phone,
		Email:        e.Email,
		Department:   e.Department,
		DepartmentAr: e.DepartmentAr,
		Position:     e.Position,
		PositionAr:   e.PositionAr,
		Salary:       e.Salary,
		HireDate:     e.HireDate,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
	}
}
