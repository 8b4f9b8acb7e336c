package workforce_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/application/workforce"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
)

type memEmployeeRepo struct {
	employees []*entity.Employee
}

func (r *memEmployeeRepo) Create(e *entity.Employee) error {
	r.employees = append(r.employees, e)
	return nil
}

func (r *memEmployeeRepo) ListActive(limit int) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if !e.IsActive || len(out) == limit {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func employeeReq() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:       "خالد العتيبي",
		NameAr:     "خالد العتيبي",
		NationalID: "1234567890",
		Phone:      "+966501111111",
		Department: "Kitchen",
		Position:   "Head Chef",
		Salary:     decimal.NewFromInt(8000),
	}
}

func TestCreateEmployee_NaceActivoConFechaDeAlta(t *testing.T) {
	uc := workforce.NewWorkforceUseCase(&memEmployeeRepo{})

	out, err := uc.CreateEmployee(employeeReq())
	require.NoError(t, err)

	assert.True(t, out.IsActive)
	assert.False(t, out.HireDate.IsZero(), "sin hire_date explícita se usa el momento de creación")
	assert.NotEmpty(t, out.ID)
}

func TestCreateEmployee_RespetaHireDateExplicita(t *testing.T) {
	uc := workforce.NewWorkforceUseCase(&memEmployeeRepo{})

	hired := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	in := employeeReq()
	in.HireDate = hired
	out, err := uc.CreateEmployee(in)
	require.NoError(t, err)
	assert.True(t, out.HireDate.Equal(hired))
}

func TestListActiveEmployees_ExcluyeInactivos(t *testing.T) {
	repo := &memEmployeeRepo{}
	uc := workforce.NewWorkforceUseCase(repo)

	_, err := uc.CreateEmployee(employeeReq())
	require.NoError(t, err)
	repo.employees = append(repo.employees, &entity.Employee{ID: "emp-x", IsActive: false})

	out, err := uc.ListActiveEmployees()
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
