package inventory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-pos/internal/application/inventory"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
)

type memMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *memMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	if len(r.movements) > limit {
		return r.movements[:limit], nil
	}
	return r.movements, nil
}

func TestListRecentMovements_AplicaTope100(t *testing.T) {
	repo := &memMovementRepo{}
	for i := 0; i < 150; i++ {
		repo.movements = append(repo.movements, &entity.StockMovement{
			ID:   fmt.Sprintf("mov-%03d", i),
			Type: entity.MovementOut,
		})
	}
	uc := inventory.NewInventoryUseCase(repo)

	out, err := uc.ListRecentMovements()
	require.NoError(t, err)
	assert.Len(t, out, 100)
}

func TestListRecentMovements_MapeaCampos(t *testing.T) {
	repo := &memMovementRepo{movements: []*entity.StockMovement{{
		ID:            "mov-001",
		ProductID:     "prod-001",
		ProductName:   "Burger",
		Type:          entity.MovementIn,
		Quantity:      10,
		ReferenceType: entity.RefPurchase,
		ReferenceID:   "pur-001",
		CreatedBy:     "user-1",
	}}}
	uc := inventory.NewInventoryUseCase(repo)

	out, err := uc.ListRecentMovements()
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, entity.MovementIn, out[0].MovementType)
	assert.Equal(t, int64(10), out[0].Quantity)
	assert.Equal(t, entity.RefPurchase, out[0].ReferenceType)
	assert.Equal(t, "pur-001", out[0].ReferenceID)
}
