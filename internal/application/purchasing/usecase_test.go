package purchasing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/application/purchasing"
	"github.com/tu-usuario/resto-pos/internal/domain"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memPurchaseRepo struct {
	purchases []*entity.Purchase
	items     map[string][]entity.PurchaseItem
}

func newMemPurchaseRepo() *memPurchaseRepo {
	return &memPurchaseRepo{items: make(map[string][]entity.PurchaseItem)}
}

func (r *memPurchaseRepo) Create(p *entity.Purchase) error {
	copied := *p
	r.purchases = append(r.purchases, &copied)
	return nil
}

func (r *memPurchaseRepo) CreateItem(purchaseID string, item *entity.PurchaseItem) error {
	r.items[purchaseID] = append(r.items[purchaseID], *item)
	return nil
}

func (r *memPurchaseRepo) List(limit int) ([]*entity.Purchase, error) {
	if len(r.purchases) > limit {
		return r.purchases[:limit], nil
	}
	return r.purchases, nil
}

type memSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *memSupplierRepo) Create(s *entity.Supplier) error {
	if r.suppliers == nil {
		r.suppliers = make(map[string]*entity.Supplier)
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *memSupplierRepo) List(limit int) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		if len(out) == limit {
			break
		}
		out = append(out, s)
	}
	return out, nil
}

type memProductRepo struct {
	stock map[string]int64
}

func (r *memProductRepo) Create(*entity.Product) error              { return nil }
func (r *memProductRepo) GetByID(string) (*entity.Product, error)   { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error              { return nil }
func (r *memProductRepo) ListActive(int) ([]*entity.Product, error) { return nil, nil }

func (r *memProductRepo) AdjustStock(productID string, delta int64) error {
	if r.stock == nil {
		r.stock = make(map[string]int64)
	}
	r.stock[productID] += delta
	return nil
}

type memMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	copied := *m
	r.movements = append(r.movements, &copied)
	return nil
}

func (r *memMovementRepo) ListRecent(int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

type memSequenceRepo struct {
	values map[string]int64
}

func (r *memSequenceRepo) Next(name string) (int64, error) {
	if r.values == nil {
		r.values = make(map[string]int64)
	}
	r.values[name]++
	return r.values[name], nil
}

type fakeTxRunner struct {
	purchaseRepo *memPurchaseRepo
	productRepo  *memProductRepo
	movementRepo *memMovementRepo
	sequenceRepo *memSequenceRepo
}

func (r *fakeTxRunner) RunPurchasing(_ context.Context, fn func(
	repository.PurchaseRepository,
	repository.ProductRepository,
	repository.StockMovementRepository,
	repository.SequenceRepository,
) error) error {
	return fn(r.purchaseRepo, r.productRepo, r.movementRepo, r.sequenceRepo)
}

func newFixture() (*purchasing.PurchasingUseCase, *fakeTxRunner, *memSupplierRepo) {
	runner := &fakeTxRunner{
		purchaseRepo: newMemPurchaseRepo(),
		productRepo:  &memProductRepo{},
		movementRepo: &memMovementRepo{},
		sequenceRepo: &memSequenceRepo{},
	}
	supplierRepo := &memSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-001": {ID: "sup-001", Name: "Fresh Foods Company", Balance: decimal.Zero},
	}}
	uc := purchasing.NewPurchasingUseCase(runner, runner.purchaseRepo, supplierRepo)
	return uc, runner, supplierRepo
}

func purchaseReq() dto.CreatePurchaseRequest {
	return dto.CreatePurchaseRequest{
		SupplierID: "sup-001",
		Items: []dto.PurchaseItemRequest{
			{ProductID: "prod-001", ProductName: "Burger", Quantity: 10,
				UnitPrice: decimal.NewFromInt(15), TotalPrice: decimal.NewFromInt(150)},
			{ProductID: "prod-002", ProductName: "Juice", Quantity: 20,
				UnitPrice: decimal.NewFromInt(3), TotalPrice: decimal.NewFromInt(60)},
		},
		Discount:  decimal.NewFromInt(10),
		TaxAmount: decimal.NewFromInt(30),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePurchase_RecalculaTotales(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.CreatePurchase(context.Background(), "user-1", purchaseReq())
	require.NoError(t, err)

	// subtotal 210, total 210+30-10 = 230; el impuesto llega como monto
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(210)), "subtotal: %s", out.Subtotal)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(230)), "total: %s", out.TotalAmount)
	assert.Equal(t, entity.PurchasePending, out.PaymentStatus, "sin estado explícito queda pending")
	assert.Equal(t, "user-1", out.CreatedBy)
}

func TestCreatePurchase_NumeracionConsecutiva(t *testing.T) {
	uc, _, _ := newFixture()

	first, err := uc.CreatePurchase(context.Background(), "user-1", purchaseReq())
	require.NoError(t, err)
	second, err := uc.CreatePurchase(context.Background(), "user-1", purchaseReq())
	require.NoError(t, err)

	assert.Equal(t, "PUR-000001", first.PurchaseNumber)
	assert.Equal(t, "PUR-000002", second.PurchaseNumber)
}

func TestCreatePurchase_ResuelveNombreDelProveedor(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.CreatePurchase(context.Background(), "user-1", purchaseReq())
	require.NoError(t, err)
	assert.Equal(t, "Fresh Foods Company", out.SupplierName)
}

func TestCreatePurchase_ProveedorInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, _ := newFixture()

	in := purchaseReq()
	in.SupplierID = "sup-999"
	_, err := uc.CreatePurchase(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePurchase_IncrementaStockPorLinea(t *testing.T) {
	uc, runner, _ := newFixture()

	_, err := uc.CreatePurchase(context.Background(), "user-1", purchaseReq())
	require.NoError(t, err)

	assert.Equal(t, int64(10), runner.productRepo.stock["prod-001"])
	assert.Equal(t, int64(20), runner.productRepo.stock["prod-002"])
}

func TestCreatePurchase_UnMovimientoEntradaPorLinea(t *testing.T) {
	uc, runner, _ := newFixture()

	out, err := uc.CreatePurchase(context.Background(), "user-1", purchaseReq())
	require.NoError(t, err)

	require.Len(t, runner.movementRepo.movements, 2)
	for i, m := range runner.movementRepo.movements {
		assert.Equal(t, entity.MovementIn, m.Type, "movimiento %d", i)
		assert.Equal(t, entity.RefPurchase, m.ReferenceType, "movimiento %d", i)
		assert.Equal(t, out.ID, m.ReferenceID, "movimiento %d", i)
	}
}

func TestCreatePurchase_ConservaOrdenDeLineas(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.CreatePurchase(context.Background(), "user-1", purchaseReq())
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	assert.Equal(t, "prod-001", out.Items[0].ProductID)
	assert.Equal(t, "prod-002", out.Items[1].ProductID)

	listed, err := uc.ListPurchases()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Len(t, listed[0].Items, 2)
	assert.Equal(t, "prod-001", listed[0].Items[0].ProductID,
		"el listado devuelve las líneas en el orden de la orden de compra")
	assert.Equal(t, "prod-002", listed[0].Items[1].ProductID)
}

func TestCreatePurchase_NoTocaElBalanceDelProveedor(t *testing.T) {
	uc, _, supplierRepo := newFixture()

	_, err := uc.CreatePurchase(context.Background(), "user-1", purchaseReq())
	require.NoError(t, err)

	assert.True(t, supplierRepo.suppliers["sup-001"].Balance.IsZero(),
		"crear compras no modifica el balance del proveedor")
}

func TestCreatePurchase_EstadoPagoInvalido_RetornaErrInvalidInput(t *testing.T) {
	uc, _, _ := newFixture()

	in := purchaseReq()
	in.PaymentStatus = "cancelled"
	_, err := uc.CreatePurchase(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePurchase_SinLineas_RetornaErrInvalidInput(t *testing.T) {
	uc, _, _ := newFixture()

	in := purchaseReq()
	in.Items = nil
	_, err := uc.CreatePurchase(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSupplier_BalanceInicial(t *testing.T) {
	uc, _, supplierRepo := newFixture()

	out, err := uc.CreateSupplier(dto.CreateSupplierRequest{
		Name:          "Quality Meats",
		NameAr:        "اللحوم عالية الجودة",
		ContactPerson: "محمد عبدالله",
		Phone:         "+966507654321",
		Balance:       decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	assert.True(t, out.Balance.Equal(decimal.NewFromInt(500)))
	assert.NotEmpty(t, out.ID)
	require.NotNil(t, supplierRepo.suppliers[out.ID])
}

func TestListSuppliers_DevuelveLosExistentes(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.ListSuppliers()
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
