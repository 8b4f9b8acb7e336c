package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-pos/internal/application/catalog"
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/domain"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
)

type memCategoryRepo struct {
	categories []*entity.Category
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	r.categories = append(r.categories, c)
	return nil
}

func (r *memCategoryRepo) List(limit int) ([]*entity.Category, error) {
	if len(r.categories) > limit {
		return r.categories[:limit], nil
	}
	return r.categories, nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) ListActive(limit int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if !p.IsActive || len(out) == limit {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) AdjustStock(productID string, delta int64) error {
	if p, ok := r.products[productID]; ok {
		p.StockQuantity += delta
	}
	return nil
}

func newFixture() (*catalog.CatalogUseCase, *memProductRepo) {
	productRepo := newMemProductRepo()
	return catalog.NewCatalogUseCase(&memCategoryRepo{}, productRepo), productRepo
}

func productReq() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:          "Dark Special Burger",
		NameAr:        "برجر دارك سبيشل",
		CategoryID:    "cat-001",
		CostPrice:     decimal.NewFromInt(15),
		SellingPrice:  decimal.NewFromInt(35),
		Unit:          "piece",
		StockQuantity: 50,
		MinStockLevel: 10,
	}
}

func TestCreateProduct_NaceActivo(t *testing.T) {
	uc, _ := newFixture()

	out, err := uc.CreateProduct(productReq())
	require.NoError(t, err)

	assert.True(t, out.IsActive)
	assert.Equal(t, int64(50), out.StockQuantity)
	assert.NotEmpty(t, out.ID)
}

func TestCreateProduct_MinStockPorDefecto(t *testing.T) {
	uc, _ := newFixture()

	in := productReq()
	in.MinStockLevel = 0
	out, err := uc.CreateProduct(in)
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.MinStockLevel)
}

func TestGetProduct_Inexistente_RetornaErrNotFound(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.GetProduct("prod-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProduct_ReemplazoTotalIncluyeStock(t *testing.T) {
	uc, repo := newFixture()

	created, err := uc.CreateProduct(productReq())
	require.NoError(t, err)

	out, err := uc.UpdateProduct(created.ID, dto.UpdateProductRequest{
		Name:          "Dark Burger XL",
		NameAr:        "برجر دارك",
		CategoryID:    "cat-001",
		SellingPrice:  decimal.NewFromInt(40),
		IsActive:      false,
		StockQuantity: 7,
		MinStockLevel: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Dark Burger XL", out.Name)
	assert.False(t, out.IsActive)
	assert.Equal(t, int64(5), out.MinStockLevel)
	assert.Equal(t, int64(7), out.StockQuantity,
		"el PUT reemplaza el documento completo, stock incluido")
	assert.Equal(t, int64(7), repo.products[created.ID].StockQuantity)
}

// La corrección manual de stock viaja en el cuerpo del PUT.
func TestUpdateProduct_StockDesdeJSON(t *testing.T) {
	uc, repo := newFixture()

	created, err := uc.CreateProduct(productReq())
	require.NoError(t, err)
	require.Equal(t, int64(50), repo.products[created.ID].StockQuantity)

	body := `{"name":"Burger","name_ar":"برجر","category_id":"cat-001","is_active":true,"stock_quantity":7,"min_stock_level":10}`
	var in dto.UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	out, err := uc.UpdateProduct(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.StockQuantity)
}

func TestUpdateProduct_Inexistente_RetornaErrNotFound(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.UpdateProduct("prod-999", dto.UpdateProductRequest{Name: "X", NameAr: "X", CategoryID: "cat-001"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCategory_YListado(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.CreateCategory(dto.CreateCategoryRequest{Name: "Beverages", NameAr: "المشروبات"})
	require.NoError(t, err)

	out, err := uc.ListCategories()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Beverages", out[0].Name)
}
