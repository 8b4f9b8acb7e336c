package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/domain"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

// listCap tope fijo de los listados (sin paginación real, igual que el resto
// de colecciones del sistema).
const listCap = 1000

// CatalogUseCase casos de uso del catálogo: categorías y productos.
type CatalogUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{categoryRepo: categoryRepo, productRepo: productRepo}
}

// CreateCategory persiste una categoría nueva.
func (uc *CatalogUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		NameAr:      in.NameAr,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// ListCategories devuelve todas las categorías (tope 1000).
func (uc *CatalogUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List(listCap)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// CreateProduct persiste un producto nuevo. No valida precios ni stock:
// esta capa acepta los valores tal cual llegan.
func (uc *CatalogUseCase) CreateProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	minStock := in.MinStockLevel
	if minStock == 0 {
		minStock = 10
	}
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		NameAr:        in.NameAr,
		CategoryID:    in.CategoryID,
		CostPrice:     in.CostPrice,
		SellingPrice:  in.SellingPrice,
		Unit:          in.Unit,
		UnitAr:        in.UnitAr,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		IsActive:      true,
		StockQuantity: in.StockQuantity,
		MinStockLevel: minStock,
		CreatedAt:     time.Now(),
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListActiveProducts devuelve productos con is_active = true (tope 1000).
func (uc *CatalogUseCase) ListActiveProducts() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListActive(listCap)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// GetProduct obtiene un producto por ID. Devuelve ErrNotFound si no existe.
func (uc *CatalogUseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// UpdateProduct reemplaza el producto completo (sin merge parcial), incluido
// stock_quantity: el PUT es la vía de corrección manual de stock.
func (uc *CatalogUseCase) UpdateProduct(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.NameAr = in.NameAr
	product.CategoryID = in.CategoryID
	product.CostPrice = in.CostPrice
	product.SellingPrice = in.SellingPrice
	product.Unit = in.Unit
	product.UnitAr = in.UnitAr
	product.Description = in.Description
	product.ImageURL = in.ImageURL
	product.IsActive = in.IsActive
	product.StockQuantity = in.StockQuantity
	product.MinStockLevel = in.MinStockLevel
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		NameAr:      c.NameAr,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		NameAr:        p.NameAr,
		CategoryID:    p.CategoryID,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		Unit:          p.Unit,
		UnitAr:        p.UnitAr,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		StockQuantity: p.StockQuantity,
		MinStockLevel: p.MinStockLevel,
		CreatedAt:     p.CreatedAt,
	}
}
