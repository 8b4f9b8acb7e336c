// Package seed siembra los datos iniciales del restaurante: cuenta admin,
// categorías base, productos de muestra, proveedores y empleados.
// Cada bloque es idempotente: sólo inserta si la colección está vacía.
package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
	"github.com/tu-usuario/resto-pos/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// adminPassword credencial inicial; cambiarla tras el primer login.
const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

// Repos repositorios que usa la siembra.
type Repos struct {
	Users      repository.UserRepository
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Suppliers  repository.SupplierRepository
	Employees  repository.EmployeeRepository
}

// Run ejecuta la siembra completa. Devuelve el primer error encontrado.
func Run(repos Repos, log *logger.Logger) error {
	if err := seedAdmin(repos.Users, log); err != nil {
		return err
	}
	categoryIDs, err := seedCategories(repos.Categories, log)
	if err != nil {
		return err
	}
	if err := seedProducts(repos.Products, categoryIDs, log); err != nil {
		return err
	}
	if err := seedSuppliers(repos.Suppliers, log); err != nil {
		return err
	}
	return seedEmployees(repos.Employees, log)
}

func seedAdmin(users repository.UserRepository, log *logger.Logger) error {
	existing, err := users.GetByUsername(adminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     adminUsername,
		Email:        "admin@dark-restaurant.com",
		FullName:     "مدير النظام",
		Role:         entity.RoleManager,
		IsActive:     true,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := users.Create(admin); err != nil {
		return err
	}
	log.Info().Str("username", adminUsername).Msg("cuenta admin creada")
	return nil
}

// seedCategories devuelve los IDs por nombre para enlazar los productos.
func seedCategories(categories repository.CategoryRepository, log *logger.Logger) (map[string]string, error) {
	existing, err := categories.List(1)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]string)
	if len(existing) > 0 {
		all, err := categories.List(1000)
		if err != nil {
			return nil, err
		}
		for _, c := range all {
			ids[c.Name] = c.ID
		}
		return ids, nil
	}

	now := time.Now()
	data := []entity.Category{
		{Name: "Main Dishes", NameAr: "الأطباق الرئيسية", Description: "Main course dishes"},
		{Name: "Beverages", NameAr: "المشروبات", Description: "Hot and cold drinks"},
		{Name: "Appetizers", NameAr: "المقبلات", Description: "Starters and appetizers"},
		{Name: "Desserts", NameAr: "الحلويات", Description: "Sweet desserts"},
	}
	for i := range data {
		c := data[i]
		c.ID = uuid.New().String()
		c.CreatedAt = now
		if err := categories.Create(&c); err != nil {
			return nil, err
		}
		ids[c.Name] = c.ID
	}
	log.Info().Int("count", len(data)).Msg("categorías base creadas")
	return ids, nil
}

func seedProducts(products repository.ProductRepository, categoryIDs map[string]string, log *logger.Logger) error {
	existing, err := products.ListActive(1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	data := []entity.Product{
		{
			Name: "Dark Special Burger", NameAr: "برجر دارك سبيشل",
			CategoryID:   categoryIDs["Main Dishes"],
			CostPrice:    decimal.NewFromInt(15),
			SellingPrice: decimal.NewFromInt(35),
			Unit:         "piece", UnitAr: "قطعة",
			Description:   "Special burger with premium ingredients",
			StockQuantity: 50, MinStockLevel: 10,
		},
		{
			Name: "Fresh Orange Juice", NameAr: "عصير البرتقال الطازج",
			CategoryID:   categoryIDs["Beverages"],
			CostPrice:    decimal.NewFromInt(3),
			SellingPrice: decimal.NewFromInt(12),
			Unit:         "glass", UnitAr: "كوب",
			Description:   "Freshly squeezed orange juice",
			StockQuantity: 100, MinStockLevel: 20,
		},
		{
			Name: "Caesar Salad", NameAr: "سلطة سيزر",
			CategoryID:   categoryIDs["Appetizers"],
			CostPrice:    decimal.NewFromInt(8),
			SellingPrice: decimal.NewFromInt(22),
			Unit:         "plate", UnitAr: "طبق",
			Description:   "Fresh caesar salad with croutons",
			StockQuantity: 30, MinStockLevel: 5,
		},
		{
			Name: "Chocolate Cake", NameAr: "كيك الشوكولاتة",
			CategoryID:   categoryIDs["Desserts"],
			CostPrice:    decimal.NewFromInt(12),
			SellingPrice: decimal.NewFromInt(28),
			Unit:         "slice", UnitAr: "قطعة",
			Description:   "Rich chocolate cake",
			StockQuantity: 20, MinStockLevel: 3,
		},
	}
	for i := range data {
		p := data[i]
		p.ID = uuid.New().String()
		p.IsActive = true
		p.CreatedAt = now
		if err := products.Create(&p); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(data)).Msg("productos de muestra creados")
	return nil
}

func seedSuppliers(suppliers repository.SupplierRepository, log *logger.Logger) error {
	existing, err := suppliers.List(1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	data := []entity.Supplier{
		{
			Name: "Fresh Foods Company", NameAr: "شركة الأطعمة الطازجة",
			ContactPerson: "أحمد محمد",
			Phone:         "+966501234567",
			Email:         "ahmed@freshfoods.com",
			Address:       "الرياض، المملكة العربية السعودية",
		},
		{
			Name: "Quality Meats", NameAr: "اللحوم عالية الجودة",
			ContactPerson: "محمد عبدالله",
			Phone:         "+966507654321",
			Email:         "mohammed@qualitymeats.com",
			Address:       "جدة، المملكة العربية السعودية",
		},
	}
	for i := range data {
		s := data[i]
		s.ID = uuid.New().String()
		s.Balance = decimal.Zero
		s.CreatedAt = now
		if err := suppliers.Create(&s); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(data)).Msg("proveedores de muestra creados")
	return nil
}

func seedEmployees(employees repository.EmployeeRepository, log *logger.Logger) error {
	existing, err := employees.ListActive(1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	data := []entity.Employee{
		{
			Name: "خالد العتيبي", NameAr: "خالد العتيبي",
			NationalID: "1234567890",
			Phone:      "+966501111111",
			Email:      "khalid@dark-restaurant.com",
			Department: "Kitchen", DepartmentAr: "المطبخ",
			Position: "Head Chef", PositionAr: "شيف رئيسي",
			Salary: decimal.NewFromInt(8000),
		},
		{
			Name: "فاطمة أحمد", NameAr: "فاطمة أحمد",
			NationalID: "0987654321",
			Phone:      "+966502222222",
			Email:      "fatima@dark-restaurant.com",
			Department: "Service", DepartmentAr: "الخدمة",
			Position: "Waitress", PositionAr: "مضيفة",
			Salary: decimal.NewFromInt(4500),
		},
	}
	for i := range data {
		e := data[i]
		e.ID = uuid.New().String()
		e.HireDate = now
		e.IsActive = true
		e.CreatedAt = now
		if err := employees.Create(&e); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(data)).Msg("empleados de muestra creados")
	return nil
}
