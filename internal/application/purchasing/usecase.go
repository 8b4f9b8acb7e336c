package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/domain"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

const (
	// purchaseSequence nombre del consecutivo en la tabla sequences.
	purchaseSequence = "purchases"
	// listCap tope fijo de los listados.
	listCap = 1000
)

// PurchasingUseCase gestiona proveedores y órdenes de compra con entrada de
// stock en una sola transacción.
type PurchasingUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchasingUseCase construye el caso de uso.
func NewPurchasingUseCase(txRunner TxRunner, purchaseRepo repository.PurchaseRepository, supplierRepo repository.SupplierRepository) *PurchasingUseCase {
	return &PurchasingUseCase{txRunner: txRunner, purchaseRepo: purchaseRepo, supplierRepo: supplierRepo}
}

// CreateSupplier persiste un proveedor nuevo. El balance arranca con el valor
// recibido y después sólo cambia por edición directa, nunca por compras.
func (uc *PurchasingUseCase) CreateSupplier(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          in.Name,
		NameAr:        in.NameAr,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		Balance:       in.Balance,
		CreatedAt:     time.Now(),
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// ListSuppliers devuelve todos los proveedores (tope 1000).
func (uc *PurchasingUseCase) ListSuppliers() ([]dto.SupplierResponse, error) {
	suppliers, err := uc.supplierRepo.List(listCap)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// CreatePurchase crea la orden de compra: consecutivo atómico, totales
// recalculados y, por cada línea, incremento de stock más asiento en el
// libro, todo dentro de la misma transacción.
//
//	subtotal = Σ total_price
//	total    = subtotal + tax_amount - discount
//
// A diferencia de las ventas, el impuesto llega como monto, no como tasa.
// El balance del proveedor no se toca.
func (uc *PurchasingUseCase) CreatePurchase(ctx context.Context, userID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if len(in.Items) == 0 || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = entity.PurchasePending
	}
	if !entity.ValidPaymentStatus(paymentStatus) {
		return nil, domain.ErrInvalidInput
	}

	supplierName := in.SupplierName
	if supplierName == "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		supplierName = supplier.Name
	}

	subtotal := decimal.Zero
	for _, item := range in.Items {
		subtotal = subtotal.Add(item.TotalPrice)
	}
	totalAmount := subtotal.Add(in.TaxAmount).Sub(in.Discount)

	now := time.Now()
	purchase := &entity.Purchase{
		ID:            uuid.New().String(),
		SupplierID:    in.SupplierID,
		SupplierName:  supplierName,
		Subtotal:      subtotal,
		Discount:      in.Discount,
		TaxAmount:     in.TaxAmount,
		TotalAmount:   totalAmount,
		PaymentStatus: paymentStatus,
		PaidAmount:    in.PaidAmount,
		Notes:         in.Notes,
		CreatedBy:     userID,
		CreatedAt:     now,
	}
	for _, item := range in.Items {
		purchase.Items = append(purchase.Items, entity.PurchaseItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	err := uc.txRunner.RunPurchasing(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		sequenceRepo repository.SequenceRepository,
	) error {
		seq, err := sequenceRepo.Next(purchaseSequence)
		if err != nil {
			return err
		}
		purchase.PurchaseNumber = fmt.Sprintf("PUR-%06d", seq)

		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for i := range purchase.Items {
			item := &purchase.Items[i]
			if err := purchaseRepo.CreateItem(purchase.ID, item); err != nil {
				return err
			}
			if err := productRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
			movement := &entity.StockMovement{
				ID:            uuid.New().String(),
				ProductID:     item.ProductID,
				ProductName:   item.ProductName,
				Type:          entity.MovementIn,
				Quantity:      item.Quantity,
				ReferenceType: entity.RefPurchase,
				ReferenceID:   purchase.ID,
				CreatedBy:     userID,
				CreatedAt:     now,
			}
			if err := movementRepo.Create(movement); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPurchaseResponse(purchase), nil
}

// ListPurchases devuelve las compras más recientes primero (tope 1000).
func (uc *PurchasingUseCase) ListPurchases() ([]dto.PurchaseResponse, error) {
	purchases, err := uc.purchaseRepo.List(listCap)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		NameAr:        s.NameAr,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		Balance:       s.Balance,
		CreatedAt:     s.CreatedAt,
	}
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:             p.ID,
		PurchaseNumber: p.PurchaseNumber,
		SupplierID:     p.SupplierID,
		SupplierName:   p.SupplierName,
		Items:          make([]dto.PurchaseItemResponse, 0, len(p.Items)),
		Subtotal:       p.Subtotal,
		Discount:       p.Discount,
		TaxAmount:      p.TaxAmount,
		TotalAmount:    p.TotalAmount,
		PaymentStatus:  p.PaymentStatus,
		PaidAmount:     p.PaidAmount,
		Notes:          p.Notes,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
	}
	for _, item := range p.Items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	return resp
}
