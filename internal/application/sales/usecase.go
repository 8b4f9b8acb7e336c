package sales

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
	// invoiceSequence nombre del consecutivo en la tabla sequences.
	invoiceSequence = "invoices"
	// listCap tope fijo del listado de facturas.
	listCap = 1000
)

// defaultTaxRate tasa de impuesto aplicada cuando el request no trae tax_rate.
var defaultTaxRate = decimal.NewFromFloat(0.15)

// SalesUseCase crea facturas de venta y descuenta stock en una sola transacción.
type SalesUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(txRunner TxRunner, invoiceRepo repository.InvoiceRepository) *SalesUseCase {
	return &SalesUseCase{txRunner: txRunner, invoiceRepo: invoiceRepo}
}

// CreateInvoice crea la factura: consecutivo atómico, totales recalculados en
// el servidor y, por cada línea, decremento de stock más asiento en el libro,
// todo dentro de la misma transacción.
//
// Los total_price de las líneas se confían del cliente y no se rederivan de
// cantidad x precio; el subtotal, el impuesto y el total sí se recalculan:
//
//	subtotal = Σ total_price
//	tax      = subtotal * tax_rate
//	total    = subtotal + tax - discount
//
// No hay guarda de stock insuficiente: el stock puede quedar negativo.
func (uc *SalesUseCase) CreateInvoice(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	taxRate := in.TaxRate
	if taxRate.IsZero() {
		taxRate = defaultTaxRate
	}

	subtotal := decimal.Zero
	for _, item := range in.Items {
		subtotal = subtotal.Add(item.TotalPrice)
	}
	taxAmount := subtotal.Mul(taxRate)
	totalAmount := subtotal.Add(taxAmount).Sub(in.Discount)

	now := time.Now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Subtotal:      subtotal,
		Discount:      in.Discount,
		TaxRate:       taxRate,
		TaxAmount:     taxAmount,
		TotalAmount:   totalAmount,
		PaymentMethod: in.PaymentMethod,
		Status:        "completed",
		Notes:         in.Notes,
		CreatedBy:     userID,
		CreatedAt:     now,
	}
	for _, item := range in.Items {
		inv.Items = append(inv.Items, entity.InvoiceItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	err := uc.txRunner.RunSales(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		sequenceRepo repository.SequenceRepository,
	) error {
		seq, err := sequenceRepo.Next(invoiceSequence)
		if err != nil {
			return err
		}
		inv.InvoiceNumber = fmt.Sprintf("INV-%06d", seq)

		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for i := range inv.Items {
			item := &inv.Items[i]
			if err := invoiceRepo.CreateItem(inv.ID, item); err != nil {
				return err
			}
			if err := productRepo.AdjustStock(item.ProductID, -item.Quantity); err != nil {
				return err
			}
			movement := &entity.StockMovement{
				ID:            uuid.New().String(),
				ProductID:     item.ProductID,
				ProductName:   item.ProductName,
				Type:          entity.MovementOut,
				Quantity:      item.Quantity,
				ReferenceType: entity.RefSale,
				ReferenceID:   inv.ID,
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

	return toInvoiceResponse(inv), nil
}

// ListInvoices devuelve las facturas más recientes primero (tope 1000).
func (uc *SalesUseCase) ListInvoices() ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List(listCap)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *toInvoiceResponse(inv))
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  inv.CustomerName,
		CustomerPhone: inv.CustomerPhone,
		Items:         make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
		Subtotal:      inv.Subtotal,
		Discount:      inv.Discount,
		TaxRate:       inv.TaxRate,
		TaxAmount:     inv.TaxAmount,
		TotalAmount:   inv.TotalAmount,
		PaymentMethod: inv.PaymentMethod,
		Status:        inv.Status,
		Notes:         inv.Notes,
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     inv.CreatedAt,
	}
	for _, item := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	return resp
}
