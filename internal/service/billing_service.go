package service

import (
	"context"
	"errors"
	"fmt"

	"go-ims/internal/invoice"
	"go-ims/internal/model"
	"go-ims/internal/repository"
	"go-ims/internal/ws"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BillingService interface {
	CreateSale(ctx context.Context, in SaleInput) (*SaleResult, error)
	GetSale(ctx context.Context, invoiceNo string) (*model.SaleDetail, error)
	UpdateBill(ctx context.Context, sid uint, in BillUpdate) (int64, error)
	DeleteSale(ctx context.Context, sid uint) error
	ListBills(ctx context.Context) ([]model.BillView, error)
	ListSales(ctx context.Context) ([]model.SaleView, error)
}

type billingService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	invoices    *invoice.Store
	numbers     *invoice.Numberer
	hub         Broadcaster
}

func NewBillingService(
	sRepo repository.SaleRepository,
	pRepo repository.ProductRepository,
	db *gorm.DB,
	invoices *invoice.Store,
	numbers *invoice.Numberer,
	hub Broadcaster,
) BillingService {
	if hub == nil {
		hub = NopBroadcaster()
	}
	return &billingService{
		saleRepo:    sRepo,
		productRepo: pRepo,
		db:          db,
		invoices:    invoices,
		numbers:     numbers,
		hub:         hub,
	}
}

func (s *billingService) CreateSale(ctx context.Context, in SaleInput) (*SaleResult, error) {
	switch sale := in.(type) {
	case ItemizedSale:
		return s.createItemized(ctx, sale)
	case *ItemizedSale:
		return s.createItemized(ctx, *sale)
	case SimpleSale:
		return s.createSimple(ctx, sale)
	case *SimpleSale:
		return s.createSimple(ctx, *sale)
	default:
		return nil, ErrUnknownSaleInput
	}
}

// createItemized writes the header, the items, the stock decrements and the invoice file
// as one unit. A failure at any step, the file write included, rolls everything back.
func (s *billingService) createItemized(ctx context.Context, in ItemizedSale) (*SaleResult, error) {
	invoiceNo := s.numbers.Next()

	total := decimal.Zero
	lines := make([]invoice.Line, 0, len(in.Items))
	for _, it := range in.Items {
		total = total.Add(it.Qty.Mul(it.Price))
		lines = append(lines, invoice.Line{Name: it.ProductName, Qty: it.Qty, Price: it.Price})
	}
	netTotal := total.Sub(in.Discount)
	billFile := s.invoices.Path(invoiceNo)

	var written string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		header := &model.Sale{
			InvoiceNo:       invoiceNo,
			CustomerName:    in.CustomerName,
			CustomerContact: in.CustomerContact,
			BillDate:        in.Date,
			TotalAmt:        total.InexactFloat64(),
			Discount:        in.Discount.InexactFloat64(),
			NetTotal:        netTotal.InexactFloat64(),
			BillFile:        &billFile,
		}
		if err := s.saleRepo.CreateHeader(tx, header); err != nil {
			return fmt.Errorf("insert sale header: %w", err)
		}

		for _, it := range in.Items {
			item := &model.SaleItem{
				InvoiceNo:   invoiceNo,
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Qty:         it.Qty.InexactFloat64(),
				Price:       it.Price.InexactFloat64(),
				LineTotal:   it.Qty.Mul(it.Price).InexactFloat64(),
			}
			if err := s.saleRepo.CreateItem(tx, item); err != nil {
				return fmt.Errorf("insert sale item %q: %w", it.ProductName, err)
			}
			if it.ProductID != nil {
				if err := s.productRepo.DecrementStock(tx, *it.ProductID, stockUnits(it.Qty)); err != nil {
					return fmt.Errorf("decrement stock of product %d: %w", *it.ProductID, err)
				}
			}
		}

		doc := invoice.Document{
			InvoiceNo: invoiceNo,
			Customer:  in.CustomerName,
			Contact:   in.CustomerContact,
			Date:      in.Date,
			Lines:     lines,
			Total:     total,
			Discount:  in.Discount,
			NetTotal:  netTotal,
		}
		path, err := s.invoices.Write(invoiceNo, invoice.Render(doc))
		if err != nil {
			return err
		}
		written = path
		return nil
	})
	if err != nil {
		// The file may exist when only the commit failed.
		if written != "" {
			if rmErr := s.invoices.Remove(written); rmErr != nil {
				log.Error().Err(rmErr).Str("invoice_no", invoiceNo).Msg("orphan invoice file left behind")
			}
		}
		return nil, err
	}

	s.publishSale(invoiceNo, netTotal, touchedFromLines(in.Items))
	return &SaleResult{
		InvoiceNo: invoiceNo,
		Total:     total.InexactFloat64(),
		NetTotal:  netTotal.InexactFloat64(),
	}, nil
}

// createSimple records a flat amount. The cart decrements share the header's transaction.
func (s *billingService) createSimple(ctx context.Context, in SimpleSale) (*SaleResult, error) {
	invoiceNo := s.numbers.Next()
	amount := in.Amount.InexactFloat64()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		header := &model.Sale{
			InvoiceNo:    invoiceNo,
			CustomerName: in.CustomerName,
			BillDate:     in.Date,
			TotalAmt:     amount,
			Discount:     0,
			NetTotal:     amount,
		}
		if err := s.saleRepo.CreateHeader(tx, header); err != nil {
			return fmt.Errorf("insert sale header: %w", err)
		}
		for _, item := range in.CartItems {
			if err := s.productRepo.DecrementStock(tx, item.PID, stockUnits(item.Qty)); err != nil {
				return fmt.Errorf("decrement stock of product %d: %w", item.PID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	touched := make([]uint, 0, len(in.CartItems))
	for _, item := range in.CartItems {
		touched = append(touched, item.PID)
	}
	s.publishSale(invoiceNo, in.Amount, touched)
	return &SaleResult{InvoiceNo: invoiceNo, Total: amount, NetTotal: amount}, nil
}

func (s *billingService) GetSale(ctx context.Context, invoiceNo string) (*model.SaleDetail, error) {
	header, err := s.saleRepo.FindByInvoice(ctx, invoiceNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	items, err := s.saleRepo.FindItems(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	return &model.SaleDetail{Header: *header, Items: items}, nil
}

func (s *billingService) UpdateBill(ctx context.Context, sid uint, in BillUpdate) (int64, error) {
	return s.saleRepo.UpdateSimple(ctx, sid, in.CustomerName, in.Amount.InexactFloat64(), in.Date)
}

// DeleteSale removes the items, the header and the invoice file together. When the
// file cannot be removed the rows stay.
func (s *billingService) DeleteSale(ctx context.Context, sid uint) error {
	sale, err := s.saleRepo.FindByID(ctx, sid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBillNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.saleRepo.DeleteItems(tx, sale.InvoiceNo); err != nil {
			return fmt.Errorf("delete sale items: %w", err)
		}
		n, err := s.saleRepo.DeleteHeader(tx, sid)
		if err != nil {
			return fmt.Errorf("delete sale header: %w", err)
		}
		if n == 0 {
			return ErrBillNotFound
		}
		if sale.BillFile != nil {
			return s.invoices.Remove(*sale.BillFile)
		}
		return nil
	})
}

func (s *billingService) ListBills(ctx context.Context) ([]model.BillView, error) {
	return s.saleRepo.ListBills(ctx)
}

func (s *billingService) ListSales(ctx context.Context) ([]model.SaleView, error) {
	return s.saleRepo.ListSales(ctx)
}

func (s *billingService) publishSale(invoiceNo string, netTotal decimal.Decimal, products []uint) {
	s.hub.Publish(ws.Event{
		Type:   "stock_update",
		Action: "sale_created",
		Data: map[string]interface{}{
			"invoice_no": invoiceNo,
			"net_total":  netTotal.InexactFloat64(),
			"products":   products,
		},
		Message: fmt.Sprintf("sale %s recorded", invoiceNo),
	})
}

func touchedFromLines(items []SaleLine) []uint {
	touched := []uint{}
	for _, it := range items {
		if it.ProductID != nil {
			touched = append(touched, *it.ProductID)
		}
	}
	return touched
}
