package repository

import (
	"context"

	"go-ims/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	CreateHeader(tx *gorm.DB, sale *model.Sale) error
	CreateItem(tx *gorm.DB, item *model.SaleItem) error
	DeleteItems(tx *gorm.DB, invoiceNo string) error
	DeleteHeader(tx *gorm.DB, sid uint) (int64, error)

	FindByID(ctx context.Context, sid uint) (*model.Sale, error)
	FindByInvoice(ctx context.Context, invoiceNo string) (*model.Sale, error)
	FindItems(ctx context.Context, invoiceNo string) ([]model.SaleItem, error)
	UpdateSimple(ctx context.Context, sid uint, customerName string, amount float64, date string) (int64, error)
	ListBills(ctx context.Context) ([]model.BillView, error)
	ListSales(ctx context.Context) ([]model.SaleView, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) CreateHeader(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) CreateItem(tx *gorm.DB, item *model.SaleItem) error {
	return tx.Create(item).Error
}

func (r *saleRepo) DeleteItems(tx *gorm.DB, invoiceNo string) error {
	return tx.Where("invoice_no = ?", invoiceNo).Delete(&model.SaleItem{}).Error
}

func (r *saleRepo) DeleteHeader(tx *gorm.DB, sid uint) (int64, error) {
	res := tx.Where("sid = ?", sid).Delete(&model.Sale{})
	return res.RowsAffected, res.Error
}

func (r *saleRepo) FindByID(ctx context.Context, sid uint) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.WithContext(ctx).First(&sale, "sid = ?", sid).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) FindByInvoice(ctx context.Context, invoiceNo string) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.WithContext(ctx).First(&sale, "invoice_no = ?", invoiceNo).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) FindItems(ctx context.Context, invoiceNo string) ([]model.SaleItem, error) {
	items := []model.SaleItem{}
	err := r.db.WithContext(ctx).Where("invoice_no = ?", invoiceNo).Order("id ASC").Find(&items).Error
	return items, err
}

// UpdateSimple rewrites a bill as a flat amount. Discount is reset so that
// net_total = total_amt - discount keeps holding.
func (r *saleRepo) UpdateSimple(ctx context.Context, sid uint, customerName string, amount float64, date string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("sid = ?", sid).
		Updates(map[string]interface{}{
			"customer_name": customerName,
			"total_amt":     amount,
			"discount":      0,
			"net_total":     amount,
			"bill_date":     date,
		})
	return res.RowsAffected, res.Error
}

func (r *saleRepo) ListBills(ctx context.Context) ([]model.BillView, error) {
	var rows []model.SaleView
	if err := r.listHeaders(ctx, &rows); err != nil {
		return nil, err
	}
	bills := make([]model.BillView, 0, len(rows))
	for _, row := range rows {
		bills = append(bills, model.BillView{
			ID:           row.SID,
			CustomerName: row.CustomerName,
			Amount:       row.NetTotal,
			Date:         row.BillDate,
			Invoice:      row.InvoiceNo,
		})
	}
	return bills, nil
}

func (r *saleRepo) ListSales(ctx context.Context) ([]model.SaleView, error) {
	rows := []model.SaleView{}
	if err := r.listHeaders(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// listHeaders reads the projection shared by both list views, newest first.
func (r *saleRepo) listHeaders(ctx context.Context, dest *[]model.SaleView) error {
	return r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("sid, invoice_no, customer_name, bill_date, net_total").
		Order("sid DESC").
		Scan(dest).Error
}
