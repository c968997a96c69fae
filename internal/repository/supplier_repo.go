package repository

import (
	"context"

	"go-ims/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	FindAll(ctx context.Context, invoice *uint) ([]model.Supplier, error)
	Create(ctx context.Context, supplier *model.Supplier) error
	Update(ctx context.Context, invoice uint, supplier *model.Supplier) (int64, error)
	Delete(ctx context.Context, invoice uint) (int64, error)
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

// FindAll filters on the exact identifier when one is given.
func (r *supplierRepo) FindAll(ctx context.Context, invoice *uint) ([]model.Supplier, error) {
	suppliers := []model.Supplier{}
	query := r.db.WithContext(ctx)
	if invoice != nil {
		query = query.Where("invoice = ?", *invoice)
	}
	err := query.Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) Create(ctx context.Context, supplier *model.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *supplierRepo) Update(ctx context.Context, invoice uint, supplier *model.Supplier) (int64, error) {
	return updateColumns(ctx, r.db, "invoice", invoice, []string{"name", "contact", "desc"}, supplier)
}

func (r *supplierRepo) Delete(ctx context.Context, invoice uint) (int64, error) {
	return deleteByKey[model.Supplier](ctx, r.db, "invoice", invoice)
}
