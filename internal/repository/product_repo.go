package repository

import (
	"context"

	"go-ims/internal/model"

	"gorm.io/gorm"
)

// ProductFilter holds the optional substring filters of the product list.
type ProductFilter struct {
	Category string
	Supplier string
	Name     string
}

type ProductRepository interface {
	FindAll(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, id uint, product *model.Product) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	DecrementStock(tx *gorm.DB, id uint, qty int64) error
}

var productColumns = []string{"category", "supplier", "name", "price", "qty", "status"}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindAll(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	products := []model.Product{}
	query := r.db.WithContext(ctx)
	if filter.Category != "" {
		query = query.Where("category LIKE ?", like(filter.Category))
	}
	if filter.Supplier != "" {
		query = query.Where("supplier LIKE ?", like(filter.Supplier))
	}
	if filter.Name != "" {
		query = query.Where("name LIKE ?", like(filter.Name))
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, "pid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) Update(ctx context.Context, id uint, product *model.Product) (int64, error) {
	return updateColumns(ctx, r.db, "pid", id, productColumns, product)
}

func (r *productRepo) Delete(ctx context.Context, id uint) (int64, error) {
	return deleteByKey[model.Product](ctx, r.db, "pid", id)
}

// DecrementStock menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi.
// The subtraction happens in SQL so concurrent sales never overwrite each other.
// There is no floor and no existence check: an unknown pid is a no-op.
func (r *productRepo) DecrementStock(tx *gorm.DB, id uint, qty int64) error {
	return tx.Model(&model.Product{}).
		Where("pid = ?", id).
		UpdateColumn("qty", gorm.Expr("qty - ?", qty)).Error
}
