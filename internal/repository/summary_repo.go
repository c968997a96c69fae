package repository

import (
	"context"

	"gorm.io/gorm"
)

type SummaryRepository interface {
	// Count returns the number of rows in the table of the given model.
	Count(ctx context.Context, m interface{}) (int64, error)
}

type summaryRepo struct {
	db *gorm.DB
}

func NewSummaryRepo(db *gorm.DB) SummaryRepository {
	return &summaryRepo{db}
}

func (r *summaryRepo) Count(ctx context.Context, m interface{}) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(m).Count(&n).Error
	return n, err
}
