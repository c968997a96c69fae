package repository

import (
	"context"

	"gorm.io/gorm"
)

// updateColumns overwrites the listed columns of the row whose key column equals id and
// returns how many rows changed. A missing row yields 0, not an error.
func updateColumns[T any](ctx context.Context, db *gorm.DB, keyColumn string, id uint, columns []string, values *T) (int64, error) {
	var zero T
	res := db.WithContext(ctx).
		Model(&zero).
		Where(keyColumn+" = ?", id).
		Select(columns).
		Updates(values)
	return res.RowsAffected, res.Error
}

// deleteByKey hard deletes the row whose key column equals id.
func deleteByKey[T any](ctx context.Context, db *gorm.DB, keyColumn string, id uint) (int64, error) {
	var zero T
	res := db.WithContext(ctx).Where(keyColumn+" = ?", id).Delete(&zero)
	return res.RowsAffected, res.Error
}

func like(s string) string {
	return "%" + s + "%"
}
