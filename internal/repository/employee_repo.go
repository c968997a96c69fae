package repository

import (
	"context"

	"go-ims/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	FindAll(ctx context.Context, q string) ([]model.Employee, error)
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, id uint, employee *model.Employee) (int64, error)
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

var employeeColumns = []string{"name", "email", "gender", "contact", "dob", "doj", "utype", "address", "salary"}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

// FindAll matches q as a substring of name, email or contact. An empty q lists everything.
func (r *employeeRepo) FindAll(ctx context.Context, q string) ([]model.Employee, error) {
	employees := []model.Employee{}
	query := r.db.WithContext(ctx)
	if q != "" {
		pattern := like(q)
		query = query.Where("name LIKE ? OR email LIKE ? OR contact LIKE ?", pattern, pattern, pattern)
	}
	err := query.Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).First(&employee, "eid = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// Update overwrites every column. The credential is only rewritten when a new hash is set.
func (r *employeeRepo) Update(ctx context.Context, id uint, employee *model.Employee) (int64, error) {
	columns := employeeColumns
	if employee.Pass != "" {
		columns = append(append([]string{}, employeeColumns...), "pass")
	}
	return updateColumns(ctx, r.db, "eid", id, columns, employee)
}

func (r *employeeRepo) UpdatePassword(ctx context.Context, id uint, hashedPassword string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Employee{}).Where("eid = ?", id).Update("pass", hashedPassword)
	return res.RowsAffected, res.Error
}

func (r *employeeRepo) Delete(ctx context.Context, id uint) (int64, error) {
	return deleteByKey[model.Employee](ctx, r.db, "eid", id)
}
