package service

import (
	"context"
	"errors"
	"fmt"

	"go-ims/internal/model"
	"go-ims/internal/repository"
	"go-ims/pkg/coerce"
)

var ErrEmptyPassword = errors.New("password must not be empty")

type EmployeeService interface {
	ListEmployees(ctx context.Context, q string) ([]model.Employee, error)
	CreateEmployee(ctx context.Context, req *EmployeeRequest) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, eid uint, req *EmployeeRequest) (int64, error)
	DeleteEmployee(ctx context.Context, eid uint) (int64, error)
	ResetPassword(ctx context.Context, eid uint, password string) (int64, error)
}

// EmployeeRequest is the body of an employee create or update.
type EmployeeRequest struct {
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Gender  string        `json:"gender"`
	Contact string        `json:"contact"`
	DOB     string        `json:"dob"`
	DOJ     string        `json:"doj"`
	Pass    string        `json:"pass"`
	UType   string        `json:"utype"`
	Address string        `json:"address"`
	Salary  coerce.Number `json:"salary"`
}

func (r *EmployeeRequest) toModel() *model.Employee {
	return &model.Employee{
		Name:    r.Name,
		Email:   r.Email,
		Gender:  r.Gender,
		Contact: r.Contact,
		DOB:     r.DOB,
		DOJ:     r.DOJ,
		UType:   r.UType,
		Address: r.Address,
		Salary:  r.Salary.InexactFloat64(),
	}
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) ListEmployees(ctx context.Context, q string) ([]model.Employee, error) {
	return s.employeeRepo.FindAll(ctx, q)
}

func (s *employeeService) CreateEmployee(ctx context.Context, req *EmployeeRequest) (*model.Employee, error) {
	employee := req.toModel()
	if req.Pass != "" {
		if err := employee.SetPassword(req.Pass); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// UpdateEmployee overwrites every column. The stored hash is kept when no new password is sent.
func (s *employeeService) UpdateEmployee(ctx context.Context, eid uint, req *EmployeeRequest) (int64, error) {
	employee := req.toModel()
	if req.Pass != "" {
		if err := employee.SetPassword(req.Pass); err != nil {
			return 0, fmt.Errorf("hash password: %w", err)
		}
	}
	return s.employeeRepo.Update(ctx, eid, employee)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, eid uint) (int64, error) {
	return s.employeeRepo.Delete(ctx, eid)
}

func (s *employeeService) ResetPassword(ctx context.Context, eid uint, password string) (int64, error) {
	if password == "" {
		return 0, ErrEmptyPassword
	}
	var e model.Employee
	if err := e.SetPassword(password); err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	return s.employeeRepo.UpdatePassword(ctx, eid, e.Pass)
}
