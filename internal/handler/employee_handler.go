package handler

import (
	"go-ims/internal/service"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// GetEmployees lists employees, filtered by ?q on name, email or contact
// GET /api/employees
func (h *EmployeeHandler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.employeeService.ListEmployees(c.UserContext(), c.Query("q"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(employees)
}

// CreateEmployee handles employee creation
// POST /api/employees
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var req service.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	employee, err := h.employeeService.CreateEmployee(c.UserContext(), &req)
	if err != nil {
		return storeError(c, err)
	}
	return created(c, "eid", employee.EID)
}

// UpdateEmployee overwrites an employee. Without pass the stored password hash is kept.
// PUT /api/employees/:eid
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	eid, ok := paramID(c, "eid")
	if !ok {
		return invalidID(c, "employee ID")
	}

	var req service.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	n, err := h.employeeService.UpdateEmployee(c.UserContext(), eid, &req)
	if err != nil {
		return storeError(c, err)
	}
	return changes(c, n)
}

// DeleteEmployee handles employee deletion
// DELETE /api/employees/:eid
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	eid, ok := paramID(c, "eid")
	if !ok {
		return invalidID(c, "employee ID")
	}

	n, err := h.employeeService.DeleteEmployee(c.UserContext(), eid)
	if err != nil {
		return storeError(c, err)
	}
	return changes(c, n)
}
