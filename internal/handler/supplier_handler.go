package handler

import (
	"strconv"

	"go-ims/internal/model"
	"go-ims/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierHandler(supplierRepo repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{supplierRepo: supplierRepo}
}

type supplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Desc    string `json:"desc"`
}

func (r supplierRequest) toModel() *model.Supplier {
	return &model.Supplier{Name: r.Name, Contact: r.Contact, Desc: r.Desc}
}

// GetSuppliers lists suppliers, optionally only the one matching ?invoice
// GET /api/suppliers
func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	var invoice *uint
	if raw := c.Query("invoice"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return invalidID(c, "invoice")
		}
		id := uint(v)
		invoice = &id
	}

	suppliers, err := h.supplierRepo.FindAll(c.UserContext(), invoice)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(suppliers)
}

// POST /api/suppliers
func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var req supplierRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	supplier := req.toModel()
	if err := h.supplierRepo.Create(c.UserContext(), supplier); err != nil {
		return storeError(c, err)
	}
	return created(c, "invoice", supplier.Invoice)
}

// PUT /api/suppliers/:invoice
func (h *SupplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	invoice, ok := paramID(c, "invoice")
	if !ok {
		return invalidID(c, "invoice")
	}

	var req supplierRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	n, err := h.supplierRepo.Update(c.UserContext(), invoice, req.toModel())
	if err != nil {
		return storeError(c, err)
	}
	return changes(c, n)
}

// DELETE /api/suppliers/:invoice
func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	invoice, ok := paramID(c, "invoice")
	if !ok {
		return invalidID(c, "invoice")
	}

	n, err := h.supplierRepo.Delete(c.UserContext(), invoice)
	if err != nil {
		return storeError(c, err)
	}
	return changes(c, n)
}
