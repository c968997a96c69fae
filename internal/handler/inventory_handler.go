package handler

import (
	"go-ims/internal/model"
	"go-ims/internal/repository"
	"go-ims/internal/service"
	"go-ims/pkg/coerce"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// productRequest takes price and qty as numbers or numeric strings.
type productRequest struct {
	Category string        `json:"category"`
	Supplier string        `json:"supplier"`
	Name     string        `json:"name"`
	Price    coerce.Number `json:"price"`
	Qty      coerce.Number `json:"qty"`
	Status   string        `json:"status"`
}

func (r productRequest) toModel() *model.Product {
	return &model.Product{
		Category: r.Category,
		Supplier: r.Supplier,
		Name:     r.Name,
		Price:    r.Price.InexactFloat64(),
		Qty:      r.Qty.IntPart(),
		Status:   r.Status,
	}
}

func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetProducts(c.UserContext(), repository.ProductFilter{
		Category: c.Query("category"),
		Supplier: c.Query("supplier"),
		Name:     c.Query("name"),
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(products)
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	product := req.toModel()
	if err := h.service.CreateProduct(c.UserContext(), product); err != nil {
		return storeError(c, err)
	}
	return created(c, "pid", product.PID)
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	pid, ok := paramID(c, "pid")
	if !ok {
		return invalidID(c, "product ID")
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	n, err := h.service.UpdateProduct(c.UserContext(), pid, req.toModel())
	if err != nil {
		return storeError(c, err)
	}
	return changes(c, n)
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	pid, ok := paramID(c, "pid")
	if !ok {
		return invalidID(c, "product ID")
	}

	n, err := h.service.DeleteProduct(c.UserContext(), pid)
	if err != nil {
		return storeError(c, err)
	}
	return changes(c, n)
}
