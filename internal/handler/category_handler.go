package handler

import (
	"go-ims/internal/model"
	"go-ims/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryHandler(categoryRepo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// GetCategories returns all categories by name
// GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryRepo.FindAll(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	category := &model.Category{Name: req.Name}
	if err := h.categoryRepo.Create(c.UserContext(), category); err != nil {
		return storeError(c, err)
	}
	return created(c, "cid", category.CID)
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	cid, ok := paramID(c, "cid")
	if !ok {
		return invalidID(c, "category ID")
	}

	n, err := h.categoryRepo.Delete(c.UserContext(), cid)
	if err != nil {
		return storeError(c, err)
	}
	return changes(c, n)
}
