package handler

import (
	"github.com/gofiber/fiber/v2"
)

// paramID reads a positive numeric path parameter.
func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func invalidID(c *fiber.Ctx, name string) error {
	return c.Status(400).JSON(fiber.Map{"error": "Invalid " + name})
}

func invalidJSON(c *fiber.Ctx) error {
	return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
}

// storeError reports a failed query with its message.
func storeError(c *fiber.Ctx, err error) error {
	return c.Status(500).JSON(fiber.Map{"error": err.Error()})
}

// created answers a create with the new row id under both "id" and the table's own key.
func created(c *fiber.Ctx, key string, id uint) error {
	return c.Status(201).JSON(fiber.Map{"id": id, key: id})
}

func changes(c *fiber.Ctx, n int64) error {
	return c.JSON(fiber.Map{"changes": n})
}
