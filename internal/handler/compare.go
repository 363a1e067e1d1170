package handler

import (
	"errors"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CompareHandler struct {
	compareSvc *service.CompareService
}

func NewCompareHandler(compareSvc *service.CompareService) *CompareHandler {
	return &CompareHandler{compareSvc: compareSvc}
}

// Get returns the user's compare ids in insertion order.
// GET /api/v1/my/compare
func (h *CompareHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	ids, err := h.compareSvc.Get(c.Context(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load compare set"})
	}
	return c.JSON(fiber.Map{"ids": ids})
}

// Add puts a listing into the compare set. A full set rejects with 409 and
// the message the compare bar shows.
// POST /api/v1/my/compare/:id
func (h *CompareHandler) Add(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	ids, err := h.compareSvc.Add(c.Context(), userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrCompareFull) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error(), "ids": ids})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to update compare set"})
	}
	return c.JSON(fiber.Map{"ids": ids})
}

// Remove drops one listing from the set.
// DELETE /api/v1/my/compare/:id
func (h *CompareHandler) Remove(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	ids, err := h.compareSvc.Remove(c.Context(), userID, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to update compare set"})
	}
	return c.JSON(fiber.Map{"ids": ids})
}

// Clear empties the set.
// DELETE /api/v1/my/compare
func (h *CompareHandler) Clear(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	if err := h.compareSvc.Clear(c.Context(), userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to clear compare set"})
	}
	return c.JSON(fiber.Map{"ids": []string{}})
}
