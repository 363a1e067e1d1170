package handler

import (
	"errors"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type SavedHandler struct {
	savedRepo *repository.SavedRepository
}

func NewSavedHandler(savedRepo *repository.SavedRepository) *SavedHandler {
	return &SavedHandler{savedRepo: savedRepo}
}

// List returns the user's bookmarks, newest first.
// GET /api/v1/my/saved
func (h *SavedHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	saved, err := h.savedRepo.ListByUser(c.Context(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load saved plots"})
	}
	if saved == nil {
		saved = []model.SavedPlot{}
	}
	return c.JSON(fiber.Map{"saved": saved})
}

// Save bookmarks a listing; saving twice is a no-op.
// POST /api/v1/my/saved/:plotID
func (h *SavedHandler) Save(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	if err := h.savedRepo.Save(c.Context(), userID, c.Params("plotID")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save plot"})
	}
	return c.Status(201).JSON(fiber.Map{"ok": true})
}

// Unsave removes the bookmark for a listing.
// DELETE /api/v1/my/saved/:plotID
func (h *SavedHandler) Unsave(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	if err := h.savedRepo.Unsave(c.Context(), userID, c.Params("plotID")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "plot is not saved"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to unsave plot"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// UnsaveByID removes a bookmark by its own row id, as listed by List.
// DELETE /api/v1/my/saved/items/:id
func (h *SavedHandler) UnsaveByID(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	if err := h.savedRepo.UnsaveByID(c.Context(), c.Params("id"), userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "bookmark not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to unsave plot"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// IsSaved reports whether the listing is bookmarked.
// GET /api/v1/my/saved/:plotID
func (h *SavedHandler) IsSaved(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	saved, err := h.savedRepo.IsSaved(c.Context(), userID, c.Params("plotID"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to check saved state"})
	}
	return c.JSON(fiber.Map{"saved": saved})
}
