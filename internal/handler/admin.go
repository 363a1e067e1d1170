package handler

import (
	"encoding/json"
	"errors"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/plot"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/repository"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	listingRepo *repository.ListingRepository
	profileRepo *repository.ProfileRepository
	wsHub       *service.WSHub
}

func NewAdminHandler(listingRepo *repository.ListingRepository, profileRepo *repository.ProfileRepository, wsHub *service.WSHub) *AdminHandler {
	return &AdminHandler{listingRepo: listingRepo, profileRepo: profileRepo, wsHub: wsHub}
}

// Stats returns the moderation dashboard counters.
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	totalUsers, _ := h.profileRepo.CountTotal(c.Context())
	totalListings, _ := h.listingRepo.CountTotal(c.Context())
	activeListings, _ := h.listingRepo.CountByStatus(c.Context(), "active")
	draftListings, _ := h.listingRepo.CountByStatus(c.Context(), plot.StatusDraft)
	online := h.wsHub.OnlineCount()

	return c.JSON(fiber.Map{
		"users_total":     totalUsers,
		"users_online":    online,
		"listings_total":  totalListings,
		"listings_active": activeListings,
		"listings_draft":  draftListings,
	})
}

// Listings returns every listing regardless of status for review.
// GET /api/v1/admin/plots
func (h *AdminHandler) Listings(c *fiber.Ctx) error {
	listings, err := h.listingRepo.ListAll(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load listings"})
	}
	return c.JSON(fiber.Map{"plots": listings})
}

// Verify toggles the verified badge on a listing.
// PATCH /api/v1/admin/plots/:id/verify {"verified": true}
func (h *AdminHandler) Verify(c *fiber.Ctx) error {
	var req struct {
		Verified bool `json:"verified"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.listingRepo.SetVerified(c.Context(), c.Params("id"), req.Verified); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "listing not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to update listing"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// SetStatus overrides a listing's status, e.g. to pull one down.
// PATCH /api/v1/admin/plots/:id/status {"status": "sold"}
func (h *AdminHandler) SetStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	switch req.Status {
	case "active", "draft", "sold", "suspended":
	default:
		return c.Status(400).JSON(fiber.Map{"error": "status must be one of active, draft, sold, suspended"})
	}

	if err := h.listingRepo.SetStatus(c.Context(), c.Params("id"), req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "listing not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to update listing"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Delete removes a listing outright.
// DELETE /api/v1/admin/plots/:id
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	if err := h.listingRepo.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "listing not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete listing"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Announce pushes a site-wide notice to every connected client.
// POST /api/v1/admin/announce {"message": "..."}
func (h *AdminHandler) Announce(c *fiber.Ctx) error {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Message == "" {
		return c.Status(400).JSON(fiber.Map{"error": "message is required"})
	}

	data, _ := json.Marshal(fiber.Map{"message": req.Message})
	h.wsHub.Broadcast(&model.WSEvent{Type: "server:announce", Data: data})

	return c.JSON(fiber.Map{"ok": true, "online": h.wsHub.OnlineCount()})
}

// Ban blocks or unblocks an account. Banned users cannot log in or refresh.
// PATCH /api/v1/admin/users/:id/ban {"banned": true}
func (h *AdminHandler) Ban(c *fiber.Ctx) error {
	var req struct {
		Banned bool `json:"banned"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.profileRepo.SetBanned(c.Context(), c.Params("id"), req.Banned); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "user not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to update user"})
	}
	return c.JSON(fiber.Map{"ok": true})
}
