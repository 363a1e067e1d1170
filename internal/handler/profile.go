package handler

import (
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler serves the signed-in user's own account: viewing it,
// editing name and phone, and changing the password.
type ProfileHandler struct {
	authSvc *service.AuthService
}

func NewProfileHandler(authSvc *service.AuthService) *ProfileHandler {
	return &ProfileHandler{authSvc: authSvc}
}

func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	profile, err := h.authSvc.Profile(c.Context(), userID)
	if err != nil {
		return authError(c, err)
	}

	return c.JSON(profile)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req model.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.FullName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "full_name is required"})
	}

	profile, err := h.authSvc.UpdateProfile(c.Context(), userID, req.FullName, req.Phone)
	if err != nil {
		return authError(c, err)
	}

	return c.JSON(profile)
}

func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req model.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		return c.Status(400).JSON(fiber.Map{"error": "current_password and new_password are required"})
	}

	if err := h.authSvc.ChangePassword(c.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return authError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
