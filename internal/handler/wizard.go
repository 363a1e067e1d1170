package handler

import (
	"errors"
	"log/slog"
	"mime/multipart"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/plot"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/service"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type WizardHandler struct {
	wizardSvc *service.WizardService
	images    *storage.ImageStore
}

func NewWizardHandler(wizardSvc *service.WizardService, images *storage.ImageStore) *WizardHandler {
	return &WizardHandler{wizardSvc: wizardSvc, images: images}
}

// Start opens a new wizard session, optionally editing an existing listing.
// POST /api/v1/my/wizard?edit_id=xyz
func (h *WizardHandler) Start(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	w, err := h.wizardSvc.Start(c.Context(), userID, c.Query("edit_id"))
	if err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "listing not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to start wizard"})
	}

	return c.Status(201).JSON(wizardView(w))
}

// Get returns the current wizard state.
// GET /api/v1/my/wizard
func (h *WizardHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	w, err := h.wizardSvc.Get(userID)
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(wizardView(w))
}

// Change applies one field edit to the draft.
// PATCH /api/v1/my/wizard
func (h *WizardHandler) Change(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var fc plot.FieldChange
	if err := c.BodyParser(&fc); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if fc.Field == "" {
		return c.Status(400).JSON(fiber.Map{"error": "field is required"})
	}

	w, err := h.wizardSvc.Change(userID, fc)
	if err != nil {
		if errors.Is(err, service.ErrNoWizard) {
			return c.Status(404).JSON(fiber.Map{"error": "no wizard in progress"})
		}
		// Unknown field or bad value type.
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(wizardView(w))
}

// Next validates the current step and advances on success. A blocked step
// comes back 422 with the per-field messages.
// POST /api/v1/my/wizard/next
func (h *WizardHandler) Next(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	w, advanced, err := h.wizardSvc.Next(userID)
	if err != nil {
		return wizardError(c, err)
	}
	if !advanced {
		return c.Status(422).JSON(wizardView(w))
	}
	return c.JSON(wizardView(w))
}

// POST /api/v1/my/wizard/previous
func (h *WizardHandler) Previous(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	w, err := h.wizardSvc.Previous(userID)
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(wizardView(w))
}

// POST /api/v1/my/wizard/restart
func (h *WizardHandler) Restart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	w, err := h.wizardSvc.Restart(userID)
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(wizardView(w))
}

// SetSlot uploads one photo into a mandatory slot (0..3).
// PUT /api/v1/my/wizard/images/:slot (multipart field "image")
func (h *WizardHandler) SetSlot(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	slot, err := c.ParamsInt("slot")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid slot"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "image file is required"})
	}

	url, err := h.uploadFile(c, userID, fileHeader)
	if err != nil {
		slog.Error("image upload failed", "user", userID, "err", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to upload image"})
	}

	w, err := h.wizardSvc.SetSlot(userID, slot, url)
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(wizardView(w))
}

// AddImages uploads additional photos past the four mandatory slots.
// POST /api/v1/my/wizard/images (multipart field "images", repeatable)
func (h *WizardHandler) AddImages(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "multipart form required"})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "at least one image is required"})
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := h.uploadFile(c, userID, fh)
		if err != nil {
			slog.Error("image upload failed", "user", userID, "err", err)
			return c.Status(500).JSON(fiber.Map{"error": "failed to upload image"})
		}
		urls = append(urls, url)
	}

	w, err := h.wizardSvc.AddImages(userID, urls)
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(wizardView(w))
}

// RemoveImage drops the slot at the given index and compacts the list.
// DELETE /api/v1/my/wizard/images/:index
func (h *WizardHandler) RemoveImage(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid index"})
	}

	w, err := h.wizardSvc.RemoveImage(userID, index)
	if err != nil {
		return wizardError(c, err)
	}
	return c.JSON(wizardView(w))
}

// Submit persists the wizard as a draft or published listing.
// POST /api/v1/my/wizard/submit {"lifecycle": "draft"|"published"}
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req struct {
		Lifecycle string `json:"lifecycle"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	listing, w, err := h.wizardSvc.Submit(c.Context(), userID, req.Lifecycle)
	if err != nil {
		if errors.Is(err, service.ErrWizardBlocked) {
			return c.Status(422).JSON(wizardView(w))
		}
		return wizardError(c, err)
	}

	return c.Status(201).JSON(listing)
}

// Abandon drops the session without saving.
// DELETE /api/v1/my/wizard
func (h *WizardHandler) Abandon(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	h.wizardSvc.Abandon(userID)
	return c.JSON(fiber.Map{"ok": true})
}

func (h *WizardHandler) uploadFile(c *fiber.Ctx, userID string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return h.images.Upload(c.Context(), userID, fh.Filename, f, fh.Size, contentType)
}

func wizardError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNoWizard):
		return c.Status(404).JSON(fiber.Map{"error": "no wizard in progress"})
	case errors.Is(err, service.ErrBadLifecycle):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, plot.ErrTooManyImages):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, plot.ErrBadSlot):
		return c.Status(400).JSON(fiber.Map{"error": "invalid image slot"})
	case errors.Is(err, service.ErrListingNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "listing not found"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}
}

func wizardView(w *plot.Wizard) fiber.Map {
	return fiber.Map{
		"step":          int(w.Step),
		"step_title":    w.Step.Title(),
		"step_subtitle": w.Step.Subtitle(),
		"draft":         w.Draft,
		"errors":        w.Errors,
		"images":        w.Images,
		"image_count":   w.ImageCount(),
		"edit_id":       w.EditID,
	}
}
