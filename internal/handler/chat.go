package handler

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/repository"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/service"

	"github.com/gofiber/fiber/v2"
)

const maxMessageLength = 2000

type ChatHandler struct {
	chatRepo   *repository.ChatRepository
	listingSvc *service.ListingService
	hub        *service.WSHub
}

func NewChatHandler(chatRepo *repository.ChatRepository, listingSvc *service.ListingService, hub *service.WSHub) *ChatHandler {
	return &ChatHandler{chatRepo: chatRepo, listingSvc: listingSvc, hub: hub}
}

// Start opens (or reuses) a conversation with the listing's seller.
// POST /api/v1/my/conversations {"listing_id": "..."}
func (h *ChatHandler) Start(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req model.StartConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.ListingID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "listing_id is required"})
	}

	listing, err := h.listingSvc.Get(c.Context(), req.ListingID)
	if err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "listing not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to load listing"})
	}

	if listing.UserID == userID {
		return c.Status(400).JSON(fiber.Map{"error": "cannot start a conversation about your own listing"})
	}

	conv, err := h.chatRepo.GetOrCreateConversation(c.Context(), listing.ID, userID, listing.UserID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to start conversation"})
	}

	return c.Status(201).JSON(conv)
}

// List returns every conversation the user takes part in, newest activity first.
// GET /api/v1/my/conversations
func (h *ChatHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	convs, err := h.chatRepo.ListConversations(c.Context(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load conversations"})
	}
	if convs == nil {
		convs = []model.Conversation{}
	}
	return c.JSON(fiber.Map{"conversations": convs})
}

// Messages returns the conversation history and marks the counterparty's
// messages read.
// GET /api/v1/my/conversations/:id/messages
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	conv, ok := h.loadParticipant(c, userID)
	if !ok {
		return nil
	}

	msgs, err := h.chatRepo.ListMessages(c.Context(), conv.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load messages"})
	}
	if msgs == nil {
		msgs = []model.Message{}
	}

	_ = h.chatRepo.MarkRead(c.Context(), conv.ID, userID)

	return c.JSON(fiber.Map{"messages": msgs})
}

// Send posts a message and pushes it to connected clients.
// POST /api/v1/my/conversations/:id/messages {"text": "..."}
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	conv, ok := h.loadParticipant(c, userID)
	if !ok {
		return nil
	}

	var req model.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return c.Status(400).JSON(fiber.Map{"error": "text is required"})
	}
	if len(req.Text) > maxMessageLength {
		return c.Status(400).JSON(fiber.Map{"error": "message too long"})
	}

	msg, err := h.chatRepo.InsertMessage(c.Context(), conv.ID, userID, req.Text)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to send message"})
	}

	if data, err := json.Marshal(msg); err == nil {
		event := &model.WSEvent{Type: "chat:message", Data: data}
		h.hub.BroadcastToConversation(conv.ID, event)

		counterparty := conv.BuyerID
		if counterparty == userID {
			counterparty = conv.SellerID
		}
		h.hub.NotifyUser(counterparty, event)
	}

	return c.Status(201).JSON(msg)
}

// loadParticipant resolves :id and ensures the caller belongs to the
// conversation. On failure the response is already written and ok is false.
func (h *ChatHandler) loadParticipant(c *fiber.Ctx, userID string) (*model.Conversation, bool) {
	conv, err := h.chatRepo.GetConversation(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = c.Status(404).JSON(fiber.Map{"error": "conversation not found"})
		} else {
			_ = c.Status(500).JSON(fiber.Map{"error": "failed to load conversation"})
		}
		return nil, false
	}
	if conv.BuyerID != userID && conv.SellerID != userID {
		_ = c.Status(403).JSON(fiber.Map{"error": "not a participant"})
		return nil, false
	}
	return conv, true
}
