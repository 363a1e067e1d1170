package model

import "time"

// Conversation links a buyer and a seller around one listing.
type Conversation struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	BuyerID   string    `json:"buyer_id"`
	SellerID  string    `json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`

	// Denormalized extras for the conversation list view.
	ListingTitle   string   `json:"listing_title,omitempty"`
	OtherPartyName string   `json:"other_party_name,omitempty"`
	LastMessage    *Message `json:"last_message,omitempty"`
	UnreadCount    int      `json:"unread_count"`
}

// Message is a single chat message row.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Text           string    `json:"text"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// StartConversationRequest opens (or reuses) a conversation about a listing.
type StartConversationRequest struct {
	ListingID string `json:"listing_id"`
}

// SendMessageRequest is the payload for posting a message.
type SendMessageRequest struct {
	Text string `json:"text"`
}
