package model

import "encoding/json"

// WSEvent is the envelope for every websocket push.
type WSEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// WSSubscribe switches the client's active conversation subscription.
type WSSubscribe struct {
	ConversationID string `json:"conversation_id"`
}
