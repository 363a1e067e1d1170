package repository

import (
	"context"
	"errors"
	"time"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatRepository struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

// GetOrCreateConversation returns the conversation between buyer and seller
// about a listing, creating it on first contact.
func (r *ChatRepository) GetOrCreateConversation(ctx context.Context, listingID, buyerID, sellerID string) (*model.Conversation, error) {
	conv := &model.Conversation{ListingID: listingID, BuyerID: buyerID, SellerID: sellerID}
	err := r.pool.QueryRow(ctx, `
		SELECT id, created_at FROM conversations
		WHERE listing_id = $1 AND buyer_id = $2
	`, listingID, buyerID).Scan(&conv.ID, &conv.CreatedAt)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO conversations (listing_id, buyer_id, seller_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, listingID, buyerID, sellerID).Scan(&conv.ID, &conv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (r *ChatRepository) GetConversation(ctx context.Context, id string) (*model.Conversation, error) {
	conv := &model.Conversation{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, listing_id, buyer_id, seller_id, created_at
		FROM conversations WHERE id = $1
	`, id).Scan(&conv.ID, &conv.ListingID, &conv.BuyerID, &conv.SellerID, &conv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return conv, nil
}

// ListConversations returns every conversation the user takes part in,
// newest activity first, with listing title, counterparty name, last message
// and unread count denormalized for the list view.
func (r *ChatRepository) ListConversations(ctx context.Context, userID string) ([]model.Conversation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.listing_id, c.buyer_id, c.seller_id, c.created_at,
		       p.title,
		       CASE WHEN c.buyer_id = $1 THEN seller.full_name ELSE buyer.full_name END,
		       lm.id, lm.sender_id, lm.text, lm.is_read, lm.created_at,
		       (SELECT COUNT(*) FROM messages m
		        WHERE m.conversation_id = c.id AND m.sender_id <> $1 AND NOT m.is_read)
		FROM conversations c
		JOIN plots p ON p.id = c.listing_id
		JOIN profiles buyer ON buyer.id = c.buyer_id
		JOIN profiles seller ON seller.id = c.seller_id
		LEFT JOIN LATERAL (
			SELECT id, sender_id, text, is_read, created_at
			FROM messages WHERE conversation_id = c.id
			ORDER BY created_at DESC LIMIT 1
		) lm ON TRUE
		WHERE c.buyer_id = $1 OR c.seller_id = $1
		ORDER BY COALESCE(lm.created_at, c.created_at) DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Conversation
	for rows.Next() {
		var c model.Conversation
		var lm model.Message
		var lmID, lmSender, lmText *string
		var lmRead *bool
		var lmAt *time.Time
		if err := rows.Scan(
			&c.ID, &c.ListingID, &c.BuyerID, &c.SellerID, &c.CreatedAt,
			&c.ListingTitle, &c.OtherPartyName,
			&lmID, &lmSender, &lmText, &lmRead, &lmAt,
			&c.UnreadCount,
		); err != nil {
			return nil, err
		}
		if lmID != nil {
			lm.ID = *lmID
			lm.ConversationID = c.ID
			lm.SenderID = *lmSender
			lm.Text = *lmText
			lm.IsRead = *lmRead
			lm.CreatedAt = *lmAt
			c.LastMessage = &lm
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListMessages returns the full message history, oldest first.
func (r *ChatRepository) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, conversation_id, sender_id, text, is_read, created_at
		FROM messages WHERE conversation_id = $1
		ORDER BY created_at ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Text, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkRead flags every message sent by the other party as read.
func (r *ChatRepository) MarkRead(ctx context.Context, conversationID, readerID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE messages SET is_read = TRUE
		WHERE conversation_id = $1 AND sender_id <> $2 AND NOT is_read
	`, conversationID, readerID)
	return err
}

func (r *ChatRepository) InsertMessage(ctx context.Context, conversationID, senderID, text string) (*model.Message, error) {
	m := &model.Message{ConversationID: conversationID, SenderID: senderID, Text: text}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (conversation_id, sender_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, conversationID, senderID, text).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteOlderThan removes messages older than the given number of days.
// Returns the number of deleted rows.
func (r *ChatRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM messages WHERE created_at < NOW() - make_interval(days => $1)
	`, days)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
