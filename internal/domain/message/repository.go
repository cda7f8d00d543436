package message

import (
	"context"
	"errors"
	"time"

	"jobvibe/internal/pkg/paginate"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Conversation returns the thread between a and b, creating it on first use.
func (r *Repository) Conversation(ctx context.Context, a, b string) (*Conversation, error) {
	ua, ub := pair(a, b)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Conversation{UserA: ua, UserB: ub}).Error
	if err != nil {
		return nil, err
	}

	var c Conversation
	if err := r.db.WithContext(ctx).Where("user_a = ? AND user_b = ?", ua, ub).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	var c Conversation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Conversations lists userID's threads, most recently active first.
func (r *Repository) Conversations(ctx context.Context, userID string) ([]Conversation, error) {
	var out []Conversation
	err := r.db.WithContext(ctx).
		Where("user_a = ? OR user_b = ?", userID, userID).
		Order("COALESCE(last_message_at, created_at) DESC").
		Find(&out).Error
	return out, err
}

// UnreadByConversation counts unread messages addressed to userID per thread.
func (r *Repository) UnreadByConversation(ctx context.Context, userID string) (map[string]int64, error) {
	var rows []struct {
		ConversationID string
		Count          int64
	}
	err := r.db.WithContext(ctx).Model(&Message{}).
		Select("conversation_id, COUNT(*) AS count").
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Group("conversation_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.ConversationID] = row.Count
	}
	return out, nil
}

func (r *Repository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Message{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, err
}

// Messages pages a thread newest first.
func (r *Repository) Messages(ctx context.Context, conversationID string, p paginate.Params) (*paginate.Result[Message], error) {
	return paginate.Find[Message](ctx, r.db, p, paginate.Query{
		Filter: paginate.NewFilter().Eq("conversation_id", conversationID),
	})
}

// Create stores m and moves its thread to the top of both inboxes.
func (r *Repository) Create(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Model(&Conversation{}).
			Where("id = ?", m.ConversationID).
			Updates(map[string]any{"last_message": m.Body, "last_message_at": m.CreatedAt}).Error
	})
}

func (r *Repository) Get(ctx context.Context, id string) (*Message, error) {
	var m Message
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) MarkRead(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&Message{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]any{"is_read": true, "read_at": at}).Error
}
