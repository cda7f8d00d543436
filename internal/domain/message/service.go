package message

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/notification"
	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/paginate"
	"jobvibe/internal/realtime"
)

type UserStore interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
}

// Pusher delivers events to the live connections of one user.
type Pusher interface {
	SendToUser(userID string, ev realtime.Event) bool
}

// Blocker reports whether either user has blocked the other.
type Blocker interface {
	IsBlocked(ctx context.Context, a, b string) (bool, error)
}

type Service struct {
	repo    *Repository
	users   UserStore
	pusher  Pusher
	sink    notification.Sink
	blocker Blocker
	now     func() time.Time
}

func NewService(repo *Repository, users UserStore, pusher Pusher, sink notification.Sink) *Service {
	if sink == nil {
		sink = notification.Discard{}
	}
	return &Service{repo: repo, users: users, pusher: pusher, sink: sink, now: time.Now}
}

func (s *Service) SetBlocker(b Blocker) { s.blocker = b }

// Send persists the message, then pushes it to the recipient. A recipient
// with no live connection gets a notification instead.
func (s *Service) Send(ctx context.Context, senderID string, req SendRequest) (*Message, error) {
	recipientID := strings.TrimSpace(req.RecipientID)
	if recipientID == senderID {
		return nil, ErrCannotMessageSelf
	}
	recipient, err := s.users.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if !recipient.IsActive {
		return nil, ErrRecipientInactive
	}
	if s.blocker != nil {
		blocked, err := s.blocker.IsBlocked(ctx, senderID, recipientID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if blocked {
			return nil, ErrBlocked
		}
	}

	conv, err := s.repo.Conversation(ctx, senderID, recipientID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	m := &Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		RecipientID:    recipientID,
		Body:           strings.TrimSpace(req.Body),
		CreatedAt:      s.now(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, apperr.Internal(err)
	}

	if !s.push(recipientID, realtime.Event{Type: realtime.EventMessage, Payload: m}) {
		s.sink.Emit(ctx, notification.Event{
			Type:      notification.TypeMessage,
			Title:     "New message",
			Body:      preview(m.Body),
			Recipient: recipientID,
			Sender:    senderID,
			Data:      map[string]any{"conversationId": conv.ID, "messageId": m.ID},
		})
	}
	return m, nil
}

func (s *Service) Conversations(ctx context.Context, userID, baseURL string) ([]ConversationView, error) {
	convs, err := s.repo.Conversations(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	unread, err := s.repo.UnreadByConversation(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]ConversationView, 0, len(convs))
	for _, c := range convs {
		v := ConversationView{
			ID:            c.ID,
			LastMessage:   c.LastMessage,
			LastMessageAt: c.LastMessageAt,
			UnreadCount:   unread[c.ID],
		}
		if u, err := s.users.GetByID(ctx, c.Other(userID)); err == nil {
			sum := u.Summarize(baseURL)
			v.Participant = &sum
		} else {
			slog.Warn("conversation participant lookup failed", "conversation_id", c.ID, "error", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Service) Messages(ctx context.Context, userID, conversationID string, p paginate.Params) (*paginate.Result[Message], error) {
	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.Has(userID) {
		return nil, ErrNotParticipant
	}
	page, err := s.repo.Messages(ctx, conv.ID, p)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return page, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return n, nil
}

// MarkRead is allowed to the recipient only and tells the sender.
// Marking an already read message again is a no-op.
func (s *Service) MarkRead(ctx context.Context, userID, id string) (*Message, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.RecipientID != userID {
		return nil, ErrNotParticipant
	}
	if m.IsRead {
		return m, nil
	}

	at := s.now()
	if err := s.repo.MarkRead(ctx, id, at); err != nil {
		return nil, apperr.Internal(err)
	}
	m.IsRead, m.ReadAt = true, &at

	s.push(m.SenderID, realtime.Event{
		Type:    realtime.EventMessageRead,
		Payload: readReceipt{MessageID: m.ID, ConversationID: m.ConversationID, ReadAt: at},
	})
	return m, nil
}

func (s *Service) push(userID string, ev realtime.Event) bool {
	if s.pusher == nil {
		return false
	}
	return s.pusher.SendToUser(userID, ev)
}

func preview(body string) string {
	const maxPreview = 80
	r := []rune(body)
	if len(r) <= maxPreview {
		return body
	}
	return string(r[:maxPreview]) + "…"
}
