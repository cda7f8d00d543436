package notification

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/paginate"
	"jobvibe/internal/realtime"
)

// Channel is the pub/sub channel every delivered event is published on.
const Channel = "notifications"

const deliverTimeout = 10 * time.Second

// Publisher fans events out to other processes.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// Pusher delivers events to live connections.
type Pusher interface {
	SendToUser(userID string, ev realtime.Event) bool
	BroadcastToRole(role string, ev realtime.Event) int
}

// Service stores notifications and implements Sink.
type Service struct {
	repo      Repository
	publisher Publisher
	pusher    Pusher
	log       *slog.Logger
	now       func() time.Time
	wg        sync.WaitGroup
}

// NewService wires delivery. publisher and pusher may be nil.
func NewService(repo Repository, publisher Publisher, pusher Pusher) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		pusher:    pusher,
		log:       slog.Default().With("component", "notification"),
		now:       time.Now,
	}
}

// Emit delivers ev in the background. It never blocks on delivery and
// never reports failure to the caller.
func (s *Service) Emit(ctx context.Context, ev Event) {
	if ev.Recipient == "" && ev.Audience == "" {
		return
	}
	ctx = context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, deliverTimeout)
		defer cancel()
		if _, err := s.deliver(ctx, ev); err != nil {
			s.log.Warn("notification delivery failed",
				"type", ev.Type,
				"recipient", ev.Recipient,
				"audience", ev.Audience,
				"error", err,
			)
		}
	}()
}

// Wait blocks until in-flight deliveries finish.
func (s *Service) Wait() { s.wg.Wait() }

func (s *Service) deliver(ctx context.Context, ev Event) (*Notification, error) {
	var (
		stored  *Notification
		payload any
	)

	if ev.Recipient != "" {
		n := &Notification{
			RecipientID: ev.Recipient,
			SenderID:    ev.Sender,
			Type:        ev.Type,
			Title:       ev.Title,
			Body:        ev.Body,
			Data:        ev.Data,
		}
		if err := s.repo.Create(ctx, n); err != nil {
			return nil, err
		}
		stored = n
		payload = n
	} else {
		payload = map[string]any{
			"type":     ev.Type,
			"title":    ev.Title,
			"body":     ev.Body,
			"audience": ev.Audience,
			"data":     ev.Data,
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, Channel, payload); err != nil {
			s.log.Warn("notification publish failed", "error", err)
		}
	}

	if s.pusher != nil {
		msg := realtime.Event{Type: realtime.EventNotification, Payload: payload}
		if ev.Recipient != "" {
			s.pusher.SendToUser(ev.Recipient, msg)
		} else {
			s.pusher.BroadcastToRole(ev.Audience, msg)
		}
	}
	return stored, nil
}

// Send delivers an admin-authored notification synchronously. It returns
// the stored row for a single recipient and nil for an audience.
func (s *Service) Send(ctx context.Context, senderID string, req SendRequest) (*Notification, error) {
	req.RecipientID = strings.TrimSpace(req.RecipientID)
	req.Audience = strings.TrimSpace(req.Audience)
	if req.RecipientID == "" && req.Audience == "" {
		return nil, ErrNoTarget
	}

	n, err := s.deliver(ctx, Event{
		Type:      TypeSystem,
		Title:     req.Title,
		Body:      req.Body,
		Recipient: req.RecipientID,
		Sender:    senderID,
		Audience:  req.Audience,
		Data:      req.Data,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, userID string, unreadOnly bool, p paginate.Params) (*ListResponse, error) {
	page, err := s.repo.List(ctx, userID, unreadOnly, p)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &ListResponse{Result: page, UnreadCount: unread}, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return n, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, id string) error {
	return s.repo.MarkRead(ctx, id, userID, s.now())
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID, s.now())
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, id, userID)
}
