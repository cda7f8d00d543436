package interview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobvibe/internal/domain/application"
	"jobvibe/internal/domain/notification"
	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/paginate"
)

const defaultDuration = 30

type Applications interface {
	Lookup(ctx context.Context, id string) (*application.Application, error)
	MarkInterviewScheduled(ctx context.Context, id string) (*application.Application, error)
}

type Service struct {
	repo Repository
	apps Applications
	sink notification.Sink
	now  func() time.Time
}

func NewService(repo Repository, apps Applications, sink notification.Sink) *Service {
	if sink == nil {
		sink = notification.Discard{}
	}
	return &Service{repo: repo, apps: apps, sink: sink, now: time.Now}
}

// Schedule books an interview for a submitted application and moves the
// application to the interview status.
func (s *Service) Schedule(ctx context.Context, adminID string, req ScheduleRequest) (*Interview, error) {
	if !req.ScheduledAt.After(s.now()) {
		return nil, ErrInPast
	}
	app, err := s.apps.Lookup(ctx, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if !app.IsApplied {
		return nil, ErrNotApplied
	}

	i := &Interview{
		ApplicationID:   app.ID,
		FeedID:          app.FeedID,
		CandidateID:     app.UserID,
		ScheduledBy:     adminID,
		ScheduledAt:     req.ScheduledAt.UTC(),
		DurationMinutes: req.DurationMinutes,
		Mode:            req.Mode,
		Location:        strings.TrimSpace(req.Location),
		MeetingLink:     strings.TrimSpace(req.MeetingLink),
		Notes:           strings.TrimSpace(req.Notes),
		Status:          StatusScheduled,
	}
	if i.DurationMinutes == 0 {
		i.DurationMinutes = defaultDuration
	}
	if i.Mode == "" {
		i.Mode = ModeOnline
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, apperr.Internal(fmt.Errorf("create interview: %w", err))
	}
	if _, err := s.apps.MarkInterviewScheduled(ctx, app.ID); err != nil {
		return nil, err
	}

	s.notify(ctx, i, "Interview scheduled", "Your interview is scheduled for "+i.ScheduledAt.Format(time.RFC1123))
	return i, nil
}

// List shows candidates their own interviews and admins everyone's.
func (s *Service) List(ctx context.Context, userID string, isAdmin bool, status string, p paginate.Params) (*paginate.Result[Interview], error) {
	candidate := userID
	if isAdmin {
		candidate = ""
	}
	page, err := s.repo.List(ctx, candidate, strings.ToLower(strings.TrimSpace(status)), p)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return page, nil
}

func (s *Service) Get(ctx context.Context, userID string, isAdmin bool, id string) (*Interview, error) {
	i, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && i.CandidateID != userID {
		return nil, ErrNotAllowed
	}
	return i, nil
}

func (s *Service) Reschedule(ctx context.Context, id string, req RescheduleRequest) (*Interview, error) {
	i, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if i.Closed() {
		return nil, ErrClosed
	}
	if !req.ScheduledAt.After(s.now()) {
		return nil, ErrInPast
	}

	fields := map[string]any{
		"scheduled_at": req.ScheduledAt.UTC(),
		"status":       StatusRescheduled,
	}
	if req.DurationMinutes > 0 {
		fields["duration_minutes"] = req.DurationMinutes
	}
	if req.Location != nil {
		fields["location"] = strings.TrimSpace(*req.Location)
	}
	if req.MeetingLink != nil {
		fields["meeting_link"] = strings.TrimSpace(*req.MeetingLink)
	}
	if req.Notes != nil {
		fields["notes"] = strings.TrimSpace(*req.Notes)
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	i, err = s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, i, "Interview rescheduled", "Your interview moved to "+i.ScheduledAt.Format(time.RFC1123))
	return i, nil
}

func (s *Service) Cancel(ctx context.Context, id string) (*Interview, error) {
	i, err := s.close(ctx, id, StatusCancelled)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, i, "Interview cancelled", "Your interview was cancelled")
	return i, nil
}

func (s *Service) Complete(ctx context.Context, id string) (*Interview, error) {
	return s.close(ctx, id, StatusCompleted)
}

func (s *Service) close(ctx context.Context, id string, status Status) (*Interview, error) {
	i, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if i.Closed() {
		return nil, ErrClosed
	}
	if err := s.repo.Update(ctx, id, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	i.Status = status
	return i, nil
}

// DeleteByApplication drops the interviews of an application being deleted.
func (s *Service) DeleteByApplication(ctx context.Context, applicationID string) error {
	return s.repo.DeleteByApplication(ctx, applicationID)
}

func (s *Service) notify(ctx context.Context, i *Interview, title, body string) {
	s.sink.Emit(ctx, notification.Event{
		Type:      notification.TypeInterview,
		Title:     title,
		Body:      body,
		Recipient: i.CandidateID,
		Data: map[string]any{
			"interviewId":   i.ID,
			"applicationId": i.ApplicationID,
			"status":        string(i.Status),
		},
	})
}
