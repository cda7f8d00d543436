package application

import (
	"context"
	"fmt"
	"strings"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/feed"
	"jobvibe/internal/domain/notification"
	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/paginate"
)

type UserStore interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
}

type FeedStore interface {
	Get(ctx context.Context, id string) (*feed.Feed, error)
}

// Cleaner removes rows that reference an application before it is deleted.
type Cleaner interface {
	DeleteByApplication(ctx context.Context, applicationID string) error
}

type Service struct {
	repo    Repository
	users   UserStore
	feeds   FeedStore
	sink    notification.Sink
	cleaner Cleaner
}

func NewService(repo Repository, users UserStore, feeds FeedStore, sink notification.Sink) *Service {
	if sink == nil {
		sink = notification.Discard{}
	}
	return &Service{repo: repo, users: users, feeds: feeds, sink: sink}
}

// SetCleaner registers dependents to remove on Delete.
func (s *Service) SetCleaner(c Cleaner) { s.cleaner = c }

func (s *Service) Apply(ctx context.Context, userID string, req ApplyRequest, baseURL string) (*View, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != auth.RoleCandidate {
		return nil, ErrNotCandidate
	}

	f, err := s.feeds.Get(ctx, strings.TrimSpace(req.FeedID))
	if err != nil {
		return nil, err
	}

	a := &Application{
		UserID:      userID,
		FeedID:      f.ID,
		IsApplied:   true,
		Status:      StatusApplied,
		CoverLetter: strings.TrimSpace(req.CoverLetter),
	}
	if req.MatchScore != nil {
		if *req.MatchScore < 0 || *req.MatchScore > 100 {
			return nil, ErrInvalidScore
		}
		a.MatchScore = *req.MatchScore
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, err
		}
		return nil, apperr.Internal(fmt.Errorf("create application: %w", err))
	}

	s.sink.Emit(ctx, notification.Event{
		Type:      notification.TypeApplication,
		Title:     "New applicant",
		Body:      user.DisplayName() + " applied to your post",
		Recipient: f.AuthorID,
		Sender:    userID,
		Data:      map[string]any{"applicationId": a.ID, "feedId": f.ID},
	})

	a.User, a.Feed = user, f
	v := NewView(a, baseURL)
	return &v, nil
}

func (s *Service) Mine(ctx context.Context, userID string, p paginate.Params, baseURL string) (*paginate.Result[View], error) {
	page, err := s.repo.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return views(page, baseURL), nil
}

func (s *Service) ByJob(ctx context.Context, feedID string, p paginate.Params, baseURL string) (*paginate.Result[View], error) {
	if _, err := s.feeds.Get(ctx, feedID); err != nil {
		return nil, err
	}
	page, err := s.repo.ListByFeed(ctx, feedID, p)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return views(page, baseURL), nil
}

// Matches is the admin view of submitted applications. Status "all" or
// blank means any status.
func (s *Service) Matches(ctx context.Context, req MatchRequest, p paginate.Params, baseURL string) (*paginate.Result[View], error) {
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "all" {
		status = ""
	}
	if status != "" {
		st, ok := ParseStatus(status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		status = string(st)
	}

	page, err := s.repo.Matches(ctx, MatchRequest{Status: status, Search: req.Search}, p)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return views(page, baseURL), nil
}

// Get is allowed for the applicant, the job's author and admins.
func (s *Service) Get(ctx context.Context, userID string, isAdmin bool, id, baseURL string) (*View, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && a.UserID != userID && (a.Feed == nil || a.Feed.AuthorID != userID) {
		return nil, ErrNotAllowed
	}
	v := NewView(a, baseURL)
	return &v, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, raw, baseURL string) (*View, error) {
	status, ok := ParseStatus(raw)
	if !ok {
		return nil, ErrInvalidStatus
	}
	fields := map[string]any{"status": status}
	if status == StatusInterview {
		fields["interview_scheduled"] = true
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.sink.Emit(ctx, notification.Event{
		Type:      notification.TypeApplicationStatus,
		Title:     "Application updated",
		Body:      "Your application status is now " + string(status),
		Recipient: a.UserID,
		Data:      map[string]any{"applicationId": a.ID, "status": string(status)},
	})

	v := NewView(a, baseURL)
	return &v, nil
}

// MarkInterviewScheduled flags the application and moves it to interview.
func (s *Service) MarkInterviewScheduled(ctx context.Context, id string) (*Application, error) {
	err := s.repo.Update(ctx, id, map[string]any{
		"interview_scheduled": true,
		"status":              StatusInterview,
	})
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Lookup(ctx context.Context, id string) (*Application, error) {
	return s.repo.Get(ctx, id)
}

// Delete lets applicants withdraw and admins remove any application.
func (s *Service) Delete(ctx context.Context, userID string, isAdmin bool, id string) error {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && a.UserID != userID {
		return ErrNotAllowed
	}
	if s.cleaner != nil {
		if err := s.cleaner.DeleteByApplication(ctx, id); err != nil {
			return apperr.Internal(err)
		}
	}
	return s.repo.Delete(ctx, id)
}

func views(page *paginate.Result[Application], baseURL string) *paginate.Result[View] {
	return paginate.Map(page, func(a Application) View { return NewView(&a, baseURL) })
}
