package feed

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/notification"
	"jobvibe/internal/domain/upload"
	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/paginate"
)

const (
	MinRating = 0
	MaxRating = 5
)

type UserStore interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

type Uploader interface {
	Save(ctx context.Context, userID string, files []*multipart.FileHeader, p upload.Policy) ([]*upload.File, error)
	Discard(ctx context.Context, files []*upload.File)
}

type Service struct {
	repo    Repository
	users   UserStore
	uploads Uploader
	sink    notification.Sink
}

func NewService(repo Repository, users UserStore, uploads Uploader, sink notification.Sink) *Service {
	if sink == nil {
		sink = notification.Discard{}
	}
	return &Service{repo: repo, users: users, uploads: uploads, sink: sink}
}

// List is the requester's home feed: other users' posts, restricted to
// the opposite role unless the requester is an admin.
func (s *Service) List(ctx context.Context, userID string, req ListRequest, baseURL string) (*paginate.Result[View], error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	q := Query{
		ExcludeAuthor: userID,
		Search:        req.Search,
		States:        req.State,
		Cities:        req.City,
		JobTitles:     req.JobTitle,
		JobTypes:      req.JobType,
	}
	if counterpart, ok := user.Role.Counterpart(); ok {
		q.AuthorRole = counterpart
	}

	page, err := s.repo.List(ctx, q, paginate.Normalize(req.Page, req.Limit))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return s.decorate(ctx, userID, page, baseURL)
}

// Explore pages every feed except the requester's own.
func (s *Service) Explore(ctx context.Context, userID string, p paginate.Params, baseURL string) (*paginate.Result[View], error) {
	page, err := s.repo.List(ctx, Query{ExcludeAuthor: userID}, p)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return s.decorate(ctx, userID, page, baseURL)
}

func (s *Service) ByAuthor(ctx context.Context, viewerID, authorID string, p paginate.Params, baseURL string) (*paginate.Result[View], error) {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	page, err := s.repo.List(ctx, Query{AuthorID: authorID}, p)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return s.decorate(ctx, viewerID, page, baseURL)
}

func (s *Service) Get(ctx context.Context, viewerID, id, baseURL string) (*View, error) {
	f, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	reactions, err := s.repo.ReactionsBy(ctx, viewerID, []string{f.ID})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	v := NewView(f, reactions[f.ID], baseURL)
	return &v, nil
}

// Post creates a feed authored by userID. Media are stored first and
// discarded again if the feed cannot be recorded.
func (s *Service) Post(ctx context.Context, userID string, req CreateRequest, files []*multipart.FileHeader, baseURL string) (*View, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Content) == "" && strings.TrimSpace(req.Title) == "" && len(files) == 0 {
		return nil, ErrEmptyFeed
	}

	var media []*upload.File
	if len(files) > 0 {
		if media, err = s.uploads.Save(ctx, userID, files, upload.MediaPolicy()); err != nil {
			return nil, err
		}
	}

	f := &Feed{
		AuthorID:          userID,
		AuthorRole:        user.Role,
		Title:             strings.TrimSpace(req.Title),
		Content:           strings.TrimSpace(req.Content),
		Media:             upload.URLPaths(media),
		JobTitle:          req.JobTitle,
		JobType:           strings.TrimSpace(req.JobType),
		WorkPlaceName:     strings.TrimSpace(req.WorkPlaceName),
		CompanyName:       strings.TrimSpace(req.CompanyName),
		Cities:            req.Cities,
		States:            req.States,
		Skills:            req.Skills,
		Source:            strings.TrimSpace(req.Source),
		NoticePeriod:      strings.TrimSpace(req.NoticePeriod),
		IsImmediateJoiner: req.IsImmediateJoiner,
		Status:            StatusDraft,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		s.uploads.Discard(ctx, media)
		return nil, apperr.Internal(fmt.Errorf("create feed: %w", err))
	}

	if !user.IsFeedPosted {
		if err := s.users.Update(ctx, userID, map[string]any{"is_feed_posted": true}); err != nil {
			slog.Error("mark user as posted", "user_id", userID, "error", err)
		}
	}

	if audience, ok := user.Role.Counterpart(); ok {
		s.sink.Emit(ctx, notification.Event{
			Type:     notification.TypeNewFeed,
			Title:    "New post",
			Body:     user.DisplayName() + " shared a new post",
			Sender:   userID,
			Audience: string(audience),
			Data:     map[string]any{"feedId": f.ID},
		})
	}

	f.Author = user
	v := NewView(f, nil, baseURL)
	return &v, nil
}

// React records userID's rating of feedID. The requester must have
// posted a feed and may not rate their own.
func (s *Service) React(ctx context.Context, userID, feedID string, req ReactRequest) (*Reaction, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsFeedPosted {
		return nil, ErrNotYetPosted
	}

	f, err := s.repo.Get(ctx, feedID)
	if err != nil {
		return nil, err
	}
	if f.AuthorID == userID {
		return nil, ErrOwnFeed
	}
	if req.RatingValue == nil || *req.RatingValue < MinRating || *req.RatingValue > MaxRating {
		return nil, ErrInvalidRating
	}

	r := &Reaction{
		UserID:      userID,
		FeedID:      feedID,
		RatingValue: *req.RatingValue,
		Type:        strings.TrimSpace(req.Type),
	}
	created, err := s.repo.UpsertReaction(ctx, r)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("upsert reaction: %w", err))
	}

	if created {
		s.sink.Emit(ctx, notification.Event{
			Type:      notification.TypeReaction,
			Title:     "New reaction",
			Body:      fmt.Sprintf("%s rated your post %.1f", user.DisplayName(), r.RatingValue),
			Recipient: f.AuthorID,
			Sender:    userID,
			Data:      map[string]any{"feedId": feedID, "ratingValue": r.RatingValue},
		})
	}
	return r, nil
}

func (s *Service) Reacted(ctx context.Context, userID string, req ReactedRequest, baseURL string) (*paginate.Result[View], error) {
	if req.MinRating != nil && req.MaxRating != nil && *req.MinRating > *req.MaxRating {
		return nil, ErrInvalidRange
	}
	page, err := s.repo.Reacted(ctx, userID, req, paginate.Normalize(req.Page, req.Limit))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return s.decorate(ctx, userID, page, baseURL)
}

func (s *Service) decorate(ctx context.Context, userID string, page *paginate.Result[Feed], baseURL string) (*paginate.Result[View], error) {
	ids := make([]string, 0, len(page.Results))
	for _, f := range page.Results {
		ids = append(ids, f.ID)
	}
	reactions, err := s.repo.ReactionsBy(ctx, userID, ids)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return paginate.Map(page, func(f Feed) View {
		return NewView(&f, reactions[f.ID], baseURL)
	}), nil
}
