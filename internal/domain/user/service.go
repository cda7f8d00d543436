package user

import (
	"context"
	"mime/multipart"
	"strings"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/feed"
	"jobvibe/internal/domain/upload"
	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/paginate"
)

// FeedReader pages the feeds one user authored, decorated for a viewer.
type FeedReader interface {
	ByAuthor(ctx context.Context, viewerID, authorID string, p paginate.Params, baseURL string) (*paginate.Result[feed.View], error)
}

type Service struct {
	repo    *Repository
	users   auth.UserRepository
	uploads feed.Uploader
	feeds   FeedReader
}

func NewService(repo *Repository, users auth.UserRepository, uploads feed.Uploader, feeds FeedReader) *Service {
	return &Service{repo: repo, users: users, uploads: uploads, feeds: feeds}
}

func (s *Service) List(ctx context.Context, req ListRequest, p paginate.Params, baseURL string) (*ListResponse, error) {
	q := Query{Search: strings.TrimSpace(req.Search)}
	if raw := strings.TrimSpace(req.Role); raw != "" {
		role := auth.Role(strings.ToLower(raw))
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
		q.Roles = []auth.Role{role}
	}
	if raw := strings.TrimSpace(req.Status); raw != "" {
		st, ok := parseStatus(raw)
		if !ok {
			return nil, ErrInvalidStatus
		}
		q.Status = st
	}

	page, err := s.list(ctx, q, p, baseURL)
	if err != nil {
		return nil, err
	}
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &ListResponse{Result: page, Stats: stats}, nil
}

// ByRole pages users of one role. Hr-managers and recruiters are both
// employer accounts.
func (s *Service) ByRole(ctx context.Context, role auth.Role, search string, p paginate.Params, baseURL string) (*paginate.Result[View], error) {
	return s.list(ctx, Query{Search: strings.TrimSpace(search), Roles: []auth.Role{role}}, p, baseURL)
}

func (s *Service) list(ctx context.Context, q Query, p paginate.Params, baseURL string) (*paginate.Result[View], error) {
	page, err := s.repo.List(ctx, q, p)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return paginate.Map(page, func(u auth.User) View {
		return NewView(&u, baseURL)
	}), nil
}

func (s *Service) Get(ctx context.Context, id, baseURL string) (*View, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := NewView(u, baseURL)
	return &v, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateRequest, baseURL string) (*View, error) {
	fields := req.fields()
	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, userID, fields); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.Get(ctx, userID, baseURL)
}

// UploadAvatar stores one image and makes it the profile image.
func (s *Service) UploadAvatar(ctx context.Context, userID string, fh *multipart.FileHeader, baseURL string) (*View, error) {
	if fh == nil {
		return nil, ErrNoImage
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	saved, err := s.uploads.Save(ctx, userID, []*multipart.FileHeader{fh}, upload.ImagePolicy())
	if err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, userID, map[string]any{"profile_image": saved[0].URLPath()}); err != nil {
		s.uploads.Discard(ctx, saved)
		return nil, apperr.Internal(err)
	}
	return s.Get(ctx, userID, baseURL)
}

// Upload stores images and videos for later use in feeds or profiles.
func (s *Service) Upload(ctx context.Context, userID string, files []*multipart.FileHeader, baseURL string) ([]*upload.View, error) {
	saved, err := s.uploads.Save(ctx, userID, files, upload.MediaPolicy())
	if err != nil {
		return nil, err
	}
	out := make([]*upload.View, 0, len(saved))
	for _, f := range saved {
		out = append(out, upload.NewView(f, baseURL))
	}
	return out, nil
}

func (s *Service) Posts(ctx context.Context, viewerID, authorID string, p paginate.Params, baseURL string) (*paginate.Result[feed.View], error) {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	return s.feeds.ByAuthor(ctx, viewerID, authorID, p, baseURL)
}

// SetStatus activates or deactivates an account. Deactivated users can no
// longer log in.
func (s *Service) SetStatus(ctx context.Context, adminID, id string, req StatusRequest, baseURL string) (*View, error) {
	active, err := req.active()
	if err != nil {
		return nil, err
	}
	if id == adminID && !active {
		return nil, ErrSelfDeactivate
	}
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}

	status := auth.StatusActive
	if !active {
		status = auth.StatusInactive
	}
	if err := s.users.Update(ctx, id, map[string]any{"is_active": active, "status": status}); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.Get(ctx, id, baseURL)
}

func (r StatusRequest) active() (bool, error) {
	if r.Status != "" {
		st, ok := parseStatus(r.Status)
		if !ok {
			return false, ErrInvalidStatus
		}
		return st == auth.StatusActive, nil
	}
	if r.IsActive != nil {
		return *r.IsActive, nil
	}
	return false, ErrInvalidStatus
}

func parseStatus(raw string) (auth.UserStatus, bool) {
	switch st := auth.UserStatus(strings.ToLower(strings.TrimSpace(raw))); st {
	case auth.StatusActive, auth.StatusInactive:
		return st, true
	}
	return "", false
}
