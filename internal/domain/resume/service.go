package resume

import (
	"context"
	"mime/multipart"
	"strings"

	"jobvibe/internal/domain/upload"
	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/paginate"
	"jobvibe/internal/pkg/utils"
)

type Uploader interface {
	Save(ctx context.Context, userID string, files []*multipart.FileHeader, p upload.Policy) ([]*upload.File, error)
	Discard(ctx context.Context, files []*upload.File)
}

type Service struct {
	repo    *Repository
	uploads Uploader
}

func NewService(repo *Repository, uploads Uploader) *Service {
	return &Service{repo: repo, uploads: uploads}
}

func (s *Service) List(ctx context.Context, search string, p paginate.Params, baseURL string) (*paginate.Result[View], error) {
	return s.list(ctx, "", search, p, baseURL)
}

func (s *Service) ByUser(ctx context.Context, userID string, p paginate.Params, baseURL string) (*paginate.Result[View], error) {
	return s.list(ctx, userID, "", p, baseURL)
}

func (s *Service) list(ctx context.Context, userID, search string, p paginate.Params, baseURL string) (*paginate.Result[View], error) {
	page, err := s.repo.List(ctx, userID, strings.TrimSpace(search), p)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return paginate.Map(page, func(r Resume) View { return NewView(&r, baseURL) }), nil
}

func (s *Service) Get(ctx context.Context, id, baseURL string) (*View, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	v := NewView(r, baseURL)
	return &v, nil
}

func (s *Service) Create(ctx context.Context, userID string, req CreateRequest, baseURL string) (*View, error) {
	r := &Resume{
		UserID:     userID,
		Title:      strings.TrimSpace(req.Title),
		Summary:    strings.TrimSpace(req.Summary),
		Skills:     req.Skills,
		Experience: strings.TrimSpace(req.Experience),
		Location:   strings.TrimSpace(req.Location),
		Details:    detailsMap(req.Details),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.Get(ctx, r.ID, baseURL)
}

func (s *Service) Update(ctx context.Context, userID string, isAdmin bool, id string, req UpdateRequest, baseURL string) (*View, error) {
	fields := req.fields()
	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}
	if _, err := s.owned(ctx, userID, isAdmin, id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id, baseURL)
}

func (s *Service) Delete(ctx context.Context, userID string, isAdmin bool, id string) error {
	if _, err := s.owned(ctx, userID, isAdmin, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) UploadVideo(ctx context.Context, userID, id string, fh *multipart.FileHeader, baseURL string) (*View, error) {
	return s.attach(ctx, userID, id, fh, upload.VideoPolicy(), "video_url", baseURL)
}

func (s *Service) UploadDocument(ctx context.Context, userID, id string, fh *multipart.FileHeader, baseURL string) (*View, error) {
	return s.attach(ctx, userID, id, fh, upload.DocumentPolicy(), "document_url", baseURL)
}

// attach stores fh and points column at it. The owner only.
func (s *Service) attach(ctx context.Context, userID, id string, fh *multipart.FileHeader, p upload.Policy, column, baseURL string) (*View, error) {
	if fh == nil {
		return nil, ErrNoFile
	}
	if _, err := s.owned(ctx, userID, false, id); err != nil {
		return nil, err
	}

	saved, err := s.uploads.Save(ctx, userID, []*multipart.FileHeader{fh}, p)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, map[string]any{column: saved[0].URLPath()}); err != nil {
		s.uploads.Discard(ctx, saved)
		return nil, err
	}
	return s.Get(ctx, id, baseURL)
}

// DownloadURL returns the absolute address of the resume document.
func (s *Service) DownloadURL(ctx context.Context, id, baseURL string) (string, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if r.DocumentURL == "" {
		return "", ErrNoDocument
	}
	return utils.AbsoluteURL(baseURL, r.DocumentURL), nil
}

func (s *Service) owned(ctx context.Context, userID string, isAdmin bool, id string) (*Resume, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID && !isAdmin {
		return nil, ErrNotOwner
	}
	return r, nil
}
