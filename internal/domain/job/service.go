package job

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/feed"
	"jobvibe/internal/domain/notification"
	"jobvibe/internal/domain/upload"
	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/paginate"
	"jobvibe/internal/pkg/utils"
)

// MaxMediaFiles bounds the media attached when a job is created.
const MaxMediaFiles = 5

// MediaPolicy accepts job media: videos only.
func MediaPolicy() upload.Policy {
	p := upload.VideoPolicy()
	p.MaxFiles = MaxMediaFiles
	return p
}

type Service struct {
	feeds   feed.Repository
	jobs    *Repository
	uploads feed.Uploader
	sink    notification.Sink
}

func NewService(feeds feed.Repository, jobs *Repository, uploads feed.Uploader, sink notification.Sink) *Service {
	if sink == nil {
		sink = notification.Discard{}
	}
	return &Service{feeds: feeds, jobs: jobs, uploads: uploads, sink: sink}
}

func (s *Service) List(ctx context.Context, req ListRequest, p paginate.Params, baseURL string) (*paginate.Result[feed.View], error) {
	q := feed.Query{
		Search:   req.Search,
		JobTypes: utils.SplitParam(req.JobType),
		Source:   strings.TrimSpace(req.Source),
	}
	if raw := strings.TrimSpace(req.Status); raw != "" {
		st, ok := feed.ParseStatus(strings.ToLower(raw))
		if !ok {
			return nil, feed.ErrInvalidStatus
		}
		q.Statuses = []feed.Status{st}
	}

	page, err := s.feeds.List(ctx, q, p)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return paginate.Map(page, func(f feed.Feed) feed.View {
		return feed.NewView(&f, nil, baseURL)
	}), nil
}

func (s *Service) Get(ctx context.Context, id, baseURL string) (*feed.View, error) {
	f, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	v := feed.NewView(f, nil, baseURL)
	return &v, nil
}

func (s *Service) get(ctx context.Context, id string) (*feed.Feed, error) {
	f, err := s.feeds.Get(ctx, id)
	if errors.Is(err, feed.ErrFeedNotFound) {
		return nil, ErrJobNotFound
	}
	return f, err
}

// Create stores an admin-authored job in the draft state. Media are
// validated as a batch before anything is written.
func (s *Service) Create(ctx context.Context, adminID string, req feed.CreateRequest, files []*multipart.FileHeader, baseURL string) (*feed.View, error) {
	var media []*upload.File
	if len(files) > 0 {
		var err error
		if media, err = s.uploads.Save(ctx, adminID, files, MediaPolicy()); err != nil {
			return nil, err
		}
	}

	f := &feed.Feed{
		AuthorID:          adminID,
		AuthorRole:        auth.RoleAdmin,
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
		Status:            feed.StatusDraft,
	}
	if err := s.feeds.Create(ctx, f); err != nil {
		s.uploads.Discard(ctx, media)
		return nil, apperr.Internal(fmt.Errorf("create job: %w", err))
	}
	return s.Get(ctx, f.ID, baseURL)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest, baseURL string) (*feed.View, error) {
	if req.Media != nil {
		media, err := storedMedia(*req.Media)
		if err != nil {
			return nil, err
		}
		req.Media = &media
	}
	fields := req.fields()
	if len(fields) == 0 {
		return nil, ErrNothingToEdit
	}
	if err := s.jobs.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id, baseURL)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.jobs.Delete(ctx, id)
}

func (s *Service) Publish(ctx context.Context, id, baseURL string) (*feed.View, error) {
	return s.SetStatus(ctx, id, feed.StatusOpen, baseURL)
}

func (s *Service) Unpublish(ctx context.Context, id, baseURL string) (*feed.View, error) {
	return s.SetStatus(ctx, id, feed.StatusPaused, baseURL)
}

func (s *Service) Accept(ctx context.Context, id, baseURL string) (*feed.View, error) {
	return s.SetStatus(ctx, id, feed.StatusApproved, baseURL)
}

func (s *Service) Reject(ctx context.Context, id, baseURL string) (*feed.View, error) {
	return s.SetStatus(ctx, id, feed.StatusRejected, baseURL)
}

// SetStatus moves a job to status from whatever state it is in.
func (s *Service) SetStatus(ctx context.Context, id string, status feed.Status, baseURL string) (*feed.View, error) {
	if err := s.jobs.Update(ctx, id, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	v, err := s.Get(ctx, id, baseURL)
	if err != nil {
		return nil, err
	}

	if (status == feed.StatusApproved || status == feed.StatusRejected) && v.AuthorRole != auth.RoleAdmin {
		s.sink.Emit(ctx, notification.Event{
			Type:      notification.TypeJobStatus,
			Title:     "Post " + string(status),
			Body:      "Your post was " + string(status) + " by a moderator",
			Recipient: v.AuthorID,
			Data:      map[string]any{"feedId": v.ID, "status": string(status)},
		})
	}
	return v, nil
}

// UploadVideos stores up to three videos and appends them to the job.
func (s *Service) UploadVideos(ctx context.Context, id, adminID string, files []*multipart.FileHeader, baseURL string) ([]*upload.View, error) {
	if len(files) == 0 {
		return nil, ErrNoVideo
	}
	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}

	saved, err := s.uploads.Save(ctx, adminID, files, upload.VideoPolicy())
	if err != nil {
		return nil, err
	}
	if err := s.jobs.AppendMedia(ctx, id, upload.URLPaths(saved)); err != nil {
		s.uploads.Discard(ctx, saved)
		return nil, err
	}

	out := make([]*upload.View, 0, len(saved))
	for _, f := range saved {
		out = append(out, upload.NewView(f, baseURL))
	}
	return out, nil
}

// storedMedia turns media echoed back from a response into the relative
// paths kept on the row.
func storedMedia(in utils.StringList) (utils.StringList, error) {
	out := make(utils.StringList, 0, len(in))
	for _, m := range in {
		p, ok := upload.StoredPath(m)
		if !ok {
			return nil, ErrInvalidMedia
		}
		out = append(out, p)
	}
	return out, nil
}
