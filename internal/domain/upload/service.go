package upload

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"jobvibe/internal/pkg/utils"

	"github.com/google/uuid"
)

// Service validates, stores and records uploaded files. Bytes are written
// before the record; a crash in between leaves an orphan that the sweep
// removes later.
type Service struct {
	repo    Repository
	store   Storage
	maxSize int64
	now     func() time.Time
}

func NewService(repo Repository, store Storage, maxSize int64) *Service {
	return &Service{repo: repo, store: store, maxSize: maxSize, now: time.Now}
}

// Save checks every file against p, then stores and records them in
// order. If any store or record step fails, files saved by this call are
// removed again.
func (s *Service) Save(ctx context.Context, userID string, files []*multipart.FileHeader, p Policy) ([]*File, error) {
	p = p.WithMaxSize(s.maxSize)
	types, err := p.CheckAll(files)
	if err != nil {
		return nil, err
	}

	saved := make([]*File, 0, len(files))
	for i, fh := range files {
		f, err := s.saveOne(ctx, userID, fh, types[i], p)
		if err != nil {
			s.Discard(ctx, saved)
			return nil, err
		}
		saved = append(saved, f)
	}
	return saved, nil
}

func (s *Service) SaveOne(ctx context.Context, userID string, fh *multipart.FileHeader, p Policy) (*File, error) {
	files, err := s.Save(ctx, userID, []*multipart.FileHeader{fh}, p)
	if err != nil {
		return nil, err
	}
	return files[0], nil
}

func (s *Service) saveOne(ctx context.Context, userID string, fh *multipart.FileHeader, mimeType string, p Policy) (*File, error) {
	kind := p.Kind
	if kind == "" {
		kind = kindOf(mimeType)
	}

	id := uuid.NewString()
	filename := id + p.Allowed[mimeType]
	now := s.now()
	relPath := fmt.Sprintf("%ss/%04d/%02d/%02d/%s", kind, now.Year(), now.Month(), now.Day(), filename)

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	size, err := s.store.Save(ctx, relPath, src)
	if err != nil {
		return nil, err
	}

	f := &File{
		ID:           id,
		UserID:       userID,
		Kind:         kind,
		Filename:     filename,
		OriginalName: sanitizeName(fh.Filename),
		Path:         relPath,
		MimeType:     mimeType,
		Size:         size,
		CreatedAt:    now,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		_ = s.store.Remove(relPath)
		return nil, fmt.Errorf("save file record: %w", err)
	}
	return f, nil
}

// Discard removes files and their records, logging failures.
func (s *Service) Discard(ctx context.Context, files []*File) {
	for _, f := range files {
		if err := s.store.Remove(f.Path); err != nil {
			slog.Warn("discard upload: remove file", "path", f.Path, "error", err)
		}
		if err := s.repo.Delete(ctx, f.ID); err != nil {
			slog.Warn("discard upload: delete record", "id", f.ID, "error", err)
		}
	}
}

func (s *Service) Get(ctx context.Context, id string) (*File, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes the record and the stored bytes. Only the uploader or an
// admin may delete.
func (s *Service) Delete(ctx context.Context, userID, id string, isAdmin bool) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f.UserID != userID && !isAdmin {
		return ErrNotOwner
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// the sweep picks the file up if this fails
	if err := s.store.Remove(f.Path); err != nil {
		slog.Warn("remove stored file", "path", f.Path, "error", err)
	}
	return nil
}

// SweepOrphans removes stored files older than grace that have no record.
func (s *Service) SweepOrphans(ctx context.Context, grace time.Duration) (int, error) {
	cutoff := s.now().Add(-grace)
	removed := 0

	err := s.store.Walk(func(relPath string, modTime time.Time) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if modTime.After(cutoff) {
			return nil
		}
		exists, err := s.repo.ExistsByPath(ctx, relPath)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		if err := s.store.Remove(relPath); err != nil {
			return err
		}
		removed++
		slog.Info("orphan file removed", "component", "sweep", "path", relPath)
		return nil
	})
	return removed, err
}

func NewView(f *File, baseURL string) *View {
	return &View{File: f, URL: utils.AbsoluteURL(baseURL, f.URLPath())}
}

// URLPaths returns the relative public paths of files, as stored on feeds.
func URLPaths(files []*File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.URLPath())
	}
	return out
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == ' ' {
			return r
		}
		return '_'
	}, base)
	if len(base) > 80 {
		base = base[:80]
	}
	if base == "" {
		base = "file"
	}
	return base + strings.ToLower(ext)
}
