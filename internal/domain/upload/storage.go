package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// PublicPrefix is where the storage root is served over HTTP.
const PublicPrefix = "/uploads"

// Storage persists file bytes under slash-separated relative paths.
type Storage interface {
	Save(ctx context.Context, relPath string, r io.Reader) (int64, error)
	Remove(relPath string) error
	Walk(fn func(relPath string, modTime time.Time) error) error
}

func PublicPath(relPath string) string {
	return PublicPrefix + "/" + strings.TrimLeft(relPath, "/")
}

// RelativePath reverses PublicPath. ok is false for paths outside storage.
func RelativePath(publicPath string) (string, bool) {
	rel, ok := strings.CutPrefix(publicPath, PublicPrefix+"/")
	return rel, ok && rel != ""
}

// StoredPath reduces a media reference to the public path it is persisted
// as. Absolute URLs lose their origin. ok is false when the value does not
// point into storage.
func StoredPath(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		raw = u.Path
	}
	rel, ok := RelativePath(path.Clean("/" + raw))
	if !ok || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return PublicPath(rel), true
}

type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

func (s *LocalStorage) Root() string { return s.root }

func (s *LocalStorage) Save(ctx context.Context, relPath string, r io.Reader) (int64, error) {
	abs, err := s.resolve(relPath)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return 0, fmt.Errorf("create upload directory: %w", err)
	}

	dst, err := os.Create(abs)
	if err != nil {
		return 0, fmt.Errorf("create file: %w", err)
	}

	n, err := io.Copy(dst, readerWithContext(ctx, r))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(abs)
		return 0, fmt.Errorf("write file: %w", err)
	}
	return n, nil
}

func (s *LocalStorage) Remove(relPath string) error {
	abs, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStorage) Walk(fn func(relPath string, modTime time.Time) error) error {
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel), info.ModTime())
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LocalStorage) resolve(relPath string) (string, error) {
	clean := path.Clean("/" + relPath)
	if clean == "/" {
		return "", fmt.Errorf("invalid storage path %q", relPath)
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
