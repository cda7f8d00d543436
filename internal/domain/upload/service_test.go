package upload

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"jobvibe/internal/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type part struct {
	field, name, contentType string
	body                     []byte
}

// fileHeaders builds real multipart headers the way net/http parses them.
func fileHeaders(t *testing.T, parts ...part) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+p.field+`"; filename="`+p.name+`"`)
		if p.contentType != "" {
			h.Set("Content-Type", p.contentType)
		}
		pw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = pw.Write(p.body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	var out []*multipart.FileHeader
	seen := map[string]bool{}
	for _, p := range parts {
		if !seen[p.field] {
			seen[p.field] = true
			out = append(out, form.File[p.field]...)
		}
	}
	return out
}

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func setup(t *testing.T) (*Service, *gorm.DB, string) {
	t.Helper()
	db := dbtest.Open(t, &File{})
	root := t.TempDir()
	return NewService(NewRepository(db), NewLocalStorage(root), 100<<20), db, root
}

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	_ = filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			n++
		}
		return nil
	})
	return n
}

func TestSave_Video(t *testing.T) {
	svc, db, root := setup(t)

	files := fileHeaders(t, part{"file", "intro.mp4", "video/mp4", []byte("....ftypmp42")})
	saved, err := svc.Save(context.Background(), "u1", files, VideoPolicy())
	require.NoError(t, err)
	require.Len(t, saved, 1)

	f := saved[0]
	assert.Equal(t, KindVideo, f.Kind)
	assert.Equal(t, "video/mp4", f.MimeType)
	assert.Equal(t, "intro.mp4", f.OriginalName)
	assert.Regexp(t, `^videos/\d{4}/\d{2}/\d{2}/[0-9a-f-]{36}\.mp4$`, f.Path)
	assert.Equal(t, "/uploads/"+f.Path, f.URLPath())

	var n int64
	require.NoError(t, db.Model(&File{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
	assert.Equal(t, 1, countFiles(t, root))
}

func TestSave_UnsupportedVideoTypeRejectedBeforeAnyWrite(t *testing.T) {
	svc, db, root := setup(t)

	files := fileHeaders(t,
		part{"media", "ok.mp4", "video/mp4", []byte("video")},
		part{"media", "clip.avi", "video/x-msvideo", []byte("RIFF....AVI ")},
	)
	_, err := svc.Save(context.Background(), "u1", files, VideoPolicy())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "video/x-msvideo")

	var n int64
	require.NoError(t, db.Model(&File{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.Zero(t, countFiles(t, root))
}

func TestSave_SniffsWhenUndeclared(t *testing.T) {
	svc, _, _ := setup(t)

	files := fileHeaders(t, part{"file", "avatar", "", pngBytes})
	saved, err := svc.Save(context.Background(), "u1", files, ImagePolicy())
	require.NoError(t, err)
	assert.Equal(t, "image/png", saved[0].MimeType)
	assert.True(t, filepath.Ext(saved[0].Path) == ".png")
}

func TestSave_Limits(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, "u1", nil, ImagePolicy())
	assert.ErrorIs(t, err, ErrNoFiles)

	_, err = svc.Save(ctx, "u1", fileHeaders(t, part{"file", "empty.png", "image/png", nil}), ImagePolicy())
	assert.ErrorIs(t, err, ErrEmptyFile)

	svc.maxSize = 4
	_, err = svc.Save(ctx, "u1", fileHeaders(t, part{"file", "big.png", "image/png", pngBytes}), ImagePolicy())
	assert.ErrorContains(t, err, "exceeds")

	svc.maxSize = 100 << 20
	many := make([]part, 4)
	for i := range many {
		many[i] = part{"files", "v.mp4", "video/mp4", []byte("v")}
	}
	_, err = svc.Save(ctx, "u1", fileHeaders(t, many...), VideoPolicy())
	assert.ErrorContains(t, err, "At most 3 files")
}

func TestMediaPolicy_ResolvesKindPerFile(t *testing.T) {
	svc, _, _ := setup(t)

	saved, err := svc.Save(context.Background(), "u1", fileHeaders(t,
		part{"media", "a.png", "image/png", pngBytes},
		part{"media", "b.webm", "video/webm", []byte("webm")},
	), MediaPolicy())
	require.NoError(t, err)

	assert.Equal(t, KindImage, saved[0].Kind)
	assert.Equal(t, KindVideo, saved[1].Kind)
}

func TestDelete_Ownership(t *testing.T) {
	svc, _, root := setup(t)
	ctx := context.Background()

	f, err := svc.SaveOne(ctx, "owner", fileHeaders(t, part{"file", "cv.pdf", "application/pdf", []byte("%PDF-1.4")})[0], DocumentPolicy())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "intruder", f.ID, false), ErrNotOwner)
	require.NoError(t, svc.Delete(ctx, "owner", f.ID, false))

	_, err = svc.Get(ctx, f.ID)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Zero(t, countFiles(t, root))
}

func TestSweepOrphans(t *testing.T) {
	svc, _, root := setup(t)
	ctx := context.Background()

	kept, err := svc.SaveOne(ctx, "u1", fileHeaders(t, part{"file", "a.png", "image/png", pngBytes})[0], ImagePolicy())
	require.NoError(t, err)

	store := NewLocalStorage(root)
	_, err = store.Save(ctx, "videos/2020/01/01/orphan.mp4", bytes.NewReader([]byte("x")))
	require.NoError(t, err)
	_, err = store.Save(ctx, "videos/2020/01/01/fresh.mp4", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	old := time.Now().Add(-3 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(root, "videos/2020/01/01/orphan.mp4"), old, old))
	require.NoError(t, os.Chtimes(filepath.Join(root, filepath.FromSlash(kept.Path)), old, old))

	removed, err := svc.SweepOrphans(ctx, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, filepath.Join(root, "videos/2020/01/01/orphan.mp4"))
	assert.FileExists(t, filepath.Join(root, "videos/2020/01/01/fresh.mp4"))
	assert.FileExists(t, filepath.Join(root, filepath.FromSlash(kept.Path)))
}

func TestRelativePath(t *testing.T) {
	rel, ok := RelativePath("/uploads/images/2024/01/02/x.png")
	assert.True(t, ok)
	assert.Equal(t, "images/2024/01/02/x.png", rel)

	_, ok = RelativePath("https://cdn.test/x.png")
	assert.False(t, ok)
}

func TestStoredPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"/uploads/images/2024/01/02/x.png", "/uploads/images/2024/01/02/x.png", true},
		{"http://api.test/uploads/images/2024/01/02/x.png", "/uploads/images/2024/01/02/x.png", true},
		{"https://cdn.test/x.png", "", false},
		{"/uploads/../etc/passwd", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := StoredPath(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNewView_AbsoluteURL(t *testing.T) {
	f := &File{Path: "images/2024/01/02/x.png"}
	v := NewView(f, "http://api.test")
	assert.Equal(t, "http://api.test/uploads/images/2024/01/02/x.png", v.URL)
	assert.Same(t, f, v.File)
}
