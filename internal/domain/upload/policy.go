package upload

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"jobvibe/internal/pkg/apperr"
)

// Policy is the acceptance rule for one upload field.
type Policy struct {
	Kind     Kind
	Allowed  map[string]string // MIME type -> stored extension
	MaxSize  int64
	MaxFiles int
}

var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var videoTypes = map[string]string{
	"video/mp4":        ".mp4",
	"video/x-matroska": ".mkv",
	"video/quicktime":  ".mov",
	"video/webm":       ".webm",
	"video/ogg":        ".ogv",
}

const docxType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var documentTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	docxType:             ".docx",
	"text/plain":         ".txt",
}

const (
	mb = 1 << 20

	MaxImageSize    = 10 * mb
	MaxVideoSize    = 100 * mb
	MaxDocumentSize = 20 * mb
)

func ImagePolicy() Policy {
	return Policy{Kind: KindImage, Allowed: imageTypes, MaxSize: MaxImageSize, MaxFiles: 10}
}

func VideoPolicy() Policy {
	return Policy{Kind: KindVideo, Allowed: videoTypes, MaxSize: MaxVideoSize, MaxFiles: 3}
}

func DocumentPolicy() Policy {
	return Policy{Kind: KindDocument, Allowed: documentTypes, MaxSize: MaxDocumentSize, MaxFiles: 5}
}

// MediaPolicy accepts images and videos, as attached to feeds and jobs.
// Kind is resolved per file.
func MediaPolicy() Policy {
	allowed := make(map[string]string, len(imageTypes)+len(videoTypes))
	for k, v := range imageTypes {
		allowed[k] = v
	}
	for k, v := range videoTypes {
		allowed[k] = v
	}
	return Policy{Allowed: allowed, MaxSize: MaxVideoSize, MaxFiles: 5}
}

// WithMaxSize caps the per-file size at limit when limit is lower.
func (p Policy) WithMaxSize(limit int64) Policy {
	if limit > 0 && limit < p.MaxSize {
		p.MaxSize = limit
	}
	return p
}

// Check validates fh without touching storage or the database and
// returns the MIME type it will be stored under. The declared part type
// wins; content is sniffed only when none was declared.
func (p Policy) Check(fh *multipart.FileHeader) (string, error) {
	if fh.Size == 0 {
		return "", ErrEmptyFile
	}
	if p.MaxSize > 0 && fh.Size > p.MaxSize {
		return "", apperr.Validation(fmt.Sprintf("%s exceeds the %d MB limit", fh.Filename, p.MaxSize/mb))
	}

	mimeType := declaredType(fh)
	if mimeType == "" {
		sniffed, err := sniff(fh)
		if err != nil {
			return "", err
		}
		mimeType = sniffed
	}

	if _, ok := p.Allowed[mimeType]; !ok {
		return "", apperr.Validation(fmt.Sprintf("%s: file type %s is not allowed", fh.Filename, mimeType))
	}
	return mimeType, nil
}

// CheckAll validates every file before any is written.
func (p Policy) CheckAll(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if p.MaxFiles > 0 && len(files) > p.MaxFiles {
		return nil, apperr.Validation(fmt.Sprintf("At most %d files are allowed", p.MaxFiles))
	}
	types := make([]string, 0, len(files))
	for _, fh := range files {
		t, err := p.Check(fh)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func kindOf(mimeType string) Kind {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return KindImage
	case strings.HasPrefix(mimeType, "video/"):
		return KindVideo
	default:
		return KindDocument
	}
}

func declaredType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil || mt == "application/octet-stream" {
		return ""
	}
	return strings.ToLower(mt)
}

func sniff(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	return strings.Split(http.DetectContentType(buf[:n]), ";")[0], nil
}
