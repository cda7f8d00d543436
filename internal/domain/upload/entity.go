package upload

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
)

// File is one stored asset. Path is relative to the storage root; the
// public URL path is derived from it and is never persisted as absolute.
type File struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	UserID       string    `gorm:"type:varchar(36);index" json:"userId"`
	Kind         Kind      `gorm:"size:20;index" json:"kind"`
	Filename     string    `gorm:"size:255" json:"filename"`
	OriginalName string    `gorm:"size:255" json:"originalName"`
	Path         string    `gorm:"size:500;uniqueIndex" json:"path"`
	MimeType     string    `gorm:"size:100" json:"mimeType"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (f *File) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// URLPath is the server-relative path the file is served at.
func (f *File) URLPath() string { return PublicPath(f.Path) }

// View is the response shape of a File with an absolute url.
type View struct {
	*File
	URL string `json:"url"`
}
