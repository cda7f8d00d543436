package job

import (
	"context"
	"errors"

	"jobvibe/internal/domain/application"
	"jobvibe/internal/domain/feed"
	"jobvibe/internal/domain/interview"
	"jobvibe/internal/pkg/utils"

	"gorm.io/gorm"
)

// Repository holds the writes that only admins perform on feeds.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Update(ctx context.Context, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&feed.Feed{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// AppendMedia adds paths to the job's media list.
func (r *Repository) AppendMedia(ctx context.Context, id string, paths []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var f feed.Feed
		err := tx.Select("id", "media").Where("id = ?", id).First(&f).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		if err != nil {
			return err
		}
		media := append(utils.StringList{}, f.Media...)
		media = append(media, paths...)
		return tx.Model(&feed.Feed{}).Where("id = ?", id).Update("media", media).Error
	})
}

// Delete removes the job with its interviews, applications and
// reactions. Uploaded media files stay on disk.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feed_id = ?", id).Delete(&interview.Interview{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feed_id = ?", id).Delete(&application.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feed_id = ?", id).Delete(&feed.Reaction{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&feed.Feed{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}
