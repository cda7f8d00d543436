package notification

import (
	"context"
	"time"

	"jobvibe/internal/pkg/paginate"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	List(ctx context.Context, recipientID string, unreadOnly bool, p paginate.Params) (*paginate.Result[Notification], error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, id, recipientID string, at time.Time) error
	MarkAllRead(ctx context.Context, recipientID string, at time.Time) (int64, error)
	Delete(ctx context.Context, id, recipientID string) error
	DeleteReadBefore(ctx context.Context, before time.Time) (int64, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *GormRepository) List(ctx context.Context, recipientID string, unreadOnly bool, p paginate.Params) (*paginate.Result[Notification], error) {
	f := paginate.NewFilter().Eq("recipient_id", recipientID)
	if unreadOnly {
		f.Eq("is_read", false)
	}
	return paginate.Find[Notification](ctx, r.db, p, paginate.Query{Filter: f})
}

func (r *GormRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *GormRepository) MarkRead(ctx context.Context, id, recipientID string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Updates(map[string]any{"is_read": true, "read_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *GormRepository) MarkAllRead(ctx context.Context, recipientID string, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]any{"is_read": true, "read_at": at})
	return res.RowsAffected, res.Error
}

func (r *GormRepository) Delete(ctx context.Context, id, recipientID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Delete(&Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *GormRepository) DeleteReadBefore(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, before).
		Delete(&Notification{})
	return res.RowsAffected, res.Error
}
