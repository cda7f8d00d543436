package relationship

import (
	"context"

	"jobvibe/internal/pkg/apperr"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Block(ctx context.Context, blockerID, blockedID string) error {
	err := r.db.WithContext(ctx).Create(&Block{BlockerID: blockerID, BlockedID: blockedID}).Error
	if apperr.IsUniqueViolation(err) {
		return ErrAlreadyBlocked
	}
	return err
}

func (r *Repository) Unblock(ctx context.Context, blockerID, blockedID string) error {
	res := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&Block{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotBlocked
	}
	return nil
}

// IsBlocked is true when either user has blocked the other.
func (r *Repository) IsBlocked(ctx context.Context, a, b string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) ListBlocked(ctx context.Context, blockerID string) ([]Block, error) {
	var blocks []Block
	err := r.db.WithContext(ctx).
		Preload("Blocked").
		Where("blocker_id = ?", blockerID).
		Order("created_at DESC").
		Find(&blocks).Error
	return blocks, err
}
