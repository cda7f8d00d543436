package upload

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, f *File) error
	GetByID(ctx context.Context, id string) (*File, error)
	Delete(ctx context.Context, id string) error
	ExistsByPath(ctx context.Context, relPath string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *File) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*File, error) {
	var f File
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&File{}).Error
}

func (r *repository) ExistsByPath(ctx context.Context, relPath string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&File{}).Where("path = ?", relPath).Count(&n).Error
	return n > 0, err
}
