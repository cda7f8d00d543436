package resume

import (
	"context"
	"errors"

	"jobvibe/internal/pkg/paginate"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var searchColumns = []string{"resumes.title", "resumes.summary", "resumes.skills", "resumes.location"}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, re *Resume) error {
	return r.db.WithContext(ctx).Create(re).Error
}

func (r *Repository) Get(ctx context.Context, id string) (*Resume, error) {
	var re Resume
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&re).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResumeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &re, nil
}

// List pages resumes, optionally of one user, matching search.
func (r *Repository) List(ctx context.Context, userID, search string, p paginate.Params) (*paginate.Result[Resume], error) {
	f := paginate.NewFilter().Contains(search, searchColumns...)
	if userID != "" {
		f.Eq("resumes.user_id", userID)
	}
	return paginate.Find[Resume](ctx, r.db, p, paginate.Query{
		Filter:   f,
		Order:    "resumes.updated_at DESC",
		Preloads: []string{"User"},
	})
}

func (r *Repository) Update(ctx context.Context, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&Resume{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Resume{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func detailsMap(m map[string]any) datatypes.JSONMap {
	if m == nil {
		return nil
	}
	return datatypes.JSONMap(m)
}
