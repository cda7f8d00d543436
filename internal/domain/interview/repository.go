package interview

import (
	"context"
	"errors"

	"jobvibe/internal/pkg/paginate"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, i *Interview) error
	Get(ctx context.Context, id string) (*Interview, error)
	List(ctx context.Context, candidateID, status string, p paginate.Params) (*paginate.Result[Interview], error)
	Update(ctx context.Context, id string, fields map[string]any) error
	DeleteByApplication(ctx context.Context, applicationID string) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, i *Interview) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *GormRepository) Get(ctx context.Context, id string) (*Interview, error) {
	var i Interview
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&i).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// List pages interviews by start time, soonest first. An empty
// candidateID lists everyone's.
func (r *GormRepository) List(ctx context.Context, candidateID, status string, p paginate.Params) (*paginate.Result[Interview], error) {
	f := paginate.NewFilter()
	if candidateID != "" {
		f.Eq("candidate_id", candidateID)
	}
	if status != "" {
		f.Eq("status", status)
	}
	return paginate.Find[Interview](ctx, r.db, p, paginate.Query{Filter: f, Order: "scheduled_at ASC"})
}

func (r *GormRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&Interview{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *GormRepository) DeleteByApplication(ctx context.Context, applicationID string) error {
	return r.db.WithContext(ctx).Where("application_id = ?", applicationID).Delete(&Interview{}).Error
}
