package application

import (
	"context"
	"errors"

	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/paginate"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Get(ctx context.Context, id string) (*Application, error)
	ListByUser(ctx context.Context, userID string, p paginate.Params) (*paginate.Result[Application], error)
	ListByFeed(ctx context.Context, feedID string, p paginate.Params) (*paginate.Result[Application], error)
	Matches(ctx context.Context, req MatchRequest, p paginate.Params) (*paginate.Result[Application], error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, a *Application) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if apperr.IsUniqueViolation(err) {
		return ErrAlreadyApplied
	}
	return err
}

func (r *GormRepository) Get(ctx context.Context, id string) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Feed").
		Where("id = ?", id).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormRepository) ListByUser(ctx context.Context, userID string, p paginate.Params) (*paginate.Result[Application], error) {
	return paginate.Find[Application](ctx, r.db, p, paginate.Query{
		Filter:   paginate.NewFilter().Eq("user_id", userID),
		Preloads: []string{"Feed"},
	})
}

func (r *GormRepository) ListByFeed(ctx context.Context, feedID string, p paginate.Params) (*paginate.Result[Application], error) {
	return paginate.Find[Application](ctx, r.db, p, paginate.Query{
		Filter:   paginate.NewFilter().Eq("feed_id", feedID).Eq("is_applied", true),
		Preloads: []string{"User"},
	})
}

// Matches pages submitted applications joined with candidate and job.
// Search runs in the query, so the pagination counts only matching rows.
func (r *GormRepository) Matches(ctx context.Context, req MatchRequest, p paginate.Params) (*paginate.Result[Application], error) {
	joins := func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN users ON users.id = applications.user_id").
			Joins("LEFT JOIN feeds ON feeds.id = applications.feed_id")
	}

	f := paginate.NewFilter().Eq("applications.is_applied", true)
	if req.Status != "" {
		f.Eq("applications.status", req.Status)
	}
	f.Contains(req.Search,
		"users.name",
		"users.username",
		"feeds.job_title",
		"feeds.company_name",
		"feeds.work_place_name",
	)

	return paginate.Find[Application](ctx, r.db, p, paginate.Query{
		Filter:   f,
		Scopes:   []func(*gorm.DB) *gorm.DB{joins},
		Order:    "applications.created_at DESC",
		Preloads: []string{"User", "Feed"},
	})
}

func (r *GormRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&Application{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
