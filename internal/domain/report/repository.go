package report

import (
	"context"

	"jobvibe/internal/domain/application"
	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/feed"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func within(table string, r Range) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if !r.From.IsZero() {
			tx = tx.Where(table+".created_at >= ?", r.From)
		}
		if !r.To.IsZero() {
			tx = tx.Where(table+".created_at <= ?", r.To)
		}
		return tx
	}
}

// groupCount counts rows of model per distinct value of column. Empty
// values are reported under blank.
func (r *Repository) groupCount(ctx context.Context, model any, table, column, blank string, rg Range) (map[string]int64, error) {
	var rows []struct {
		Bucket string
		Count int64
	}
	err := r.db.WithContext(ctx).Model(model).
		Scopes(within(table, rg)).
		Select(column + " AS bucket, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		key := row.Bucket
		if key == "" {
			key = blank
		}
		out[key] += row.Count
	}
	return out, nil
}

func (r *Repository) Summary(ctx context.Context, rg Range) (*Summary, error) {
	s := &Summary{Range: rg}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.Users, err = r.groupCount(ctx, &auth.User{}, "users", "role", "unknown", rg)
		return err
	})
	g.Go(func() (err error) {
		s.Jobs, err = r.groupCount(ctx, &feed.Feed{}, "feeds", "status", "draft", rg)
		return err
	})
	g.Go(func() (err error) {
		s.Applications, err = r.groupCount(ctx, &application.Application{}, "applications", "status", string(application.StatusPending), rg)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.Totals = Totals{Users: sum(s.Users), Jobs: sum(s.Jobs), Applications: sum(s.Applications)}
	return s, nil
}

func (r *Repository) Users(ctx context.Context, rg Range) ([]auth.User, error) {
	var users []auth.User
	err := r.db.WithContext(ctx).
		Scopes(within("users", rg)).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *Repository) Jobs(ctx context.Context, rg Range) ([]feed.Feed, error) {
	var feeds []feed.Feed
	err := r.db.WithContext(ctx).
		Preload("Author").
		Scopes(within("feeds", rg)).
		Order("created_at DESC").
		Find(&feeds).Error
	return feeds, err
}

func (r *Repository) Applications(ctx context.Context, rg Range) ([]application.Application, error) {
	var apps []application.Application
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Feed").
		Scopes(within("applications", rg)).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}
