package admin

import (
	"context"
	"time"

	"jobvibe/internal/domain/application"
	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/feed"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Repository runs the read-only aggregate queries behind the dashboard.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) count(ctx context.Context, model any, dst *int64, where ...any) func() error {
	return func() error {
		tx := r.db.WithContext(ctx).Model(model)
		if len(where) > 0 {
			tx = tx.Where(where[0], where[1:]...)
		}
		return tx.Count(dst).Error
	}
}

func (r *Repository) Dashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(r.count(ctx, &auth.User{}, &d.Users, "role <> ?", auth.RoleAdmin))
	g.Go(r.count(ctx, &feed.Feed{}, &d.Jobs))
	g.Go(r.count(ctx, &feed.Reaction{}, &d.Matches))
	g.Go(r.count(ctx, &application.Application{}, &d.Applications, "is_applied = ?", true))
	return d, g.Wait()
}

func (r *Repository) Users(ctx context.Context) (UserStats, error) {
	var s UserStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(r.count(ctx, &auth.User{}, &s.Total, "role <> ?", auth.RoleAdmin))
	g.Go(r.count(ctx, &auth.User{}, &s.Active, "role <> ? AND is_active = ?", auth.RoleAdmin, true))
	return s, g.Wait()
}

func (r *Repository) Jobs(ctx context.Context) (JobStats, error) {
	var s JobStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(r.count(ctx, &feed.Feed{}, &s.Total))
	g.Go(r.count(ctx, &feed.Feed{}, &s.Published, "status = ?", feed.StatusOpen))
	return s, g.Wait()
}

// Applications counts every application and groups them by status.
// Applications without a status are reported as pending.
func (r *Repository) Applications(ctx context.Context) (ApplicationStats, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&application.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return ApplicationStats{}, err
	}

	s := ApplicationStats{Statuses: map[string]int64{}}
	for _, row := range rows {
		status := row.Status
		if status == "" {
			status = string(application.StatusPending)
		}
		s.Statuses[status] += row.Count
		s.Total += row.Count
	}
	return s, nil
}

// Activities returns the newest feeds, applications and reactions merged
// by time, at most limit in total.
func (r *Repository) Activities(ctx context.Context, limit int) ([]Activity, error) {
	var (
		feeds     []feed.Feed
		apps      []application.Application
		reactions []feed.Reaction
	)
	db := r.db.WithContext(ctx)
	if err := db.Preload("Author").Order("created_at DESC").Limit(limit).Find(&feeds).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("User").Preload("Feed").Order("created_at DESC").Limit(limit).Find(&apps).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("User").Preload("Feed").Order("updated_at DESC").Limit(limit).Find(&reactions).Error; err != nil {
		return nil, err
	}

	out := make([]Activity, 0, len(feeds)+len(apps)+len(reactions))
	for _, f := range feeds {
		out = append(out, Activity{
			Type: ActivityFeed, ID: f.ID, FeedID: f.ID,
			User: actor(f.Author), Title: describe(&f), At: f.CreatedAt,
		})
	}
	for _, a := range apps {
		out = append(out, Activity{
			Type: ActivityApplication, ID: a.ID, FeedID: a.FeedID,
			User: actor(a.User), Title: describe(a.Feed), At: a.CreatedAt,
		})
	}
	for _, re := range reactions {
		out = append(out, Activity{
			Type: ActivityReaction, ID: re.ID, FeedID: re.FeedID,
			User: actor(re.User), Title: describe(re.Feed), At: re.UpdatedAt,
		})
	}
	return latest(out, limit), nil
}

func actor(u *auth.User) *Actor {
	if u == nil {
		return nil
	}
	return &Actor{ID: u.ID, Name: u.DisplayName(), Email: u.Email}
}

func describe(f *feed.Feed) string {
	if f == nil {
		return ""
	}
	if f.Title != "" {
		return f.Title
	}
	if len(f.JobTitle) > 0 {
		return f.JobTitle[0]
	}
	return ""
}

// ping reports whether the store answers within the request.
func (r *Repository) ping(ctx context.Context) (time.Duration, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return 0, err
	}
	start := time.Now()
	err = sqlDB.PingContext(ctx)
	return time.Since(start), err
}
