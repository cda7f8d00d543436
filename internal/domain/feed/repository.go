package feed

import (
	"context"
	"errors"
	"time"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/pkg/paginate"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Query narrows a feed listing. Zero fields add no predicate.
type Query struct {
	ExcludeAuthor string
	AuthorID      string
	AuthorRole    auth.Role
	Statuses      []Status
	Search        string
	States        []string
	Cities        []string
	JobTitles     []string
	JobTypes      []string
	Source        string
}

// SearchColumns are matched by free-text search on feeds.
var SearchColumns = []string{
	"feeds.title",
	"feeds.content",
	"feeds.company_name",
	"feeds.work_place_name",
	"feeds.job_title",
	"feeds.skills",
}

func (q Query) Filter() *paginate.Filter {
	f := paginate.NewFilter()
	if q.ExcludeAuthor != "" {
		f.Ne("feeds.author_id", q.ExcludeAuthor)
	}
	if q.AuthorID != "" {
		f.Eq("feeds.author_id", q.AuthorID)
	}
	if q.AuthorRole != "" {
		f.Eq("feeds.author_role", q.AuthorRole)
	}
	if len(q.Statuses) > 0 {
		statuses := make([]string, len(q.Statuses))
		for i, s := range q.Statuses {
			statuses[i] = string(s)
		}
		f.In("feeds.status", statuses)
	}
	f.In("feeds.job_type", q.JobTypes)
	if q.Source != "" {
		f.Eq("feeds.source", q.Source)
	}
	f.Contains(q.Search, SearchColumns...)
	f.HasAny("feeds.states", q.States)
	f.HasAny("feeds.cities", q.Cities)
	f.HasAny("feeds.job_title", q.JobTitles)
	return f
}

type Repository interface {
	Create(ctx context.Context, f *Feed) error
	Get(ctx context.Context, id string) (*Feed, error)
	List(ctx context.Context, q Query, p paginate.Params) (*paginate.Result[Feed], error)
	Reacted(ctx context.Context, userID string, req ReactedRequest, p paginate.Params) (*paginate.Result[Feed], error)
	ReactionsBy(ctx context.Context, userID string, feedIDs []string) (map[string]*Reaction, error)
	UpsertReaction(ctx context.Context, r *Reaction) (created bool, err error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, f *Feed) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *GormRepository) Get(ctx context.Context, id string) (*Feed, error) {
	var f Feed
	err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFeedNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *GormRepository) List(ctx context.Context, q Query, p paginate.Params) (*paginate.Result[Feed], error) {
	return paginate.Find[Feed](ctx, r.db, p, paginate.Query{
		Filter:   q.Filter(),
		Order:    "feeds.created_at DESC",
		Preloads: []string{"Author"},
	})
}

// Reacted pages the feeds userID reacted to, most recently rated first.
func (r *GormRepository) Reacted(ctx context.Context, userID string, req ReactedRequest, p paginate.Params) (*paginate.Result[Feed], error) {
	joinReactions := func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN reactions ON reactions.feed_id = feeds.id AND reactions.user_id = ?", userID)
	}
	f := paginate.NewFilter().
		Range("reactions.rating_value", req.MinRating, req.MaxRating).
		Contains(req.Search, SearchColumns...)

	return paginate.Find[Feed](ctx, r.db, p, paginate.Query{
		Filter:   f,
		Scopes:   []func(*gorm.DB) *gorm.DB{joinReactions},
		Order:    "reactions.updated_at DESC",
		Preloads: []string{"Author"},
	})
}

func (r *GormRepository) ReactionsBy(ctx context.Context, userID string, feedIDs []string) (map[string]*Reaction, error) {
	out := make(map[string]*Reaction, len(feedIDs))
	if userID == "" || len(feedIDs) == 0 {
		return out, nil
	}
	var rows []*Reaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND feed_id IN ?", userID, feedIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.FeedID] = row
	}
	return out, nil
}

// UpsertReaction inserts r or, when (user, feed) already has a reaction,
// overwrites its rating and type. The feed's counter is bumped only when
// a row was inserted. r is reloaded with the stored values.
func (r *GormRepository) UpsertReaction(ctx context.Context, re *Reaction) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "feed_id"}},
			DoNothing: true,
		}).Create(re)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 1 {
			created = true
			return tx.Model(&Feed{}).
				Where("id = ?", re.FeedID).
				UpdateColumn("no_of_reactions", gorm.Expr("no_of_reactions + ?", 1)).Error
		}

		userID, feedID := re.UserID, re.FeedID
		err := tx.Model(&Reaction{}).
			Where("user_id = ? AND feed_id = ?", userID, feedID).
			Updates(map[string]any{
				"rating_value": re.RatingValue,
				"type":         re.Type,
				"updated_at":   time.Now(),
			}).Error
		if err != nil {
			return err
		}
		// the id generated for the skipped insert is not the stored one
		*re = Reaction{}
		return tx.Where("user_id = ? AND feed_id = ?", userID, feedID).First(re).Error
	})
	return created, err
}
