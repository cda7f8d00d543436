package user

import (
	"context"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/pkg/paginate"

	"gorm.io/gorm"
)

var searchColumns = []string{"name", "email", "username"}

type Query struct {
	Search string
	Roles  []auth.Role
	Status auth.UserStatus
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, q Query, p paginate.Params) (*paginate.Result[auth.User], error) {
	f := paginate.NewFilter().Contains(q.Search, searchColumns...)
	if len(q.Roles) > 0 {
		roles := make([]string, len(q.Roles))
		for i, role := range q.Roles {
			roles[i] = string(role)
		}
		f.In("role", roles)
	}
	if q.Status != "" {
		f.Eq("status", q.Status)
	}
	return paginate.Find[auth.User](ctx, r.db, p, paginate.Query{Filter: f})
}

// Stats counts all users and the two member roles in one query.
func (r *Repository) Stats(ctx context.Context) (Stats, error) {
	var rows []struct {
		Role  auth.Role
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&auth.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return Stats{}, err
	}

	var s Stats
	for _, row := range rows {
		s.TotalUsers += row.Count
		switch row.Role {
		case auth.RoleCandidate:
			s.TotalCandidates = row.Count
		case auth.RoleEmployer:
			s.TotalEmployers = row.Count
		}
	}
	return s, nil
}
