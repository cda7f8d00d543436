package report

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"jobvibe/internal/domain/application"
	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/feed"
	"jobvibe/internal/pkg/apperr"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context, rg Range) (*Summary, error) {
	sum, err := s.repo.Summary(ctx, rg)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return sum, nil
}

// Table builds the rows of one report type within rg, newest first.
func (s *Service) Table(ctx context.Context, t Type, rg Range) (Table, error) {
	switch t {
	case TypeUsers:
		users, err := s.repo.Users(ctx, rg)
		if err != nil {
			return Table{}, apperr.Internal(err)
		}
		return userTable(users), nil
	case TypeJobs:
		feeds, err := s.repo.Jobs(ctx, rg)
		if err != nil {
			return Table{}, apperr.Internal(err)
		}
		return jobTable(feeds), nil
	case TypeApplications:
		apps, err := s.repo.Applications(ctx, rg)
		if err != nil {
			return Table{}, apperr.Internal(err)
		}
		return applicationTable(apps), nil
	}
	return Table{}, ErrUnknownType
}

// WriteCSV renders t with a header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func userTable(users []auth.User) Table {
	t := Table{Header: []string{"id", "name", "username", "email", "role", "status", "active", "company", "created_at"}}
	for _, u := range users {
		t.Rows = append(t.Rows, []string{
			u.ID, u.Name, u.Username, u.Email, string(u.Role), string(u.Status),
			strconv.FormatBool(u.IsActive), u.CompanyName, stamp(u.CreatedAt),
		})
	}
	return t
}

func jobTable(feeds []feed.Feed) Table {
	t := Table{Header: []string{"id", "title", "author", "company", "job_type", "status", "reactions", "created_at"}}
	for _, f := range feeds {
		title := f.Title
		if title == "" {
			title = strings.Join(f.JobTitle, ", ")
		}
		author := ""
		if f.Author != nil {
			author = f.Author.DisplayName()
		}
		status := string(f.Status)
		if status == "" {
			status = "draft"
		}
		t.Rows = append(t.Rows, []string{
			f.ID, title, author, f.CompanyName, f.JobType, status,
			strconv.FormatInt(f.NoOfReactions, 10), stamp(f.CreatedAt),
		})
	}
	return t
}

func applicationTable(apps []application.Application) Table {
	t := Table{Header: []string{"id", "candidate", "email", "job", "status", "match_score", "interview_scheduled", "created_at"}}
	for _, a := range apps {
		var candidate, email, job string
		if a.User != nil {
			candidate, email = a.User.DisplayName(), a.User.Email
		}
		if a.Feed != nil {
			job = a.Feed.Title
			if job == "" {
				job = strings.Join(a.Feed.JobTitle, ", ")
			}
		}
		status := string(a.Status)
		if status == "" {
			status = string(application.StatusPending)
		}
		t.Rows = append(t.Rows, []string{
			a.ID, candidate, email, job, status,
			strconv.FormatFloat(a.MatchScore, 'f', -1, 64),
			strconv.FormatBool(a.InterviewScheduled), stamp(a.CreatedAt),
		})
	}
	return t
}
