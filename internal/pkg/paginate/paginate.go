package paginate

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const DefaultOrder = "created_at DESC"

type Pagination struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
}

type Result[T any] struct {
	Results    []T        `json:"results"`
	Pagination Pagination `json:"pagination"`
}

func NewPagination(total int64, p Params) Pagination {
	pages := 0
	if total > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Pagination{Total: total, TotalPages: pages, Page: p.Page, Limit: p.Limit}
}

// Query describes what to page over.
type Query struct {
	Filter *Filter
	// Scopes apply to both the count and the fetch (joins, soft filters).
	Scopes []func(*gorm.DB) *gorm.DB
	// Order defaults to newest first.
	Order    string
	Preloads []string
}

// Find counts every row matching q, then independently fetches page p.
// The two reads are not in a transaction.
func Find[T any](ctx context.Context, db *gorm.DB, p Params, q Query) (*Result[T], error) {
	base := func() *gorm.DB {
		tx := db.WithContext(ctx).Model(new(T)).Scopes(q.Scopes...)
		return tx.Scopes(q.Filter.Scope())
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	order := q.Order
	if order == "" {
		order = DefaultOrder
	}

	rows := make([]T, 0, p.Limit)
	if int64(p.Offset()) < total {
		tx := base().Order(order).Offset(p.Offset()).Limit(p.Limit)
		for _, assoc := range q.Preloads {
			tx = tx.Preload(assoc)
		}
		if err := tx.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("fetch page: %w", err)
		}
	}

	return &Result[T]{Results: rows, Pagination: NewPagination(total, p)}, nil
}

// Map converts the rows of r, keeping its pagination.
func Map[T, U any](r *Result[T], fn func(T) U) *Result[U] {
	out := make([]U, 0, len(r.Results))
	for _, row := range r.Results {
		out = append(out, fn(row))
	}
	return &Result[U]{Results: out, Pagination: r.Pagination}
}

// Slice pages an in-memory list. Used where rows are merged from several
// sources before paging.
func Slice[T any](all []T, p Params) *Result[T] {
	total := int64(len(all))
	start := p.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}
	page := make([]T, end-start)
	copy(page, all[start:end])
	return &Result[T]{Results: page, Pagination: NewPagination(total, p)}
}
