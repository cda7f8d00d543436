package paginate

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// Filter is a conjunction of predicates. Column names always come from
// code, values are bound as parameters.
type Filter struct {
	scopes []func(*gorm.DB) *gorm.DB
}

func NewFilter() *Filter { return &Filter{} }

func (f *Filter) add(fn func(*gorm.DB) *gorm.DB) *Filter {
	f.scopes = append(f.scopes, fn)
	return f
}

func (f *Filter) Where(query string, args ...any) *Filter {
	return f.add(func(db *gorm.DB) *gorm.DB { return db.Where(query, args...) })
}

func (f *Filter) Eq(column string, value any) *Filter {
	return f.Where(column+" = ?", value)
}

func (f *Filter) Ne(column string, value any) *Filter {
	return f.Where(column+" <> ?", value)
}

// In is skipped when values is empty.
func (f *Filter) In(column string, values []string) *Filter {
	if len(values) == 0 {
		return f
	}
	return f.Where(column+" IN ?", values)
}

// Contains matches term case-insensitively as a substring of any column.
// A blank term adds nothing.
func (f *Filter) Contains(term string, columns ...string) *Filter {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return f
	}
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	clauses := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		clauses = append(clauses, "LOWER("+col+") LIKE ? ESCAPE '!'")
		args = append(args, pattern)
	}
	return f.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// Range bounds column inclusively. Nil bounds are open.
func (f *Filter) Range(column string, lo, hi *float64) *Filter {
	if lo != nil {
		f.Where(column+" >= ?", *lo)
	}
	if hi != nil {
		f.Where(column+" <= ?", *hi)
	}
	return f
}

// HasAny matches rows whose JSON list column holds at least one of values.
func (f *Filter) HasAny(column string, values []string) *Filter {
	if len(values) == 0 {
		return f
	}
	clauses := make([]string, 0, len(values))
	args := make([]any, 0, len(values))
	for _, v := range values {
		encoded, _ := json.Marshal(v)
		clauses = append(clauses, column+" LIKE ? ESCAPE '!'")
		args = append(args, "%"+escapeLike(string(encoded))+"%")
	}
	return f.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

func (f *Filter) Len() int { return len(f.scopes) }

// Scope returns the filter as a gorm scope.
func (f *Filter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f == nil {
			return db
		}
		for _, fn := range f.scopes {
			db = fn(db)
		}
		return db
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
