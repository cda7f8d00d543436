package report

import (
	"strings"
	"time"

	"jobvibe/internal/pkg/apperr"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidRange = apperr.Validation("from must be before to")
	ErrInvalidDate  = apperr.Validation("Dates must be YYYY-MM-DD or RFC3339")
	ErrUnknownType  = apperr.Validation("Report type must be users, jobs or applications")
)

type Type string

const (
	TypeUsers        Type = "users"
	TypeJobs         Type = "jobs"
	TypeApplications Type = "applications"
)

func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeUsers, TypeJobs, TypeApplications:
		return t, nil
	}
	return "", ErrUnknownType
}

// Range bounds created_at. A zero bound is open.
type Range struct {
	From time.Time `json:"from,omitempty"`
	To   time.Time `json:"to,omitempty"`
}

type RangeRequest struct {
	From string `json:"from" form:"from"`
	To   string `json:"to" form:"to"`
}

// ParseRange accepts dates or timestamps. A bare date as the upper bound
// covers that whole day.
func ParseRange(from, to string) (Range, error) {
	var r Range
	var err error
	if r.From, _, err = parseTime(from); err != nil {
		return r, err
	}
	var dateOnly bool
	if r.To, dateOnly, err = parseTime(to); err != nil {
		return r, err
	}
	if dateOnly {
		r.To = r.To.Add(24*time.Hour - time.Nanosecond)
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return r, ErrInvalidRange
	}
	return r, nil
}

func parseTime(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, ErrInvalidDate
	}
	return t, false, nil
}

type Summary struct {
	Range        Range            `json:"range"`
	Users        map[string]int64 `json:"users"`
	Jobs         map[string]int64 `json:"jobs"`
	Applications map[string]int64 `json:"applications"`
	Totals       Totals           `json:"totals"`
}

type Totals struct {
	Users        int64 `json:"users"`
	Jobs         int64 `json:"jobs"`
	Applications int64 `json:"applications"`
}

func sum(m map[string]int64) int64 {
	var n int64
	for _, v := range m {
		n += v
	}
	return n
}

// Table is a report rendered as rows of strings, header first.
type Table struct {
	Header []string
	Rows   [][]string
}

// Records maps each row onto its header for JSON output.
func (t Table) Records() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Header))
		for i, h := range t.Header {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out
}
