package paginate

import (
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a clamped page request. Use NewParams or Parse; the zero
// value is not valid.
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewParams clamps page and limit to at least 1 and limit to MaxLimit.
// Out-of-range values are never an error.
func NewParams(page, limit int) Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Parse reads raw query values. Missing or unparseable values fall back
// to the defaults, parsed values are clamped.
func Parse(page, limit string) Params {
	return NewParams(atoiDefault(page, DefaultPage), atoiDefault(limit, DefaultLimit))
}

// Normalize applies defaults to values bound from a JSON body, where 0
// means "absent".
func Normalize(page, limit int) Params {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	return NewParams(page, limit)
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

func atoiDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
