package feed

import (
	"jobvibe/internal/domain/auth"
	"jobvibe/internal/pkg/utils"
)

// ListRequest is the JSON body of POST /feed.
type ListRequest struct {
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	Search   string           `json:"search"`
	State    utils.StringList `json:"state"`
	City     utils.StringList `json:"city"`
	JobTitle utils.StringList `json:"job_title"`
	JobType  utils.StringList `json:"job_type"`
}

// CreateRequest carries the text fields of a new feed. Media arrive as
// multipart files.
type CreateRequest struct {
	Title             string           `json:"title" validate:"max=200"`
	Content           string           `json:"content" validate:"max=5000"`
	JobTitle          utils.StringList `json:"job_title"`
	JobType           string           `json:"job_type" validate:"max=50"`
	WorkPlaceName     string           `json:"work_place_name" validate:"max=200"`
	CompanyName       string           `json:"company_name" validate:"max=200"`
	Cities            utils.StringList `json:"cities"`
	States            utils.StringList `json:"states"`
	Skills            utils.StringList `json:"skills"`
	Source            string           `json:"source" validate:"max=50"`
	NoticePeriod      string           `json:"notice_period" validate:"max=50"`
	IsImmediateJoiner bool             `json:"is_immediate_joiner"`
}

type ReactRequest struct {
	RatingValue *float64 `json:"ratingValue"`
	Type        string   `json:"type" validate:"max=30"`
}

type ReactedRequest struct {
	Page      int
	Limit     int
	Search    string
	MinRating *float64
	MaxRating *float64
}

// View is a feed as returned to clients. RatingValue is 0 until the
// requester reacts.
type View struct {
	*Feed
	Media         []string      `json:"media"`
	IsReacted     bool          `json:"isReacted"`
	RatingValue   float64       `json:"ratingValue"`
	AuthorDetails *auth.Summary `json:"authorDetails"`
}

// NewView decorates f. r is the requester's reaction, if any.
func NewView(f *Feed, r *Reaction, baseURL string) View {
	v := View{
		Feed:  f,
		Media: utils.AbsoluteURLs(baseURL, f.Media),
	}
	if r != nil {
		v.IsReacted = true
		v.RatingValue = r.RatingValue
	}
	if f.Author != nil {
		s := f.Author.Summarize(baseURL)
		v.AuthorDetails = &s
	}
	return v
}
