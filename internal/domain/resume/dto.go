package resume

import (
	"jobvibe/internal/domain/auth"
	"jobvibe/internal/pkg/utils"
)

type CreateRequest struct {
	Title      string           `json:"title" validate:"required,max=200"`
	Summary    string           `json:"summary" validate:"max=5000"`
	Skills     utils.StringList `json:"skills"`
	Experience string           `json:"experience" validate:"max=60"`
	Location   string           `json:"location" validate:"max=120"`
	Details    map[string]any   `json:"details"`
}

type UpdateRequest struct {
	Title      *string           `json:"title" validate:"omitempty,min=1,max=200"`
	Summary    *string           `json:"summary" validate:"omitempty,max=5000"`
	Skills     *utils.StringList `json:"skills"`
	Experience *string           `json:"experience" validate:"omitempty,max=60"`
	Location   *string           `json:"location" validate:"omitempty,max=120"`
	Details    map[string]any    `json:"details"`
}

func (r UpdateRequest) fields() map[string]any {
	out := map[string]any{}
	if r.Title != nil {
		out["title"] = *r.Title
	}
	if r.Summary != nil {
		out["summary"] = *r.Summary
	}
	if r.Skills != nil {
		out["skills"] = *r.Skills
	}
	if r.Experience != nil {
		out["experience"] = *r.Experience
	}
	if r.Location != nil {
		out["location"] = *r.Location
	}
	if r.Details != nil {
		out["details"] = detailsMap(r.Details)
	}
	return out
}

// View makes the stored media paths absolute and names the owner.
type View struct {
	*Resume
	VideoURL    string        `json:"videoUrl,omitempty"`
	DocumentURL string        `json:"documentUrl,omitempty"`
	Owner       *auth.Summary `json:"owner,omitempty"`
}

func NewView(r *Resume, baseURL string) View {
	v := View{
		Resume:      r,
		VideoURL:    utils.AbsoluteURL(baseURL, r.VideoURL),
		DocumentURL: utils.AbsoluteURL(baseURL, r.DocumentURL),
	}
	if r.User != nil {
		s := r.User.Summarize(baseURL)
		v.Owner = &s
	}
	return v
}
