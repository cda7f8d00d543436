package job

import "jobvibe/internal/pkg/utils"

type ListRequest struct {
	Status  string
	Search  string
	JobType string
	Source  string
}

// UpdateRequest changes only the fields that are present.
type UpdateRequest struct {
	Title             *string           `json:"title" validate:"omitempty,max=200"`
	Content           *string           `json:"content" validate:"omitempty,max=5000"`
	JobTitle          *utils.StringList `json:"job_title"`
	JobType           *string           `json:"job_type" validate:"omitempty,max=50"`
	WorkPlaceName     *string           `json:"work_place_name" validate:"omitempty,max=200"`
	CompanyName       *string           `json:"company_name" validate:"omitempty,max=200"`
	Cities            *utils.StringList `json:"cities"`
	States            *utils.StringList `json:"states"`
	Skills            *utils.StringList `json:"skills"`
	Source            *string           `json:"source" validate:"omitempty,max=50"`
	NoticePeriod      *string           `json:"notice_period" validate:"omitempty,max=50"`
	IsImmediateJoiner *bool             `json:"is_immediate_joiner"`
	Media             *utils.StringList `json:"media"`
}

func (r UpdateRequest) fields() map[string]any {
	out := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			out[col] = *v
		}
	}
	setList := func(col string, v *utils.StringList) {
		if v != nil {
			out[col] = *v
		}
	}
	set("title", r.Title)
	set("content", r.Content)
	set("job_type", r.JobType)
	set("work_place_name", r.WorkPlaceName)
	set("company_name", r.CompanyName)
	set("source", r.Source)
	set("notice_period", r.NoticePeriod)
	setList("job_title", r.JobTitle)
	setList("cities", r.Cities)
	setList("states", r.States)
	setList("skills", r.Skills)
	setList("media", r.Media)
	if r.IsImmediateJoiner != nil {
		out["is_immediate_joiner"] = *r.IsImmediateJoiner
	}
	return out
}
