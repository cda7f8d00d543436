package user

import (
	"jobvibe/internal/domain/auth"
	"jobvibe/internal/pkg/paginate"
	"jobvibe/internal/pkg/utils"
)

type ListRequest struct {
	Search string
	Role   string
	Status string
}

type Stats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalCandidates int64 `json:"totalCandidates"`
	TotalEmployers  int64 `json:"totalEmployers"`
}

type ListResponse struct {
	*paginate.Result[View]
	Stats Stats `json:"stats"`
}

// UpdateRequest changes only the fields that are present. Role, email and
// password are not editable here.
type UpdateRequest struct {
	Name          *string           `json:"name" validate:"omitempty,max=120"`
	Username      *string           `json:"username" validate:"omitempty,max=60"`
	PhoneNumber   *string           `json:"phone_number" validate:"omitempty,max=30"`
	CompanyName   *string           `json:"company_name" validate:"omitempty,max=200"`
	WorkPlaceName *string           `json:"work_place_name" validate:"omitempty,max=200"`
	AboutCompany  *string           `json:"about_company" validate:"omitempty,max=5000"`
	Designation   *string           `json:"designation" validate:"omitempty,max=120"`
	Experience    *string           `json:"experience" validate:"omitempty,max=60"`
	Location      *string           `json:"location" validate:"omitempty,max=120"`
	Skills        *utils.StringList `json:"skills"`
	FCMToken      *string           `json:"fcm_token"`
}

func (r UpdateRequest) fields() map[string]any {
	out := map[string]any{}
	for col, v := range map[string]*string{
		"name":            r.Name,
		"username":        r.Username,
		"phone_number":    r.PhoneNumber,
		"company_name":    r.CompanyName,
		"work_place_name": r.WorkPlaceName,
		"about_company":   r.AboutCompany,
		"designation":     r.Designation,
		"experience":      r.Experience,
		"location":        r.Location,
		"fcm_token":       r.FCMToken,
	} {
		if v != nil {
			out[col] = *v
		}
	}
	if r.Skills != nil {
		out["skills"] = *r.Skills
	}
	return out
}

type StatusRequest struct {
	Status   string `json:"status"`
	IsActive *bool  `json:"isActive"`
}

// View is a user as returned to clients, with the profile image absolute.
type View struct {
	*auth.User
	ProfileImage string `json:"profile_image,omitempty"`
}

func NewView(u *auth.User, baseURL string) View {
	return View{User: u, ProfileImage: utils.AbsoluteURL(baseURL, u.ProfileImage)}
}
