package application

import (
	"time"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/feed"
	"jobvibe/internal/pkg/utils"
)

const (
	unknownCandidate = "Unknown"
	unknownPosition  = "Unknown Position"
	unknownCompany   = "Unknown Company"
)

type ApplyRequest struct {
	FeedID      string   `json:"feedId" validate:"required"`
	MatchScore  *float64 `json:"matchScore"`
	CoverLetter string   `json:"coverLetter" validate:"max=5000"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type MatchRequest struct {
	Status string
	Search string
}

type Candidate struct {
	auth.Summary
	Email      string           `json:"email"`
	Experience string           `json:"experience,omitempty"`
	Skills     utils.StringList `json:"skills"`
}

// View is an application flattened with its candidate and job.
type View struct {
	ID                 string     `json:"_id"`
	UserID             string     `json:"userId"`
	FeedID             string     `json:"feedId"`
	Status             Status     `json:"status"`
	IsApplied          bool       `json:"is_applied"`
	CreatedAt          time.Time  `json:"createdAt"`
	AppliedDate        time.Time  `json:"appliedDate"`
	Candidate          *Candidate `json:"candidate,omitempty"`
	CandidateName      string     `json:"candidateName"`
	CandidateEmail     string     `json:"candidateEmail"`
	Job                *feed.View `json:"job,omitempty"`
	JobTitle           string     `json:"jobTitle"`
	Company            string     `json:"company"`
	MatchScore         float64    `json:"matchScore"`
	InterviewScheduled bool       `json:"interviewScheduled"`
	CoverLetter        string     `json:"coverLetter,omitempty"`
}

func NewView(a *Application, baseURL string) View {
	v := View{
		ID:                 a.ID,
		UserID:             a.UserID,
		FeedID:             a.FeedID,
		Status:             a.EffectiveStatus(),
		IsApplied:          a.IsApplied,
		CreatedAt:          a.CreatedAt,
		AppliedDate:        a.CreatedAt,
		CandidateName:      unknownCandidate,
		JobTitle:           unknownPosition,
		Company:            unknownCompany,
		MatchScore:         a.MatchScore,
		InterviewScheduled: a.InterviewScheduled || a.Status == StatusInterview,
		CoverLetter:        a.CoverLetter,
	}

	if u := a.User; u != nil {
		v.Candidate = &Candidate{
			Summary:    u.Summarize(baseURL),
			Email:      u.Email,
			Experience: u.Experience,
			Skills:     u.Skills,
		}
		if name := u.DisplayName(); name != "" {
			v.CandidateName = name
		}
		v.CandidateEmail = u.Email
	}

	if f := a.Feed; f != nil {
		job := feed.NewView(f, nil, baseURL)
		v.Job = &job
		if t := f.JobTitle.First(); t != "" {
			v.JobTitle = t
		}
		switch {
		case f.CompanyName != "":
			v.Company = f.CompanyName
		case f.WorkPlaceName != "":
			v.Company = f.WorkPlaceName
		}
	}
	return v
}
