package auth

import (
	"time"

	"jobvibe/internal/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleEmployer || r == RoleAdmin
}

// Counterpart is the role whose feeds r is allowed to see. Admins have none.
func (r Role) Counterpart() (Role, bool) {
	switch r {
	case RoleCandidate:
		return RoleEmployer, true
	case RoleEmployer:
		return RoleCandidate, true
	}
	return "", false
}

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

type User struct {
	ID                  string            `gorm:"type:varchar(36);primaryKey" json:"_id"`
	Name                string            `gorm:"size:120" json:"name"`
	Username            string            `gorm:"size:60;index" json:"username"`
	Email               string            `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash        string            `gorm:"not null" json:"-"`
	PhoneNumber         string            `gorm:"size:30" json:"phone_number,omitempty"`
	Role                Role              `gorm:"size:20;index;not null" json:"role"`
	IsActive            bool              `gorm:"not null;default:true" json:"isActive"`
	Status              UserStatus        `gorm:"size:20;not null;default:active" json:"status"`
	FCMToken            string            `gorm:"column:fcm_token" json:"fcm_token,omitempty"`
	ProfileImage        string            `json:"profile_image,omitempty"`
	CompanyName         string            `gorm:"size:200" json:"company_name,omitempty"`
	WorkPlaceName       string            `gorm:"size:200" json:"work_place_name,omitempty"`
	AboutCompany        string            `gorm:"type:text" json:"about_company,omitempty"`
	Designation         string            `gorm:"size:120" json:"designation,omitempty"`
	Experience          string            `gorm:"size:60" json:"experience,omitempty"`
	Skills              utils.StringList  `json:"skills"`
	Location            string            `gorm:"size:120" json:"location,omitempty"`
	IsFeedPosted        bool              `gorm:"not null;default:false" json:"is_feed_posted"`
	Preferences         datatypes.JSONMap `json:"preferences,omitempty"`
	FailedLoginAttempts int               `gorm:"not null;default:0" json:"-"`
	LockedUntil         *time.Time        `json:"-"`
	LastLoginAt         *time.Time        `json:"lastLoginAt,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	return nil
}

// DisplayName falls back from name to username.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// Summary is the public shape of a user embedded in other payloads.
type Summary struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	Role          Role   `json:"role"`
	ProfileImage  string `json:"profile_image,omitempty"`
	CompanyName   string `json:"company_name,omitempty"`
	WorkPlaceName string `json:"work_place_name,omitempty"`
	Designation   string `json:"designation,omitempty"`
}

// Summarize builds a Summary with the profile image made absolute.
func (u *User) Summarize(baseURL string) Summary {
	return Summary{
		ID:            u.ID,
		Name:          u.Name,
		Username:      u.Username,
		Role:          u.Role,
		ProfileImage:  utils.AbsoluteURL(baseURL, u.ProfileImage),
		CompanyName:   u.CompanyName,
		WorkPlaceName: u.WorkPlaceName,
		Designation:   u.Designation,
	}
}
