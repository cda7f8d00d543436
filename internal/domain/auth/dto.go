package auth

type RegisterRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Username    string `json:"username" validate:"omitempty,max=60"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        Role   `json:"role" validate:"omitempty,oneof=candidate employer"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=30"`
	CompanyName string `json:"company_name" validate:"omitempty,max=200"`
	FCMToken    string `json:"fcm_token"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FCMToken string `json:"fcm_token"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
