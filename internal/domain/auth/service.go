package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute
)

// Service contains all business logic for authentication
type Service struct {
	users  UserRepository
	tokens TokenIssuer
	now    Clock
}

func NewService(users UserRepository, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens, now: time.Now}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	role := req.Role
	if role == "" {
		role = RoleCandidate
	}
	if role == RoleAdmin || !role.Valid() {
		return nil, ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:         strings.TrimSpace(req.Name),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		IsActive:     true,
		Status:       StatusActive,
		CompanyName:  req.CompanyName,
		FCMToken:     req.FCMToken,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	now := s.now()
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, ErrAccountLocked
	}

	ok, err := CheckPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		failed := user.FailedLoginAttempts + 1
		updates := map[string]any{"failed_login_attempts": failed}
		if failed >= maxFailedLoginAttempts {
			updates["locked_until"] = now.Add(lockoutDuration)
		}
		if err := s.users.Update(ctx, user.ID, updates); err != nil {
			return nil, err
		}
		if failed >= maxFailedLoginAttempts {
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive || user.Status == StatusInactive {
		return nil, ErrAccountInactive
	}

	updates := map[string]any{
		"failed_login_attempts": 0,
		"locked_until":          nil,
		"last_login_at":         now,
	}
	if req.FCMToken != "" {
		updates["fcm_token"] = req.FCMToken
	}
	if err := s.users.Update(ctx, user.ID, updates); err != nil {
		return nil, err
	}
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLoginAt = &now

	return s.issue(user)
}

func (s *Service) Me(ctx context.Context, userID string) (*User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	ok, err := CheckPassword(current, user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongPassword
	}

	hash, err := HashPassword(next)
	if err != nil {
		return err
	}
	return s.users.Update(ctx, userID, map[string]any{"password_hash": hash})
}

func (s *Service) issue(user *User) (*AuthResult, error) {
	token, err := s.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}
