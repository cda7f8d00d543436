// Package settings serves the caller's account preferences and password.
package settings

import (
	"context"
	"net/http"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/middleware"
	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/response"
	"jobvibe/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

var ErrSamePassword = apperr.Validation("New password must differ from the current one")

type UserStore interface {
	GetByID(ctx context.Context, id string) (*auth.User, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID, current, next string) error
}

type Settings struct {
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phone_number,omitempty"`
	Role        auth.Role      `json:"role"`
	Preferences map[string]any `json:"preferences"`
}

type PasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

type Service struct {
	users     UserStore
	passwords PasswordChanger
}

func NewService(users UserStore, passwords PasswordChanger) *Service {
	return &Service{users: users, passwords: passwords}
}

func (s *Service) Get(ctx context.Context, userID string) (*Settings, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs := map[string]any(u.Preferences)
	if prefs == nil {
		prefs = map[string]any{}
	}
	return &Settings{Email: u.Email, PhoneNumber: u.PhoneNumber, Role: u.Role, Preferences: prefs}, nil
}

// UpdatePreferences merges patch into the stored preferences one key
// deep. A null value removes the key.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, patch map[string]any) (*Settings, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := datatypes.JSONMap{}
	for k, v := range u.Preferences {
		merged[k] = v
	}
	for k, v := range patch {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	if err := s.users.Update(ctx, userID, map[string]any{"preferences": merged}); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.Get(ctx, userID)
}

func (s *Service) ChangePassword(ctx context.Context, userID string, req PasswordRequest) error {
	if req.CurrentPassword == req.NewPassword {
		return ErrSamePassword
	}
	return s.passwords.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword)
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	st, err := h.service.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Settings fetched successfully", st)
}

// Update accepts either {"preferences": {...}} or the preference object
// itself.
// @Summary		Update preferences
// @Tags		Settings
// @Security	BearerAuth
// @Router		/settings [put]
func (h *Handler) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if nested, ok := body["preferences"].(map[string]any); ok && len(body) == 1 {
		body = nested
	}

	st, err := h.service.UpdatePreferences(c.Request.Context(), middleware.UserID(c), body)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Settings updated successfully", st)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), middleware.UserID(c), req); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Password changed successfully", nil)
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	settings := protected.Group("/settings")
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Update)
		settings.GET("/preferences", h.Get)
		settings.PUT("/preferences", h.Update)
		settings.PUT("/password", h.ChangePassword)
		settings.POST("/password", h.ChangePassword)
	}
}
