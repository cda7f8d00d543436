package admin

import (
	"context"

	"jobvibe/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Dashboard returns the headline counts.
// @Summary		Admin dashboard
// @Tags		Admin
// @Security	BearerAuth
// @Success		200	{object}		Dashboard
// @Router		/admin/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	serve(c, "Dashboard fetched successfully", h.service.Dashboard)
}

func (h *Handler) Users(c *gin.Context) {
	serve(c, "User stats fetched successfully", h.service.Users)
}

func (h *Handler) Jobs(c *gin.Context) {
	serve(c, "Job stats fetched successfully", h.service.Jobs)
}

func (h *Handler) Applications(c *gin.Context) {
	serve(c, "Application stats fetched successfully", h.service.Applications)
}

func (h *Handler) Activities(c *gin.Context) {
	items, err := h.service.Activities(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Activities fetched successfully", gin.H{"items": items})
}

func (h *Handler) SystemHealth(c *gin.Context) {
	response.OK(c, "System health fetched successfully", h.service.SystemHealth(c.Request.Context()))
}

func serve[T any](c *gin.Context, message string, fn func(context.Context) (T, error)) {
	v, err := fn(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, message, v)
}
