package notification

import (
	"net/http"
	"strconv"

	"jobvibe/internal/middleware"
	"jobvibe/internal/pkg/paginate"
	"jobvibe/internal/pkg/response"
	"jobvibe/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns the caller's notifications, newest first.
// @Summary		List notifications
// @Tags		Notifications
// @Security	BearerAuth
// @Param		page	query	int		false	"page (default 1)"
// @Param		limit	query	int		false	"page size (default 10, max 100)"
// @Param		unread	query	bool	false	"only unread"
// @Success		200	{object}		ListResponse
// @Router		/notifications [get]
func (h *Handler) List(c *gin.Context) {
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))

	res, err := h.service.List(c.Request.Context(), middleware.UserID(c), unreadOnly, p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Notifications fetched successfully", res)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	n, err := h.service.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Unread count fetched successfully", gin.H{"unreadCount": n})
}

// MarkRead marks one notification as read.
// @Summary		Mark notification read
// @Tags		Notifications
// @Security	BearerAuth
// @Param		id	path	string	true	"notification id"
// @Router		/notifications/{id}/read [patch]
func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.service.MarkRead(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Notification marked as read", nil)
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	n, err := h.service.MarkAllRead(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "All notifications marked as read", gin.H{"updated": n})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Notification deleted successfully", nil)
}

// Send lets an admin notify one user or a whole role.
// @Summary		Send notification
// @Tags		Notifications
// @Security	BearerAuth
// @Param		body	body	SendRequest	true	"payload"
// @Router		/notifications [post]
func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	n, err := h.service.Send(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, "Notification sent successfully", n)
}
