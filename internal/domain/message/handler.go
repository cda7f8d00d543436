package message

import (
	"net/http"

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

func (h *Handler) Conversations(c *gin.Context) {
	out, err := h.service.Conversations(c.Request.Context(), middleware.UserID(c), middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Conversations fetched successfully", gin.H{"items": out})
}

// Messages pages one conversation, newest first.
// @Summary		Conversation messages
// @Tags		Messages
// @Security	BearerAuth
// @Param		id		path	string	true	"conversation id"
// @Param		page	query	int		false	"page"
// @Param		limit	query	int		false	"page size"
// @Router		/messages/{id} [get]
func (h *Handler) Messages(c *gin.Context) {
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	res, err := h.service.Messages(c.Request.Context(), middleware.UserID(c), c.Param("id"), p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Messages fetched successfully", res)
}

// Send stores a direct message and pushes it to the recipient.
// @Summary		Send message
// @Tags		Messages
// @Security	BearerAuth
// @Param		body	body	SendRequest	true	"message"
// @Success		201	{object}		Message
// @Router		/messages [post]
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

	m, err := h.service.Send(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, "Message sent successfully", m)
}

func (h *Handler) MarkRead(c *gin.Context) {
	m, err := h.service.MarkRead(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Message marked as read", m)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	n, err := h.service.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Unread count fetched successfully", gin.H{"unreadCount": n})
}
