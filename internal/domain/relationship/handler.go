package relationship

import (
	"net/http"

	"jobvibe/internal/middleware"
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

// Block stops direct messages between the caller and another user.
// @Summary		Block a user
// @Tags		Relationships
// @Security	BearerAuth
// @Param		body	body	BlockRequest	true	"user to block"
// @Router		/relationships/block [post]
func (h *Handler) Block(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	if err := h.service.Block(c.Request.Context(), middleware.UserID(c), req.UserID); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "User blocked", nil)
}

func (h *Handler) Unblock(c *gin.Context) {
	if err := h.service.Unblock(c.Request.Context(), middleware.UserID(c), c.Param("userId")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "User unblocked", nil)
}

func (h *Handler) ListBlocked(c *gin.Context) {
	items, err := h.service.ListBlocked(c.Request.Context(), middleware.UserID(c), middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Blocked users fetched successfully", items)
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	rel := protected.Group("/relationships")
	{
		rel.POST("/block", h.Block)
		rel.DELETE("/block/:userId", h.Unblock)
		rel.GET("/blocked", h.ListBlocked)
	}
}
