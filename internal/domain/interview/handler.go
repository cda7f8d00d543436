package interview

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

// Schedule books an interview for an application.
// @Summary		Schedule interview
// @Tags		Interviews
// @Security	BearerAuth
// @Param		body	body	ScheduleRequest	true	"payload"
// @Success		201	{object}		Interview
// @Router		/interviews [post]
func (h *Handler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	i, err := h.service.Schedule(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, "Interview scheduled successfully", i)
}

func (h *Handler) List(c *gin.Context) {
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	res, err := h.service.List(c.Request.Context(), middleware.UserID(c), middleware.IsAdmin(c), c.Query("status"), p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Interviews fetched successfully", res)
}

func (h *Handler) Get(c *gin.Context) {
	i, err := h.service.Get(c.Request.Context(), middleware.UserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Interview fetched successfully", i)
}

func (h *Handler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	i, err := h.service.Reschedule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Interview rescheduled successfully", i)
}

func (h *Handler) Cancel(c *gin.Context) {
	i, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Interview cancelled", i)
}

func (h *Handler) Complete(c *gin.Context) {
	i, err := h.service.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Interview completed", i)
}
