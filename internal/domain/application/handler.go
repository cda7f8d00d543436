package application

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

// Apply submits the caller's application to a job.
// @Summary		Apply to job
// @Tags		Applications
// @Security	BearerAuth
// @Param		body	body	ApplyRequest	true	"payload"
// @Success		201	{object}		View
// @Failure		409	{object}		response.Envelope
// @Router		/applications [post]
func (h *Handler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	v, err := h.service.Apply(c.Request.Context(), middleware.UserID(c), req, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, "Application submitted successfully", v)
}

func (h *Handler) Mine(c *gin.Context) {
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	res, err := h.service.Mine(c.Request.Context(), middleware.UserID(c), p, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Applications fetched successfully", res)
}

// Matches lists submitted applications with candidate and job details.
// @Summary		Matches
// @Tags		Applications
// @Security	BearerAuth
// @Param		status	query	string	false	"status or all"
// @Param		search	query	string	false	"candidate name, job title or company"
// @Param		page	query	int		false	"page"
// @Param		limit	query	int		false	"page size"
// @Router		/applications/matches [get]
func (h *Handler) Matches(c *gin.Context) {
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	req := MatchRequest{Status: c.Query("status"), Search: c.Query("search")}

	res, err := h.service.Matches(c.Request.Context(), req, p, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Matches fetched successfully", res)
}

func (h *Handler) ByJob(c *gin.Context) {
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	res, err := h.service.ByJob(c.Request.Context(), c.Param("jobId"), p, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Applications fetched successfully", res)
}

func (h *Handler) Get(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), middleware.UserID(c), middleware.IsAdmin(c), c.Param("id"), middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Application fetched successfully", v)
}

func (h *Handler) MatchScore(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), middleware.UserID(c), middleware.IsAdmin(c), c.Param("id"), "")
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Match score fetched successfully", gin.H{"id": v.ID, "score": v.MatchScore})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	v, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Application status updated successfully", v)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), middleware.IsAdmin(c), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Application deleted successfully", nil)
}
