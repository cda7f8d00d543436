package job

import (
	"context"
	"net/http"

	"jobvibe/internal/domain/feed"
	"jobvibe/internal/domain/upload"
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

// List pages all jobs for moderation.
// @Summary		List jobs
// @Tags		Jobs
// @Security	BearerAuth
// @Param		status		query	string	false	"open, paused, approved or rejected"
// @Param		search		query	string	false	"title, content, company, job title or skills"
// @Param		job_type	query	string	false	"job type"
// @Param		source		query	string	false	"source"
// @Param		page		query	int		false	"page"
// @Param		limit		query	int		false	"page size"
// @Router		/jobs [get]
func (h *Handler) List(c *gin.Context) {
	h.list(c, ListRequest{
		Status:  c.Query("status"),
		Search:  firstNonEmpty(c.Query("search"), c.Query("q")),
		JobType: c.Query("job_type"),
		Source:  c.Query("source"),
	})
}

func (h *Handler) Active(c *gin.Context) {
	h.list(c, ListRequest{Status: string(feed.StatusOpen), Search: c.Query("search")})
}

func (h *Handler) Draft(c *gin.Context) {
	h.list(c, ListRequest{Status: string(feed.StatusPaused), Search: c.Query("search")})
}

func (h *Handler) Search(c *gin.Context) {
	h.list(c, ListRequest{Search: firstNonEmpty(c.Query("q"), c.Query("search")), Status: c.Query("status")})
}

func (h *Handler) list(c *gin.Context, req ListRequest) {
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	res, err := h.service.List(c.Request.Context(), req, p, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Jobs fetched successfully", res)
}

func (h *Handler) Get(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), c.Param("id"), middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Job fetched successfully", v)
}

// Create adds a job with optional video media.
// @Summary		Create job
// @Tags		Jobs
// @Security	BearerAuth
// @Accept		multipart/form-data
// @Param		media	formData	file	false	"up to 5 videos"
// @Router		/jobs [post]
func (h *Handler) Create(c *gin.Context) {
	req, ok := feed.BindCreate(c)
	if !ok {
		return
	}
	files := upload.FormFiles(c, "media", "media[]", "files")

	v, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req, files, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, "Job created successfully", v)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	v, err := h.service.Update(c.Request.Context(), c.Param("id"), req, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Job updated successfully", v)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Job deleted successfully", nil)
}

func (h *Handler) Publish(c *gin.Context) {
	h.respond(c, "Job published", h.service.Publish)
}

func (h *Handler) Unpublish(c *gin.Context) {
	h.respond(c, "Job unpublished", h.service.Unpublish)
}

func (h *Handler) Accept(c *gin.Context) {
	h.respond(c, "Job approved", h.service.Accept)
}

func (h *Handler) Reject(c *gin.Context) {
	h.respond(c, "Job rejected", h.service.Reject)
}

func (h *Handler) respond(c *gin.Context, message string, fn func(ctx context.Context, id, baseURL string) (*feed.View, error)) {
	v, err := fn(c.Request.Context(), c.Param("id"), middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, message, v)
}

func (h *Handler) UploadVideos(c *gin.Context) {
	files := upload.FormFiles(c, "videos", "video", "media", "files")
	views, err := h.service.UploadVideos(c.Request.Context(), c.Param("id"), middleware.UserID(c), files, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, "Video(s) uploaded successfully", views)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
