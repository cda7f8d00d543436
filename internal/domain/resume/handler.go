package resume

import (
	"mime/multipart"
	"net/http"

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

// List pages every resume for admins.
// @Summary		List resumes
// @Tags		Resumes
// @Security	BearerAuth
// @Param		search	query	string	false	"title, summary, skills or location"
// @Param		q		query	string	false	"alias of search"
// @Router		/resumes [get]
func (h *Handler) List(c *gin.Context) {
	search := c.Query("search")
	if search == "" {
		search = c.Query("q")
	}
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	res, err := h.service.List(c.Request.Context(), search, p, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Resumes fetched successfully", res)
}

func (h *Handler) ByUser(c *gin.Context) {
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	res, err := h.service.ByUser(c.Request.Context(), c.Param("userId"), p, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Resumes fetched successfully", res)
}

func (h *Handler) Get(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), c.Param("id"), middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Resume fetched successfully", v)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	v, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, "Resume created successfully", v)
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

	v, err := h.service.Update(c.Request.Context(), middleware.UserID(c), middleware.IsAdmin(c), c.Param("id"), req, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Resume updated successfully", v)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), middleware.IsAdmin(c), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Resume deleted successfully", nil)
}

func (h *Handler) UploadVideo(c *gin.Context) {
	fh := first(upload.FormFiles(c, "video", "file"))
	v, err := h.service.UploadVideo(c.Request.Context(), middleware.UserID(c), c.Param("id"), fh, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Video uploaded successfully", v)
}

func (h *Handler) UploadDocument(c *gin.Context) {
	fh := first(upload.FormFiles(c, "document", "resume", "file"))
	v, err := h.service.UploadDocument(c.Request.Context(), middleware.UserID(c), c.Param("id"), fh, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Document uploaded successfully", v)
}

// Download redirects to the stored resume document.
// @Summary		Download resume
// @Tags		Resumes
// @Security	BearerAuth
// @Param		id	path	string	true	"resume id"
// @Success		302
// @Router		/resumes/{id}/download [get]
func (h *Handler) Download(c *gin.Context) {
	url, err := h.service.DownloadURL(c.Request.Context(), c.Param("id"), middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

func first(files []*multipart.FileHeader) *multipart.FileHeader {
	if len(files) == 0 {
		return nil
	}
	return files[0]
}
