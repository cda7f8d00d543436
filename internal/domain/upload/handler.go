package upload

import (
	"mime/multipart"
	"net/http"
	"strings"

	"jobvibe/internal/middleware"
	"jobvibe/internal/pkg/response"
	"jobvibe/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) UploadImage(c *gin.Context)    { h.upload(c, ImagePolicy()) }
func (h *Handler) UploadVideo(c *gin.Context)    { h.upload(c, VideoPolicy()) }
func (h *Handler) UploadDocument(c *gin.Context) { h.upload(c, DocumentPolicy()) }

// UploadMany stores images and videos sent as files[].
func (h *Handler) UploadMany(c *gin.Context) { h.upload(c, MediaPolicy()) }

func (h *Handler) upload(c *gin.Context, p Policy) {
	files := FormFiles(c, "file", "files", "files[]")
	saved, err := h.service.Save(c.Request.Context(), middleware.UserID(c), files, p)
	if err != nil {
		response.Fail(c, err)
		return
	}

	base := middleware.PublicBase(c)
	views := make([]*View, 0, len(saved))
	for _, f := range saved {
		views = append(views, NewView(f, base))
	}

	if len(views) == 1 {
		response.Created(c, "File uploaded successfully", views[0])
		return
	}
	response.Created(c, "Files uploaded successfully", views)
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), middleware.UserID(c), c.Param("fileId"), middleware.IsAdmin(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "File deleted successfully", nil)
}

func (h *Handler) URL(c *gin.Context) {
	f, err := h.service.Get(c.Request.Context(), c.Param("fileId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	v := NewView(f, middleware.PublicBase(c))
	response.OK(c, "File URL fetched successfully", gin.H{"url": v.URL, "file": v})
}

// FormFiles collects multipart files from the first non-empty field.
func FormFiles(c *gin.Context, fields ...string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	for _, field := range fields {
		if files := form.File[field]; len(files) > 0 {
			return files
		}
	}
	return nil
}

// FormList reads a multi-valued form field sent as key, key[] or a JSON
// array in a single value.
func FormList(c *gin.Context, key string) []string {
	values := append(c.PostFormArray(key), c.PostFormArray(key+"[]")...)
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		return utils.StringToList(strings.TrimSpace(values[0]))
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// MaxBody limits multipart bodies before they are parsed.
func MaxBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
