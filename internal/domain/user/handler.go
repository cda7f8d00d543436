package user

import (
	"mime/multipart"
	"net/http"

	"jobvibe/internal/domain/auth"
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

// List pages all users with role totals.
// @Summary		List users
// @Tags		Users
// @Security	BearerAuth
// @Param		search	query	string	false	"name, email or username"
// @Param		role	query	string	false	"candidate, employer or admin"
// @Param		status	query	string	false	"active or inactive"
// @Param		page	query	int		false	"page"
// @Param		limit	query	int		false	"page size"
// @Success		200	{object}		ListResponse
// @Router		/users [get]
func (h *Handler) List(c *gin.Context) {
	req := ListRequest{Search: c.Query("search"), Role: c.Query("role"), Status: c.Query("status")}
	p := paginate.Parse(c.Query("page"), c.Query("limit"))

	res, err := h.service.List(c.Request.Context(), req, p, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Users fetched successfully", res)
}

func (h *Handler) Candidates(c *gin.Context) { h.byRole(c, auth.RoleCandidate) }

// Employers serves both the hr-managers and recruiters listings.
func (h *Handler) Employers(c *gin.Context) { h.byRole(c, auth.RoleEmployer) }

func (h *Handler) byRole(c *gin.Context, role auth.Role) {
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	res, err := h.service.ByRole(c.Request.Context(), role, c.Query("search"), p, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Users fetched successfully", res)
}

func (h *Handler) Profile(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), middleware.UserID(c), middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Profile fetched successfully", v)
}

// UpdateProfile edits the caller's own profile.
// @Summary		Update profile
// @Tags		Users
// @Security	BearerAuth
// @Param		body	body	UpdateRequest	true	"fields to change"
// @Router		/users/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	v, err := h.service.UpdateProfile(c.Request.Context(), middleware.UserID(c), req, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Profile updated successfully", v)
}

func (h *Handler) UploadAvatar(c *gin.Context) {
	fh := firstFile(upload.FormFiles(c, "avatar", "profile_image", "image", "file"))
	v, err := h.service.UploadAvatar(c.Request.Context(), middleware.UserID(c), fh, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Profile image updated successfully", v)
}

func (h *Handler) Upload(c *gin.Context) {
	files := upload.FormFiles(c, "files", "files[]", "media", "file")
	views, err := h.service.Upload(c.Request.Context(), middleware.UserID(c), files, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, "Files uploaded successfully", views)
}

func (h *Handler) Get(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), c.Param("id"), middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "User fetched successfully", v)
}

// Posts pages the feeds a user authored.
// @Summary		User posts
// @Tags		Users
// @Security	BearerAuth
// @Param		id	path	string	true	"user id"
// @Router		/users/{id}/post [get]
func (h *Handler) Posts(c *gin.Context) {
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	res, err := h.service.Posts(c.Request.Context(), middleware.UserID(c), c.Param("id"), p, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Posts fetched successfully", res)
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.service.SetStatus(c.Request.Context(), middleware.UserID(c), c.Param("id"), req, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "User status updated successfully", v)
}

func firstFile(files []*multipart.FileHeader) *multipart.FileHeader {
	if len(files) == 0 {
		return nil
	}
	return files[0]
}
