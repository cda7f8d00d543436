package feed

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

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

// List returns the requester's feed.
// @Summary		Home feed
// @Tags		Feed
// @Security	BearerAuth
// @Accept		json
// @Param		body	body	ListRequest	false	"filters and paging"
// @Success		200	{object}		paginate.Result[View]
// @Router		/feed [post]
func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.service.List(c.Request.Context(), middleware.UserID(c), req, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Feeds fetched successfully", res)
}

func (h *Handler) Explore(c *gin.Context) {
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	res, err := h.service.Explore(c.Request.Context(), middleware.UserID(c), p, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Feeds fetched successfully", res)
}

func (h *Handler) Get(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), middleware.UserID(c), c.Param("feedId"), middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Feed fetched successfully", v)
}

// Post publishes a feed with optional images and videos.
// @Summary		Create feed
// @Tags		Feed
// @Security	BearerAuth
// @Accept		multipart/form-data
// @Param		content	formData	string	false	"text"
// @Param		media	formData	file	false	"images or videos"
// @Success		201	{object}		View
// @Router		/feed/post [post]
func (h *Handler) Post(c *gin.Context) {
	req, ok := BindCreate(c)
	if !ok {
		return
	}

	files := upload.FormFiles(c, "media", "media[]", "files")
	v, err := h.service.Post(c.Request.Context(), middleware.UserID(c), req, files, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, "Feed posted successfully", v)
}

// React rates someone else's feed.
// @Summary		React to feed
// @Tags		Feed
// @Security	BearerAuth
// @Param		feedId	path	string			true	"feed id"
// @Param		body	body	ReactRequest	true	"rating 0..5"
// @Success		200	{object}		Reaction
// @Failure		403	{object}		response.Envelope
// @Router		/feed/{feedId}/reactions [post]
func (h *Handler) React(c *gin.Context) {
	var req ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	r, err := h.service.React(c.Request.Context(), middleware.UserID(c), c.Param("feedId"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Reaction saved successfully", r)
}

func (h *Handler) Reacted(c *gin.Context) {
	req := ReactedRequest{Search: c.Query("search")}
	p := paginate.Parse(c.Query("page"), c.Query("limit"))
	req.Page, req.Limit = p.Page, p.Limit

	var ok bool
	if req.MinRating, ok = floatQuery(c, "minRatingValue", "minRating"); !ok {
		return
	}
	if req.MaxRating, ok = floatQuery(c, "maxRatingValue", "maxRating"); !ok {
		return
	}

	res, err := h.service.Reacted(c.Request.Context(), middleware.UserID(c), req, middleware.PublicBase(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Reacted feeds fetched successfully", res)
}

// BindCreate reads a CreateRequest from JSON or multipart form fields. On
// failure it has already written the response.
func BindCreate(c *gin.Context) (CreateRequest, bool) {
	var req CreateRequest
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if _, err := c.MultipartForm(); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid multipart form")
			return req, false
		}
		req = CreateRequest{
			Title:         c.PostForm("title"),
			Content:       c.PostForm("content"),
			JobTitle:      upload.FormList(c, "job_title"),
			JobType:       c.PostForm("job_type"),
			WorkPlaceName: c.PostForm("work_place_name"),
			CompanyName:   c.PostForm("company_name"),
			Cities:        upload.FormList(c, "cities"),
			States:        upload.FormList(c, "states"),
			Skills:        upload.FormList(c, "skills"),
			Source:        c.PostForm("source"),
			NoticePeriod:  c.PostForm("notice_period"),
		}
		req.IsImmediateJoiner, _ = strconv.ParseBool(c.PostForm("is_immediate_joiner"))
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return req, false
	}

	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return req, false
	}
	return req, true
}

// floatQuery parses the first of keys present in the query string.
func floatQuery(c *gin.Context, keys ...string) (*float64, bool) {
	var key, raw string
	for _, key = range keys {
		if raw = strings.TrimSpace(c.Query(key)); raw != "" {
			break
		}
	}
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, key+" must be a number")
		return nil, false
	}
	return &v, true
}
