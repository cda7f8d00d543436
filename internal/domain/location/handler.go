package location

import (
	"net/http"

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

// States lists every state by name.
// @Summary		List states
// @Tags		Lookups
// @Success		200	{object}		response.Envelope
// @Router		/states [get]
func (h *Handler) States(c *gin.Context) {
	out, err := h.service.States(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "States fetched successfully", out)
}

func (h *Handler) CitiesByState(c *gin.Context) {
	out, err := h.service.CitiesByState(c.Request.Context(), c.Param("stateId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Cities fetched successfully", out)
}

func (h *Handler) Cities(c *gin.Context) {
	out, err := h.service.Cities(c.Request.Context(), c.Query("stateId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Cities fetched successfully", out)
}

func (h *Handler) JobTitles(c *gin.Context) {
	out, err := h.service.JobTitles(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Job titles fetched successfully", out)
}

// CreateCity adds a city to a state.
// @Summary		Create city
// @Tags		Lookups
// @Security	BearerAuth
// @Param		stateId	path	string		true	"state id"
// @Param		body	body	CityRequest	true	"city"
// @Router		/states/{stateId}/cities [post]
func (h *Handler) CreateCity(c *gin.Context) {
	req, ok := bindCity(c)
	if !ok {
		return
	}
	city, err := h.service.CreateCity(c.Request.Context(), c.Param("stateId"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, "City created successfully", city)
}

func (h *Handler) UpdateCity(c *gin.Context) {
	req, ok := bindCity(c)
	if !ok {
		return
	}
	city, err := h.service.UpdateCity(c.Request.Context(), c.Param("cityId"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "City updated successfully", city)
}

func (h *Handler) DeleteCity(c *gin.Context) {
	if err := h.service.DeleteCity(c.Request.Context(), c.Param("cityId")); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "City deleted successfully", nil)
}

func bindCity(c *gin.Context) (CityRequest, bool) {
	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationFailed(c, fields)
		return req, false
	}
	return req, true
}
