package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/service"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/response"
)

// ResourceHandler exposes course material endpoints.
type ResourceHandler struct {
	service *service.ResourceService
}

// NewResourceHandler constructs a resource handler.
func NewResourceHandler(svc *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: svc}
}

// List godoc
// @Summary List resources
// @Tags Resources
// @Produce json
// @Param category query string false "Exact category match"
// @Success 200 {object} response.Envelope
// @Router /resources [get]
// @Security SessionAuth
func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resources)
}

// Get godoc
// @Summary Get resource detail
// @Tags Resources
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /resources/{id} [get]
// @Security SessionAuth
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resource, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resource)
}

// Create godoc
// @Summary Upload resource metadata
// @Tags Resources
// @Accept json
// @Produce json
// @Param payload body models.ResourceCreateRequest true "Resource payload"
// @Success 201 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /resources [post]
// @Security SessionAuth
func (h *ResourceHandler) Create(c *gin.Context) {
	var req models.ResourceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	resource, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resource)
}

// Delete godoc
// @Summary Delete a resource
// @Tags Resources
// @Param id path int true "Resource ID"
// @Success 204 {string} string "no content"
// @Failure 404 {object} response.Envelope
// @Router /resources/{id} [delete]
// @Security SessionAuth
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
