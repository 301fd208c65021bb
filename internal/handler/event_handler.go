package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/service"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/response"
)

// EventHandler exposes campus calendar endpoints.
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler constructs an event handler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{service: svc}
}

// List godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events [get]
// @Security SessionAuth
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events)
}

// Create godoc
// @Summary Post a calendar event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body models.EventCreateRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /events [post]
// @Security SessionAuth
func (h *EventHandler) Create(c *gin.Context) {
	var req models.EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}
