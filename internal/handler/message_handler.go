package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/middleware"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/service"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/response"
)

// MessageHandler exposes support-chat endpoints.
type MessageHandler struct {
	service *service.MessageService
}

// NewMessageHandler constructs a message handler.
func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{service: svc}
}

// List godoc
// @Summary List the caller's messages
// @Tags Messages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /messages [get]
// @Security SessionAuth
func (h *MessageHandler) List(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	messages, err := h.service.List(c.Request.Context(), identity.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, messages)
}

// Send godoc
// @Summary Send a message
// @Tags Messages
// @Accept json
// @Produce json
// @Param payload body models.MessageCreateRequest true "Message payload"
// @Success 201 {object} response.Envelope
// @Router /messages [post]
// @Security SessionAuth
func (h *MessageHandler) Send(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.MessageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	message, err := h.service.Send(c.Request.Context(), identity.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, message)
}

// MarkRead godoc
// @Summary Mark a received message as read
// @Tags Messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /messages/{id}/read [put]
// @Security SessionAuth
func (h *MessageHandler) MarkRead(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	message, err := h.service.MarkRead(c.Request.Context(), identity.UserID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, message)
}
