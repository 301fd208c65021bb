package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/service"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/response"
)

// NoticeHandler exposes announcement endpoints.
type NoticeHandler struct {
	service *service.NoticeService
}

// NewNoticeHandler constructs a notice handler.
func NewNoticeHandler(svc *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{service: svc}
}

// List godoc
// @Summary List notices
// @Tags Notices
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notices [get]
// @Security SessionAuth
func (h *NoticeHandler) List(c *gin.Context) {
	notices, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notices)
}

// Get godoc
// @Summary Get notice detail
// @Tags Notices
// @Produce json
// @Param id path int true "Notice ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /notices/{id} [get]
// @Security SessionAuth
func (h *NoticeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	notice, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notice)
}

// Create godoc
// @Summary Post a notice
// @Tags Notices
// @Accept json
// @Produce json
// @Param payload body models.NoticeCreateRequest true "Notice payload"
// @Success 201 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /notices [post]
// @Security SessionAuth
func (h *NoticeHandler) Create(c *gin.Context) {
	var req models.NoticeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	notice, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, notice)
}

// Delete godoc
// @Summary Delete a notice
// @Tags Notices
// @Param id path int true "Notice ID"
// @Success 204 {string} string "no content"
// @Failure 404 {object} response.Envelope
// @Router /notices/{id} [delete]
// @Security SessionAuth
func (h *NoticeHandler) Delete(c *gin.Context) {
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
