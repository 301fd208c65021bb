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

// TodoHandler exposes personal checklist endpoints.
type TodoHandler struct {
	service *service.TodoService
}

// NewTodoHandler constructs a todo handler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{service: svc}
}

// List godoc
// @Summary List the caller's todos
// @Tags Todos
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /todos [get]
// @Security SessionAuth
func (h *TodoHandler) List(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	todos, err := h.service.List(c.Request.Context(), identity.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, todos)
}

// Create godoc
// @Summary Add a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Param payload body models.TodoCreateRequest true "Todo payload"
// @Success 201 {object} response.Envelope
// @Router /todos [post]
// @Security SessionAuth
func (h *TodoHandler) Create(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.TodoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	todo, err := h.service.Create(c.Request.Context(), identity.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, todo)
}

// Update godoc
// @Summary Partially update a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param payload body models.TodoPatch true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /todos/{id} [put]
// @Security SessionAuth
func (h *TodoHandler) Update(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.TodoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	todo, err := h.service.Update(c.Request.Context(), identity.UserID, id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, todo)
}

// Delete godoc
// @Summary Delete a todo
// @Tags Todos
// @Param id path int true "Todo ID"
// @Success 204 {string} string "no content"
// @Failure 404 {object} response.Envelope
// @Router /todos/{id} [delete]
// @Security SessionAuth
func (h *TodoHandler) Delete(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity.UserID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
