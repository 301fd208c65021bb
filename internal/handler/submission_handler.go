package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/middleware"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/service"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/response"
)

// SubmissionHandler exposes assignment hand-in endpoints.
type SubmissionHandler struct {
	service *service.SubmissionService
}

// NewSubmissionHandler constructs a submission handler.
func NewSubmissionHandler(svc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: svc}
}

// List godoc
// @Summary List submissions
// @Description Admins see every submission; students see their own.
// @Tags Submissions
// @Produce json
// @Param assignmentId query int false "Filter by assignment"
// @Param studentId query int false "Filter by student (admin only)"
// @Success 200 {object} response.Envelope
// @Router /submissions [get]
// @Security SessionAuth
func (h *SubmissionHandler) List(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var filter models.SubmissionFilter
	if v, err := strconv.ParseInt(c.Query("assignmentId"), 10, 64); err == nil {
		filter.AssignmentID = v
	}
	if v, err := strconv.ParseInt(c.Query("studentId"), 10, 64); err == nil {
		filter.StudentID = v
	}

	submissions, err := h.service.List(c.Request.Context(), *identity, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, submissions)
}

// Create godoc
// @Summary Hand in an assignment
// @Tags Submissions
// @Accept json
// @Produce json
// @Param payload body models.SubmissionCreateRequest true "Submission payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /submissions [post]
// @Security SessionAuth
func (h *SubmissionHandler) Create(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SubmissionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	submission, err := h.service.Create(c.Request.Context(), identity.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, submission)
}
