package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/service"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/response"
)

// AdminHandler exposes the roster and audit trail endpoints.
type AdminHandler struct {
	roster *service.RosterService
	audit  *service.AuditService
}

// NewAdminHandler constructs an admin handler.
func NewAdminHandler(roster *service.RosterService, audit *service.AuditService) *AdminHandler {
	return &AdminHandler{roster: roster, audit: audit}
}

// ListStudents godoc
// @Summary List roster entries
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/students [get]
// @Security SessionAuth
func (h *AdminHandler) ListStudents(c *gin.Context) {
	entries, err := h.roster.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// CreateStudentID godoc
// @Summary Pre-register a student id
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.StudentEntryCreateRequest true "Roster payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/student-ids [post]
// @Security SessionAuth
func (h *AdminHandler) CreateStudentID(c *gin.Context) {
	var req models.StudentEntryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	entry, err := h.roster.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// UpdateStudentID godoc
// @Summary Partially update a roster entry
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param payload body models.StudentEntryPatch true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/student-ids/{id} [put]
// @Security SessionAuth
func (h *AdminHandler) UpdateStudentID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.StudentEntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}

	entry, err := h.roster.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry)
}

// ExportStudents godoc
// @Summary Export the roster
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /admin/students/export [get]
// @Security SessionAuth
func (h *AdminHandler) ExportStudents(c *gin.Context) {
	format := c.DefaultQuery("format", service.ExportFormatCSV)

	out, contentType, err := h.roster.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="students.`+format+`"`)
	c.Data(http.StatusOK, contentType, out)
}

// ListAudit godoc
// @Summary List recent audit entries
// @Tags Admin
// @Produce json
// @Param limit query int false "Max entries (default 100)"
// @Success 200 {object} response.Envelope
// @Router /admin/audit [get]
// @Security SessionAuth
func (h *AdminHandler) ListAudit(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := h.audit.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, logs)
}
