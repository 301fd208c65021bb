package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/export"
)

type rosterStore interface {
	ListStudentEntries(ctx context.Context) ([]models.StudentEntry, error)
	GetStudentEntry(ctx context.Context, id int64) (*models.StudentEntry, error)
	CreateStudentEntry(ctx context.Context, entry *models.StudentEntry) error
	UpdateStudentEntry(ctx context.Context, id int64, patch models.StudentEntryPatch) (*models.StudentEntry, error)
}

// Export formats for the roster.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// RosterService manages the admin student-id roster.
type RosterService struct {
	store     rosterStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRosterService constructs a RosterService instance.
func NewRosterService(st rosterStore, validate *validator.Validate, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RosterService{store: st, validator: validate, logger: logger}
}

// List returns every roster entry in insertion order.
func (s *RosterService) List(ctx context.Context) ([]models.StudentEntry, error) {
	entries, err := s.store.ListStudentEntries(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list roster")
	}
	return entries, nil
}

// Create pre-registers a student id. Student ids are unique.
func (s *RosterService) Create(ctx context.Context, req models.StudentEntryCreateRequest) (*models.StudentEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid roster payload")
	}

	entry := &models.StudentEntry{
		StudentID:  req.StudentID,
		Section:    req.Section,
		Department: req.Department,
		Year:       req.Year,
		Semester:   req.Semester,
	}
	if err := s.store.CreateStudentEntry(ctx, entry); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "student id is already registered")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create roster entry")
	}
	return entry, nil
}

// Update merges the patch into an existing roster entry.
func (s *RosterService) Update(ctx context.Context, id int64, patch models.StudentEntryPatch) (*models.StudentEntry, error) {
	entry, err := s.store.UpdateStudentEntry(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "roster entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update roster entry")
	}
	return entry, nil
}

// Export renders the roster as CSV or PDF bytes.
func (s *RosterService) Export(ctx context.Context, format string) ([]byte, string, error) {
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	entries, err := s.store.ListStudentEntries(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list roster")
	}

	data := export.Dataset{
		Headers: []string{"Student ID", "Section", "Department", "Year", "Semester", "Assigned"},
	}
	for _, entry := range entries {
		data.Rows = append(data.Rows, []string{
			entry.StudentID,
			strOrEmpty(entry.Section),
			strOrEmpty(entry.Department),
			intOrEmpty(entry.Year),
			strOrEmpty(entry.Semester),
			strconv.FormatBool(entry.Assigned),
		})
	}

	var out []byte
	var contentType string
	switch format {
	case ExportFormatCSV:
		out, err = export.CSV(data)
		contentType = "text/csv"
	case ExportFormatPDF:
		out, err = export.PDF(data, "Student Roster")
		contentType = "application/pdf"
	}
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render roster export")
	}
	return out, contentType, nil
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
