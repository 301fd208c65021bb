package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store/memstore"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
)

func strPtr(v string) *string { return &v }

func TestRosterCreateAndList(t *testing.T) {
	svc := NewRosterService(memstore.New(), nil, nil)
	ctx := context.Background()

	entry, err := svc.Create(ctx, models.StudentEntryCreateRequest{
		StudentID:  "STU-2024-001",
		Section:    strPtr("A"),
		Department: strPtr("CSE"),
	})
	require.NoError(t, err)
	assert.Positive(t, entry.ID)
	assert.False(t, entry.Assigned)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "STU-2024-001", entries[0].StudentID)
}

func TestRosterDuplicateStudentID(t *testing.T) {
	svc := NewRosterService(memstore.New(), nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.StudentEntryCreateRequest{StudentID: "STU-2024-001"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.StudentEntryCreateRequest{StudentID: "STU-2024-001"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "student id is already registered", appErr.Message)
}

func TestRosterUpdateMissing(t *testing.T) {
	svc := NewRosterService(memstore.New(), nil, nil)

	_, err := svc.Update(context.Background(), 7, models.StudentEntryPatch{Section: strPtr("B")})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestRosterExportCSV(t *testing.T) {
	svc := NewRosterService(memstore.New(), nil, nil)
	ctx := context.Background()

	year := 3
	_, err := svc.Create(ctx, models.StudentEntryCreateRequest{
		StudentID:  "STU-2024-001",
		Section:    strPtr("A"),
		Department: strPtr("CSE"),
		Year:       &year,
		Semester:   strPtr("6th"),
	})
	require.NoError(t, err)

	out, contentType, err := svc.Export(ctx, ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	body := string(out)
	assert.True(t, strings.HasPrefix(body, "Student ID,Section,Department,Year,Semester,Assigned"))
	assert.Contains(t, body, "STU-2024-001,A,CSE,3,6th,false")
}

func TestRosterExportPDF(t *testing.T) {
	svc := NewRosterService(memstore.New(), nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.StudentEntryCreateRequest{StudentID: "STU-2024-001"})
	require.NoError(t, err)

	out, contentType, err := svc.Export(ctx, ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestRosterExportUnknownFormat(t *testing.T) {
	svc := NewRosterService(memstore.New(), nil, nil)

	_, _, err := svc.Export(context.Background(), "xlsx")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
