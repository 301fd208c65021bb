package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/session"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store/memstore"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
)

func studentIdentity(id int64) session.Identity {
	return session.Identity{UserID: id, Username: "student", Role: models.RoleStudent}
}

func adminIdentity() session.Identity {
	return session.Identity{UserID: 100, Username: "admin", Role: models.RoleAdmin}
}

func TestSubmissionCreateOnTime(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	assignment := &models.Assignment{Title: "PS1", Course: "Algo", CourseCode: "CSE-301", DueDate: time.Now().Add(time.Hour)}
	require.NoError(t, st.CreateAssignment(ctx, assignment))

	svc := NewSubmissionService(st, nil, nil)
	sub, err := svc.Create(ctx, 7, models.SubmissionCreateRequest{AssignmentID: assignment.ID})
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentSubmitted, sub.Status)
	assert.Equal(t, int64(7), sub.StudentID)
	require.NotNil(t, sub.SubmissionDate)
}

func TestSubmissionCreateAfterDueDateIsLate(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	assignment := &models.Assignment{Title: "PS1", Course: "Algo", CourseCode: "CSE-301", DueDate: time.Now().Add(-time.Hour)}
	require.NoError(t, st.CreateAssignment(ctx, assignment))

	svc := NewSubmissionService(st, nil, nil)
	sub, err := svc.Create(ctx, 7, models.SubmissionCreateRequest{AssignmentID: assignment.ID})
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentLate, sub.Status)
}

func TestSubmissionCreateMissingAssignment(t *testing.T) {
	svc := NewSubmissionService(memstore.New(), nil, nil)

	_, err := svc.Create(context.Background(), 7, models.SubmissionCreateRequest{AssignmentID: 42})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestSubmissionResubmissionAllowed(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	assignment := &models.Assignment{Title: "PS1", Course: "Algo", CourseCode: "CSE-301", DueDate: time.Now().Add(time.Hour)}
	require.NoError(t, st.CreateAssignment(ctx, assignment))

	svc := NewSubmissionService(st, nil, nil)
	first, err := svc.Create(ctx, 7, models.SubmissionCreateRequest{AssignmentID: assignment.ID})
	require.NoError(t, err)
	second, err := svc.Create(ctx, 7, models.SubmissionCreateRequest{AssignmentID: assignment.ID})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	subs, err := svc.List(ctx, adminIdentity(), models.SubmissionFilter{AssignmentID: assignment.ID})
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

func TestSubmissionListStudentAlwaysScopedToSelf(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	require.NoError(t, st.CreateSubmission(ctx, &models.Submission{AssignmentID: 1, StudentID: 7, Status: models.AssignmentSubmitted}))
	require.NoError(t, st.CreateSubmission(ctx, &models.Submission{AssignmentID: 1, StudentID: 8, Status: models.AssignmentSubmitted}))

	svc := NewSubmissionService(st, nil, nil)

	// Even a filter naming another student is overridden.
	subs, err := svc.List(ctx, studentIdentity(7), models.SubmissionFilter{StudentID: 8})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, int64(7), subs[0].StudentID)
}

func TestSubmissionListAdminSeesAllAndFilters(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	require.NoError(t, st.CreateSubmission(ctx, &models.Submission{AssignmentID: 1, StudentID: 7, Status: models.AssignmentSubmitted}))
	require.NoError(t, st.CreateSubmission(ctx, &models.Submission{AssignmentID: 2, StudentID: 8, Status: models.AssignmentSubmitted}))

	svc := NewSubmissionService(st, nil, nil)

	all, err := svc.List(ctx, adminIdentity(), models.SubmissionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := svc.List(ctx, adminIdentity(), models.SubmissionFilter{StudentID: 8})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, int64(8), one[0].StudentID)
}
