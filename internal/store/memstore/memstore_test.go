package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
)

func TestCreateAssignmentAssignsIDAndRoundTrips(t *testing.T) {
	st := New()
	ctx := context.Background()

	assignment := &models.Assignment{
		Title:      "Problem Set 1",
		Course:     "Algorithms",
		CourseCode: "CSE-301",
		DueDate:    time.Now().Add(48 * time.Hour),
		Status:     models.AssignmentPending,
	}
	require.NoError(t, st.CreateAssignment(ctx, assignment))
	assert.Positive(t, assignment.ID)
	assert.False(t, assignment.PostedDate.IsZero())

	got, err := st.GetAssignment(ctx, assignment.ID)
	require.NoError(t, err)
	assert.Equal(t, assignment.Title, got.Title)
	assert.Equal(t, assignment.ID, got.ID)
}

func TestCreateIgnoresCallerAssignedID(t *testing.T) {
	st := New()
	ctx := context.Background()

	first := &models.Assignment{ID: 999, Title: "A", Course: "C", CourseCode: "CC", DueDate: time.Now()}
	require.NoError(t, st.CreateAssignment(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	_, err := st.GetAssignment(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteAssignmentTrueExactlyOnce(t *testing.T) {
	st := New()
	ctx := context.Background()

	assignment := &models.Assignment{Title: "A", Course: "C", CourseCode: "CC", DueDate: time.Now()}
	require.NoError(t, st.CreateAssignment(ctx, assignment))

	deleted, err := st.DeleteAssignment(ctx, assignment.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = st.DeleteAssignment(ctx, assignment.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUpdateMissingAssignmentNeverCreates(t *testing.T) {
	st := New()
	ctx := context.Background()

	title := "Ghost"
	_, err := st.UpdateAssignment(ctx, 42, models.AssignmentPatch{Title: &title})
	assert.ErrorIs(t, err, store.ErrNotFound)

	list, err := st.ListAssignments(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateAssignmentMergesOnlyPatchedFields(t *testing.T) {
	st := New()
	ctx := context.Background()

	assignment := &models.Assignment{Title: "Before", Course: "Networks", CourseCode: "CSE-305", DueDate: time.Now()}
	require.NoError(t, st.CreateAssignment(ctx, assignment))

	title := "After"
	updated, err := st.UpdateAssignment(ctx, assignment.ID, models.AssignmentPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "Networks", updated.Course)
	assert.Equal(t, "CSE-305", updated.CourseCode)
}

func TestListAssignmentsNewestFirst(t *testing.T) {
	st := New()
	ctx := context.Background()
	base := time.Now().UTC()

	older := &models.Assignment{Title: "Old", Course: "C", CourseCode: "CC", DueDate: base, PostedDate: base.Add(-time.Hour)}
	newer := &models.Assignment{Title: "New", Course: "C", CourseCode: "CC", DueDate: base, PostedDate: base}
	require.NoError(t, st.CreateAssignment(ctx, older))
	require.NoError(t, st.CreateAssignment(ctx, newer))

	list, err := st.ListAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "New", list[0].Title)
	assert.Equal(t, "Old", list[1].Title)
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	st := New()
	ctx := context.Background()

	require.NoError(t, st.CreateUser(ctx, &models.User{Username: "arya", PasswordHash: "x", FullName: "Arya", Role: models.RoleStudent}))
	err := st.CreateUser(ctx, &models.User{Username: "arya", PasswordHash: "y", FullName: "Other", Role: models.RoleStudent})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestResourceCategoryFilterExactMatch(t *testing.T) {
	st := New()
	ctx := context.Background()

	require.NoError(t, st.CreateResource(ctx, &models.Resource{Title: "Slides", Category: "Lecture Notes", FileType: "pdf", FileURL: "/a"}))
	require.NoError(t, st.CreateResource(ctx, &models.Resource{Title: "Paper", Category: "Reading", FileType: "pdf", FileURL: "/b"}))
	require.NoError(t, st.CreateResource(ctx, &models.Resource{Title: "More Slides", Category: "Lecture Notes", FileType: "ppt", FileURL: "/c"}))

	filtered, err := st.ListResources(ctx, "Lecture Notes")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
	for _, r := range filtered {
		assert.Equal(t, "Lecture Notes", r.Category)
	}

	all, err := st.ListResources(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := st.ListResources(ctx, "lecture notes")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTodoToggleRoundTrip(t *testing.T) {
	st := New()
	ctx := context.Background()

	todo := &models.Todo{UserID: 1, Text: "revise"}
	require.NoError(t, st.CreateTodo(ctx, todo))
	assert.False(t, todo.Completed)

	completed := true
	updated, err := st.UpdateTodo(ctx, todo.ID, models.TodoPatch{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	completed = false
	updated, err = st.UpdateTodo(ctx, todo.ID, models.TodoPatch{Completed: &completed})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	assert.Equal(t, "revise", updated.Text)
}

func TestListTodosScopedToOwner(t *testing.T) {
	st := New()
	ctx := context.Background()

	require.NoError(t, st.CreateTodo(ctx, &models.Todo{UserID: 1, Text: "mine"}))
	require.NoError(t, st.CreateTodo(ctx, &models.Todo{UserID: 2, Text: "theirs"}))

	mine, err := st.ListTodos(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Text)
}

func TestListMessagesIncludesBroadcasts(t *testing.T) {
	st := New()
	ctx := context.Background()
	receiver := int64(2)

	require.NoError(t, st.CreateMessage(ctx, &models.Message{SenderID: 1, ReceiverID: &receiver, Content: "direct"}))
	require.NoError(t, st.CreateMessage(ctx, &models.Message{SenderID: 1, Content: "broadcast"}))
	other := int64(3)
	require.NoError(t, st.CreateMessage(ctx, &models.Message{SenderID: 1, ReceiverID: &other, Content: "not for user 2"}))

	inbox, err := st.ListMessages(ctx, 2)
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	contents := []string{inbox[0].Content, inbox[1].Content}
	assert.Contains(t, contents, "direct")
	assert.Contains(t, contents, "broadcast")
}

func TestMarkMessageRead(t *testing.T) {
	st := New()
	ctx := context.Background()
	receiver := int64(2)

	msg := &models.Message{SenderID: 1, ReceiverID: &receiver, Content: "hello"}
	require.NoError(t, st.CreateMessage(ctx, msg))

	updated, err := st.MarkMessageRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, updated.Read)

	_, err = st.MarkMessageRead(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubmissionFilters(t *testing.T) {
	st := New()
	ctx := context.Background()

	require.NoError(t, st.CreateSubmission(ctx, &models.Submission{AssignmentID: 1, StudentID: 10, Status: models.AssignmentSubmitted}))
	require.NoError(t, st.CreateSubmission(ctx, &models.Submission{AssignmentID: 1, StudentID: 11, Status: models.AssignmentSubmitted}))
	require.NoError(t, st.CreateSubmission(ctx, &models.Submission{AssignmentID: 2, StudentID: 10, Status: models.AssignmentLate}))

	byAssignment, err := st.ListSubmissions(ctx, models.SubmissionFilter{AssignmentID: 1})
	require.NoError(t, err)
	assert.Len(t, byAssignment, 2)

	byStudent, err := st.ListSubmissions(ctx, models.SubmissionFilter{StudentID: 10})
	require.NoError(t, err)
	assert.Len(t, byStudent, 2)

	both, err := st.ListSubmissions(ctx, models.SubmissionFilter{AssignmentID: 2, StudentID: 10})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, models.AssignmentLate, both[0].Status)
}

func TestRosterUniqueStudentIDAndClaim(t *testing.T) {
	st := New()
	ctx := context.Background()

	entry := &models.StudentEntry{StudentID: "2021-CSE-042"}
	require.NoError(t, st.CreateStudentEntry(ctx, entry))

	err := st.CreateStudentEntry(ctx, &models.StudentEntry{StudentID: "2021-CSE-042"})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	assigned := true
	userID := int64(7)
	updated, err := st.UpdateStudentEntry(ctx, entry.ID, models.StudentEntryPatch{Assigned: &assigned, UserID: &userID})
	require.NoError(t, err)
	assert.True(t, updated.Assigned)
	require.NotNil(t, updated.UserID)
	assert.Equal(t, int64(7), *updated.UserID)
}

func TestAuditLogsNewestFirstWithLimit(t *testing.T) {
	st := New()
	ctx := context.Background()

	for _, action := range []string{"create", "update", "delete"} {
		require.NoError(t, st.CreateAuditLog(ctx, &models.AuditLog{Action: action, Resource: "notices", Status: 201}))
	}

	logs, err := st.ListAuditLogs(ctx, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "delete", logs[0].Action)
	assert.Equal(t, "update", logs[1].Action)
}

func TestSeedDemoData(t *testing.T) {
	st := New()
	ctx := context.Background()

	require.NoError(t, st.SeedDemoData(ctx))

	assignments, err := st.ListAssignments(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, assignments)

	notices, err := st.ListNotices(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, notices)

	schedule, err := st.ListSchedule(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, schedule)
}
