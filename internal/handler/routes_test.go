package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/handler"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/middleware"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/service"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/session"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store/memstore"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/jobs"
)

const testCookie = "cc_session"

type testServer struct {
	router *gin.Engine
	store  *memstore.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := memstore.New()
	sessions := session.NewMemoryDirectory(session.Options{TTL: time.Hour})

	audit := middleware.NewAuditRecorder(st, nil, jobs.QueueConfig{Workers: 1, BufferSize: 16})
	audit.Start(context.Background())
	t.Cleanup(audit.Stop)

	cookie := handler.CookieConfig{Name: testCookie, MaxAge: 3600}
	h := handler.Handlers{
		Auth:        handler.NewAuthHandler(service.NewAuthService(st, sessions, nil, nil), cookie),
		Assignments: handler.NewAssignmentHandler(service.NewAssignmentService(st, nil, nil)),
		Submissions: handler.NewSubmissionHandler(service.NewSubmissionService(st, nil, nil)),
		Resources:   handler.NewResourceHandler(service.NewResourceService(st, nil, nil)),
		Notices:     handler.NewNoticeHandler(service.NewNoticeService(st, nil, nil)),
		Schedule:    handler.NewScheduleHandler(service.NewScheduleService(st, nil, nil)),
		Events:      handler.NewEventHandler(service.NewEventService(st, nil, nil)),
		Todos:       handler.NewTodoHandler(service.NewTodoService(st, nil, nil)),
		Messages:    handler.NewMessageHandler(service.NewMessageService(st, nil, nil)),
		Admin:       handler.NewAdminHandler(service.NewRosterService(st, nil, nil), service.NewAuditService(st, nil)),
	}

	r := gin.New()
	handler.RegisterRoutes(r, "/api", h, sessions, testCookie, audit)
	return &testServer{router: r, store: st}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account through the API and returns its token.
func (s *testServer) register(t *testing.T, username, role string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/register", "", gin.H{
		"username": username,
		"password": "secret123",
		"fullName": username + " example",
		"userType": role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Data models.AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)
	return envelope.Data.Token
}

func TestRoutesRequireSession(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/assignments", "/api/todos", "/api/user"} {
		rec := srv.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "casey", "student")

	rec := srv.do(t, http.MethodPost, "/api/login", "", gin.H{
		"username": "casey",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var sessionCookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == testCookie {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)
	assert.NotEmpty(t, sessionCookie.Value)

	// The cookie alone authenticates follow-up requests.
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(sessionCookie)
	cookieRec := httptest.NewRecorder()
	srv.router.ServeHTTP(cookieRec, req)
	assert.Equal(t, http.StatusOK, cookieRec.Code)
}

func TestLoginBadPassword(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "casey", "student")

	rec := srv.do(t, http.MethodPost, "/api/login", "", gin.H{
		"username": "casey",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStudentCannotMutateReferenceData(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "casey", "student")

	rec := srv.do(t, http.MethodPost, "/api/resources", token, gin.H{
		"title":    "Lecture Notes",
		"category": "notes",
		"fileType": "pdf",
		"fileUrl":  "https://example.com/notes.pdf",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/api/notices/1", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminCreatesAndStudentReads(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.register(t, "principal", "admin")
	student := srv.register(t, "casey", "student")

	rec := srv.do(t, http.MethodPost, "/api/notices", admin, gin.H{
		"title":    "Exam schedule",
		"content":  "Finals start Monday.",
		"category": "academic",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/notices", student, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []models.Notice `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Exam schedule", envelope.Data[0].Title)
}

func TestAdminCannotCreateSubmission(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.register(t, "principal", "admin")

	rec := srv.do(t, http.MethodPost, "/api/submissions", admin, gin.H{
		"assignmentId": 1,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTodoOwnershipOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	owner := srv.register(t, "casey", "student")
	other := srv.register(t, "jordan", "student")

	rec := srv.do(t, http.MethodPost, "/api/todos", owner, gin.H{"text": "revise chapter 4"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Data models.Todo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	path := fmt.Sprintf("/api/todos/%d", envelope.Data.ID)
	rec = srv.do(t, http.MethodPut, path, other, gin.H{"completed": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/todos", other, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listEnvelope struct {
		Data []models.Todo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listEnvelope))
	assert.Empty(t, listEnvelope.Data)
}

func TestLogoutRevokesSession(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "casey", "student")

	rec := srv.do(t, http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRosterExportAdminOnly(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.register(t, "principal", "admin")
	student := srv.register(t, "casey", "student")

	rec := srv.do(t, http.MethodPost, "/api/admin/student-ids", admin, gin.H{
		"studentId": "STU-2024-001",
		"section":   "A",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/admin/students/export?format=csv", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "STU-2024-001")

	rec = srv.do(t, http.MethodGet, "/api/admin/students/export?format=csv", student, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuditTrailRecordsAdminMutations(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.register(t, "principal", "admin")

	rec := srv.do(t, http.MethodPost, "/api/events", admin, gin.H{
		"title":    "Tech fest",
		"date":     "2026-10-12T00:00:00Z",
		"category": "cultural",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The recorder writes asynchronously.
	require.Eventually(t, func() bool {
		logs, err := srv.store.ListAuditLogs(context.Background(), 10)
		return err == nil && len(logs) == 1
	}, time.Second, 10*time.Millisecond)

	logs, err := srv.store.ListAuditLogs(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "create", logs[0].Action)
	assert.Equal(t, "events", logs[0].Resource)

	rec = srv.do(t, http.MethodGet, "/api/admin/audit?limit=10", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "events")
}
