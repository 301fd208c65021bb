// Package memstore implements the store contract on plain maps guarded
// by a RWMutex. It is volatile by design and serves development,
// testing, and deployments that do not need persistence.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
)

// Store holds every entity kind in its own map. Ids are assigned from
// per-kind monotonic counters and never reused within a process.
type Store struct {
	mu sync.RWMutex

	users       map[int64]*models.User
	assignments map[int64]*models.Assignment
	submissions map[int64]*models.Submission
	resources   map[int64]*models.Resource
	notices     map[int64]*models.Notice
	schedule    map[int64]*models.ScheduleEntry
	todos       map[int64]*models.Todo
	events      map[int64]*models.Event
	messages    map[int64]*models.Message
	roster      map[int64]*models.StudentEntry
	auditLogs   []models.AuditLog

	nextID map[string]int64
}

var _ store.Store = (*Store)(nil)

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		users:       make(map[int64]*models.User),
		assignments: make(map[int64]*models.Assignment),
		submissions: make(map[int64]*models.Submission),
		resources:   make(map[int64]*models.Resource),
		notices:     make(map[int64]*models.Notice),
		schedule:    make(map[int64]*models.ScheduleEntry),
		todos:       make(map[int64]*models.Todo),
		events:      make(map[int64]*models.Event),
		messages:    make(map[int64]*models.Message),
		roster:      make(map[int64]*models.StudentEntry),
		nextID:      make(map[string]int64),
	}
}

func (s *Store) allocID(kind string) int64 {
	s.nextID[kind]++
	return s.nextID[kind]
}

// Users

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return store.ErrDuplicate
		}
	}
	user.ID = s.allocID("user")
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

// Assignments

func (s *Store) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Assignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PostedDate.Equal(out[j].PostedDate) {
			return out[i].PostedDate.After(out[j].PostedDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) GetAssignment(ctx context.Context, id int64) (*models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assignments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *Store) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignment.ID = s.allocID("assignment")
	if assignment.PostedDate.IsZero() {
		assignment.PostedDate = time.Now().UTC()
	}
	cp := *assignment
	s.assignments[assignment.ID] = &cp
	return nil
}

func (s *Store) UpdateAssignment(ctx context.Context, id int64, patch models.AssignmentPatch) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assignments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Course != nil {
		a.Course = *patch.Course
	}
	if patch.CourseCode != nil {
		a.CourseCode = *patch.CourseCode
	}
	if patch.DueDate != nil {
		a.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Description != nil {
		a.Description = patch.Description
	}
	if patch.FileURL != nil {
		a.FileURL = patch.FileURL
	}
	cp := *a
	return &cp, nil
}

func (s *Store) DeleteAssignment(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assignments[id]; !ok {
		return false, nil
	}
	delete(s.assignments, id)
	return true, nil
}

// Submissions

func (s *Store) ListSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Submission, 0, len(s.submissions))
	for _, sub := range s.submissions {
		if filter.AssignmentID != 0 && sub.AssignmentID != filter.AssignmentID {
			continue
		}
		if filter.StudentID != 0 && sub.StudentID != filter.StudentID {
			continue
		}
		out = append(out, *sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateSubmission(ctx context.Context, submission *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	submission.ID = s.allocID("submission")
	cp := *submission
	s.submissions[submission.ID] = &cp
	return nil
}

// Resources

func (s *Store) ListResources(ctx context.Context, category string) ([]models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Resource, 0, len(s.resources))
	for _, r := range s.resources {
		if category != "" && r.Category != category {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UploadDate.Equal(out[j].UploadDate) {
			return out[i].UploadDate.After(out[j].UploadDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) GetResource(ctx context.Context, id int64) (*models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.resources[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *Store) CreateResource(ctx context.Context, resource *models.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	resource.ID = s.allocID("resource")
	if resource.UploadDate.IsZero() {
		resource.UploadDate = time.Now().UTC()
	}
	cp := *resource
	s.resources[resource.ID] = &cp
	return nil
}

func (s *Store) DeleteResource(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.resources[id]; !ok {
		return false, nil
	}
	delete(s.resources, id)
	return true, nil
}

// Notices

func (s *Store) ListNotices(ctx context.Context) ([]models.Notice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notice, 0, len(s.notices))
	for _, n := range s.notices {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PostedDate.Equal(out[j].PostedDate) {
			return out[i].PostedDate.After(out[j].PostedDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) GetNotice(ctx context.Context, id int64) (*models.Notice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notices[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (s *Store) CreateNotice(ctx context.Context, notice *models.Notice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	notice.ID = s.allocID("notice")
	if notice.PostedDate.IsZero() {
		notice.PostedDate = time.Now().UTC()
	}
	cp := *notice
	s.notices[notice.ID] = &cp
	return nil
}

func (s *Store) DeleteNotice(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notices[id]; !ok {
		return false, nil
	}
	delete(s.notices, id)
	return true, nil
}

// Schedule

func (s *Store) ListSchedule(ctx context.Context, day string) ([]models.ScheduleEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ScheduleEntry, 0, len(s.schedule))
	for _, e := range s.schedule {
		if day != "" && e.Day != day {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateScheduleEntry(ctx context.Context, entry *models.ScheduleEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.allocID("schedule")
	cp := *entry
	s.schedule[entry.ID] = &cp
	return nil
}

func (s *Store) UpdateScheduleEntry(ctx context.Context, id int64, patch models.SchedulePatch) (*models.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.schedule[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Day != nil {
		e.Day = *patch.Day
	}
	if patch.StartTime != nil {
		e.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		e.EndTime = *patch.EndTime
	}
	if patch.Course != nil {
		e.Course = *patch.Course
	}
	if patch.CourseCode != nil {
		e.CourseCode = *patch.CourseCode
	}
	if patch.Room != nil {
		e.Room = patch.Room
	}
	if patch.Building != nil {
		e.Building = patch.Building
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	cp := *e
	return &cp, nil
}

// Todos

func (s *Store) ListTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Todo, 0)
	for _, t := range s.todos {
		if t.UserID != userID {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) GetTodo(ctx context.Context, id int64) (*models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.todos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *Store) CreateTodo(ctx context.Context, todo *models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	todo.ID = s.allocID("todo")
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now().UTC()
	}
	cp := *todo
	s.todos[todo.ID] = &cp
	return nil
}

func (s *Store) UpdateTodo(ctx context.Context, id int64, patch models.TodoPatch) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.todos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Text != nil {
		t.Text = *patch.Text
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	cp := *t
	return &cp, nil
}

func (s *Store) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.todos[id]; !ok {
		return false, nil
	}
	delete(s.todos, id)
	return true, nil
}

// Events

func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) CreateEvent(ctx context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = s.allocID("event")
	cp := *event
	s.events[event.ID] = &cp
	return nil
}

// Messages

func (s *Store) ListMessages(ctx context.Context, userID int64) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, 0)
	for _, m := range s.messages {
		if m.SenderID != userID && m.ReceiverID != nil && *m.ReceiverID != userID {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) GetMessage(ctx context.Context, id int64) (*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.messages[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *Store) CreateMessage(ctx context.Context, message *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	message.ID = s.allocID("message")
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}
	cp := *message
	s.messages[message.ID] = &cp
	return nil
}

func (s *Store) MarkMessageRead(ctx context.Context, id int64) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.messages[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	m.Read = true
	cp := *m
	return &cp, nil
}

// Student roster

func (s *Store) ListStudentEntries(ctx context.Context) ([]models.StudentEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StudentEntry, 0, len(s.roster))
	for _, e := range s.roster {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetStudentEntry(ctx context.Context, id int64) (*models.StudentEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.roster[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *Store) GetStudentEntryByStudentID(ctx context.Context, studentID string) (*models.StudentEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.roster {
		if e.StudentID == studentID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateStudentEntry(ctx context.Context, entry *models.StudentEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.roster {
		if e.StudentID == entry.StudentID {
			return store.ErrDuplicate
		}
	}
	entry.ID = s.allocID("roster")
	cp := *entry
	s.roster[entry.ID] = &cp
	return nil
}

func (s *Store) UpdateStudentEntry(ctx context.Context, id int64, patch models.StudentEntryPatch) (*models.StudentEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.roster[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Section != nil {
		e.Section = patch.Section
	}
	if patch.Department != nil {
		e.Department = patch.Department
	}
	if patch.Year != nil {
		e.Year = patch.Year
	}
	if patch.Semester != nil {
		e.Semester = patch.Semester
	}
	if patch.Assigned != nil {
		e.Assigned = *patch.Assigned
	}
	if patch.UserID != nil {
		e.UserID = patch.UserID
	}
	cp := *e
	return &cp, nil
}

// Audit trail

func (s *Store) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.ID = s.allocID("audit")
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	s.auditLogs = append(s.auditLogs, *log)
	return nil
}

func (s *Store) ListAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.auditLogs)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.AuditLog, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.auditLogs[i])
	}
	return out, nil
}
