package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/middleware"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/session"
)

// Handlers groups every endpoint handler for route registration.
type Handlers struct {
	Auth        *AuthHandler
	Assignments *AssignmentHandler
	Submissions *SubmissionHandler
	Resources   *ResourceHandler
	Notices     *NoticeHandler
	Schedule    *ScheduleHandler
	Events      *EventHandler
	Todos       *TodoHandler
	Messages    *MessageHandler
	Admin       *AdminHandler
}

// RegisterRoutes mounts the API under the given prefix. Every route
// except register and login sits behind the session check; mutations
// additionally pass the role policy and the audit recorder.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, sessions session.Directory, cookieName string, audit *middleware.AuditRecorder) {
	api := r.Group(prefix)

	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.Authenticate(sessions, cookieName))

	authed.POST("/logout", h.Auth.Logout)
	authed.GET("/user", h.Auth.Me)

	authed.GET("/assignments",
		middleware.Authorize("assignments", middleware.ActionRead), h.Assignments.List)
	authed.GET("/assignments/:id",
		middleware.Authorize("assignments", middleware.ActionRead), h.Assignments.Get)
	authed.POST("/assignments",
		middleware.Authorize("assignments", middleware.ActionCreate),
		audit.Middleware("create", "assignments"), h.Assignments.Create)
	authed.PUT("/assignments/:id",
		middleware.Authorize("assignments", middleware.ActionUpdate),
		audit.Middleware("update", "assignments"), h.Assignments.Update)
	authed.DELETE("/assignments/:id",
		middleware.Authorize("assignments", middleware.ActionDelete),
		audit.Middleware("delete", "assignments"), h.Assignments.Delete)

	authed.GET("/submissions",
		middleware.Authorize("submissions", middleware.ActionRead), h.Submissions.List)
	authed.POST("/submissions",
		middleware.Authorize("submissions", middleware.ActionCreate),
		audit.Middleware("create", "submissions"), h.Submissions.Create)

	authed.GET("/resources",
		middleware.Authorize("resources", middleware.ActionRead), h.Resources.List)
	authed.GET("/resources/:id",
		middleware.Authorize("resources", middleware.ActionRead), h.Resources.Get)
	authed.POST("/resources",
		middleware.Authorize("resources", middleware.ActionCreate),
		audit.Middleware("create", "resources"), h.Resources.Create)
	authed.DELETE("/resources/:id",
		middleware.Authorize("resources", middleware.ActionDelete),
		audit.Middleware("delete", "resources"), h.Resources.Delete)

	authed.GET("/notices",
		middleware.Authorize("notices", middleware.ActionRead), h.Notices.List)
	authed.GET("/notices/:id",
		middleware.Authorize("notices", middleware.ActionRead), h.Notices.Get)
	authed.POST("/notices",
		middleware.Authorize("notices", middleware.ActionCreate),
		audit.Middleware("create", "notices"), h.Notices.Create)
	authed.DELETE("/notices/:id",
		middleware.Authorize("notices", middleware.ActionDelete),
		audit.Middleware("delete", "notices"), h.Notices.Delete)

	authed.GET("/schedule",
		middleware.Authorize("schedule", middleware.ActionRead), h.Schedule.List)
	authed.POST("/schedule",
		middleware.Authorize("schedule", middleware.ActionCreate),
		audit.Middleware("create", "schedule"), h.Schedule.Create)
	authed.PUT("/schedule/:id",
		middleware.Authorize("schedule", middleware.ActionUpdate),
		audit.Middleware("update", "schedule"), h.Schedule.Update)

	authed.GET("/events",
		middleware.Authorize("events", middleware.ActionRead), h.Events.List)
	authed.POST("/events",
		middleware.Authorize("events", middleware.ActionCreate),
		audit.Middleware("create", "events"), h.Events.Create)

	authed.GET("/todos",
		middleware.Authorize("todos", middleware.ActionRead), h.Todos.List)
	authed.POST("/todos",
		middleware.Authorize("todos", middleware.ActionCreate), h.Todos.Create)
	authed.PUT("/todos/:id",
		middleware.Authorize("todos", middleware.ActionUpdate), h.Todos.Update)
	authed.DELETE("/todos/:id",
		middleware.Authorize("todos", middleware.ActionDelete), h.Todos.Delete)

	authed.GET("/messages",
		middleware.Authorize("messages", middleware.ActionRead), h.Messages.List)
	authed.POST("/messages",
		middleware.Authorize("messages", middleware.ActionCreate), h.Messages.Send)
	authed.PUT("/messages/:id/read",
		middleware.Authorize("messages", middleware.ActionUpdate), h.Messages.MarkRead)

	admin := authed.Group("/admin")
	admin.GET("/students",
		middleware.Authorize("roster", middleware.ActionRead), h.Admin.ListStudents)
	admin.GET("/students/export",
		middleware.Authorize("roster", middleware.ActionRead), h.Admin.ExportStudents)
	admin.POST("/student-ids",
		middleware.Authorize("roster", middleware.ActionCreate),
		audit.Middleware("create", "roster"), h.Admin.CreateStudentID)
	admin.PUT("/student-ids/:id",
		middleware.Authorize("roster", middleware.ActionUpdate),
		audit.Middleware("update", "roster"), h.Admin.UpdateStudentID)
	admin.GET("/audit",
		middleware.Authorize("audit", middleware.ActionRead), h.Admin.ListAudit)
}
