package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/response"
)

// Action names the operation class performed against an entity kind.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Operation identifies a guarded (entity kind, action) pair.
type Operation struct {
	Kind   string
	Action Action
}

// RoleAny marks operations any authenticated identity may perform.
// Ownership checks for personally-owned data happen in the services,
// which pre-filter reads and reject foreign mutations.
const RoleAny = models.UserRole("")

// policy is the single source of truth for role requirements. Reads of
// shared reference data need authentication only; mutations need admin.
var policy = map[Operation]models.UserRole{
	{"assignments", ActionRead}:   RoleAny,
	{"assignments", ActionCreate}: models.RoleAdmin,
	{"assignments", ActionUpdate}: models.RoleAdmin,
	{"assignments", ActionDelete}: models.RoleAdmin,

	{"submissions", ActionRead}:   RoleAny,
	{"submissions", ActionCreate}: models.RoleStudent,

	{"resources", ActionRead}:   RoleAny,
	{"resources", ActionCreate}: models.RoleAdmin,
	{"resources", ActionDelete}: models.RoleAdmin,

	{"notices", ActionRead}:   RoleAny,
	{"notices", ActionCreate}: models.RoleAdmin,
	{"notices", ActionDelete}: models.RoleAdmin,

	{"schedule", ActionRead}:   RoleAny,
	{"schedule", ActionCreate}: models.RoleAdmin,
	{"schedule", ActionUpdate}: models.RoleAdmin,

	{"events", ActionRead}:   RoleAny,
	{"events", ActionCreate}: models.RoleAdmin,

	{"todos", ActionRead}:   RoleAny,
	{"todos", ActionCreate}: RoleAny,
	{"todos", ActionUpdate}: RoleAny,
	{"todos", ActionDelete}: RoleAny,

	{"messages", ActionRead}:   RoleAny,
	{"messages", ActionCreate}: RoleAny,
	{"messages", ActionUpdate}: RoleAny,

	{"roster", ActionRead}:   models.RoleAdmin,
	{"roster", ActionCreate}: models.RoleAdmin,
	{"roster", ActionUpdate}: models.RoleAdmin,

	{"audit", ActionRead}: models.RoleAdmin,
}

// RequiredRole exposes the policy table for tests and documentation.
func RequiredRole(kind string, action Action) (models.UserRole, bool) {
	role, ok := policy[Operation{Kind: kind, Action: action}]
	return role, ok
}

// Authorize enforces the policy table entry for the operation. It must
// run after Authenticate. Unknown operations are denied outright.
func Authorize(kind string, action Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		required, ok := policy[Operation{Kind: kind, Action: action}]
		if !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		if required != RoleAny && identity.Role != required {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
