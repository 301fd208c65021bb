package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
	"github.com/arpitagupta-cpu/campus-connect-digital/pkg/jobs"
)

const auditJobType = "audit.record"

// AuditRecorder persists audit entries off the request path through a
// worker queue. Recording is fire-and-forget: a dropped entry never
// fails the request that produced it.
type AuditRecorder struct {
	queue  *jobs.Queue
	logger *zap.Logger
}

// NewAuditRecorder wires a queue that writes audit logs to the store.
func NewAuditRecorder(st store.Store, logger *zap.Logger, cfg jobs.QueueConfig) *AuditRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.Logger = logger
	r := &AuditRecorder{logger: logger}
	r.queue = jobs.NewQueue("audit", func(ctx context.Context, job jobs.Job) error {
		entry, ok := job.Payload.(*models.AuditLog)
		if !ok {
			return nil
		}
		return st.CreateAuditLog(ctx, entry)
	}, cfg)
	return r
}

// Start launches the queue workers.
func (r *AuditRecorder) Start(ctx context.Context) { r.queue.Start(ctx) }

// Stop drains the queue workers.
func (r *AuditRecorder) Stop() { r.queue.Stop() }

// Middleware records an audit entry for each completed mutation.
func (r *AuditRecorder) Middleware(action, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		var userID *int64
		if identity := CurrentIdentity(c); identity != nil {
			id := identity.UserID
			userID = &id
		}

		entry := &models.AuditLog{
			UserID:    userID,
			Action:    action,
			Resource:  resource,
			Status:    c.Writer.Status(),
			IPAddress: c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
			CreatedAt: time.Now().UTC(),
		}
		if err := r.queue.Enqueue(jobs.Job{ID: uuid.NewString(), Type: auditJobType, Payload: entry}); err != nil {
			r.logger.Warn("audit entry dropped", zap.String("action", action), zap.Error(err))
		}
	}
}
