package pgstore

import (
	"context"
	"fmt"
	"time"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
)

const auditColumns = `id, user_id, action, resource, status, ip_address, user_agent, created_at`

func (s *Store) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO audit_logs (user_id, action, resource, status, ip_address, user_agent, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := s.db.QueryRowxContext(ctx, query,
		log.UserID, log.Action, log.Resource, log.Status, log.IPAddress, log.UserAgent, log.CreatedAt,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

func (s *Store) ListAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := fmt.Sprintf(`SELECT %s FROM audit_logs ORDER BY created_at DESC, id DESC LIMIT %d`, auditColumns, limit)
	logs := []models.AuditLog{}
	if err := s.db.SelectContext(ctx, &logs, query); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, nil
}
