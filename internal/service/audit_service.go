package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
)

type auditStore interface {
	ListAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error)
}

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 500
)

// AuditService exposes the admin mutation trail.
type AuditService struct {
	store  auditStore
	logger *zap.Logger
}

// NewAuditService constructs an AuditService instance.
func NewAuditService(st auditStore, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{store: st, logger: logger}
}

// List returns the most recent audit entries, newest first.
func (s *AuditService) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	logs, err := s.store.ListAuditLogs(ctx, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list audit logs")
	}
	return logs, nil
}
